package controllers

import (
	"log/slog"
	"net/http"

	h "weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// AdminLoginRequest is the request body for POST /api/admin/login
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (l AdminLoginRequest) Validate() []string {
	if l.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

// AdminLoginSuccessResponse is the success response envelope for POST /api/admin/login (200).
type AdminLoginSuccessResponse struct {
	Data  *domain.AdminToken `json:"data"`
	Error *h.APIError        `json:"error"`
}

type AuthController struct {
	Logger       *slog.Logger
	Service      domain.AdminAuthService
	ExposeErrors bool
}

func NewAuthController(logger *slog.Logger, svc domain.AdminAuthService, exposeErrors bool) *AuthController {
	return &AuthController{
		Logger:       logger,
		Service:      svc,
		ExposeErrors: exposeErrors,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin password for a bearer token used by the admin endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "Admin password"
// @Success 200 {object} controllers.AdminLoginSuccessResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Password)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "admin login failed", "err", err)
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, token)
}
