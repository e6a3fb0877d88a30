package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// LookupRequest is the request body for POST /api/login.
type LookupRequest struct {
	RSVPCode string `json:"rsvp_code"`
}

// Validate implements Validator.
func (l LookupRequest) Validate() []string {
	if strings.TrimSpace(l.RSVPCode) == "" {
		return []string{"rsvp_code is required"}
	}
	return nil
}

// LookupSuccessResponse is the success response envelope for POST /api/login (200).
type LookupSuccessResponse struct {
	Data  *domain.GuestLogin `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// SubmitRSVPRequest is the request body for POST /api/rsvp.
type SubmitRSVPRequest struct {
	GuestID   int64                  `json:"guest_id"`
	Responses []domain.ResponseInput `json:"responses"`
}

// Validate implements Validator. Invitation checks happen in the service.
func (s SubmitRSVPRequest) Validate() []string {
	var errs []string
	if s.GuestID <= 0 {
		errs = append(errs, "guest_id is required")
	}
	if len(s.Responses) == 0 {
		errs = append(errs, "responses must not be empty")
	}
	for i, r := range s.Responses {
		if r.Attending == nil {
			errs = append(errs, fmt.Sprintf("responses[%d]: attending is required", i))
		}
	}
	return errs
}

// SubmitRSVPResponse is the data returned after a successful submission.
type SubmitRSVPResponse struct {
	GuestID int64 `json:"guest_id"`
	Saved   int   `json:"saved"`
}

type RSVPController struct {
	Logger       *slog.Logger
	Service      domain.RSVPService
	ExposeErrors bool
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService, exposeErrors bool) *RSVPController {
	return &RSVPController{
		Logger:       logger,
		Service:      svc,
		ExposeErrors: exposeErrors,
	}
}

// Lookup godoc
// @Summary Log in with an RSVP code
// @Description Resolves a family RSVP code to its first guest and the events that guest is invited to.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param body body LookupRequest true "RSVP code"
// @Success 200 {object} controllers.LookupSuccessResponse "data contains the guest and invited events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/login [post]
func (c *RSVPController) Lookup(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	login, err := c.Service.Lookup(r.Context(), req.RSVPCode)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, login)
}

// Submit godoc
// @Summary Submit RSVP responses
// @Description Replaces all of the guest's responses with the submitted set. Every event must be one the guest is invited to.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param body body SubmitRSVPRequest true "Guest id and one response per event"
// @Success 200 {object} helpers.APIResponse "data contains guest_id and saved count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp [post]
func (c *RSVPController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Submit(r.Context(), req.GuestID, req.Responses); err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SubmitRSVPResponse{GuestID: req.GuestID, Saved: len(req.Responses)})
}

// DeleteResponses godoc
// @Summary Delete a guest's RSVP responses
// @Description Removes every response of the guest. The guest and its invitations are kept.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param guestID path int true "Guest ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp/{guestID} [delete]
func (c *RSVPController) DeleteResponses(w http.ResponseWriter, r *http.Request) {
	guestID, err := strconv.ParseInt(r.PathValue("guestID"), 10, 64)
	if err != nil || guestID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid guestID")
		return
	}
	if err := c.Service.DeleteResponses(r.Context(), guestID); err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
