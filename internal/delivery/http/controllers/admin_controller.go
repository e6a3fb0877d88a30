package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"weddingrsvp/internal/adapters/guestcsv"
	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// DefaultMaxUploadBytes caps the guest list upload size.
const DefaultMaxUploadBytes = 5 << 20

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateEventSuccessResponse is the success response envelope for POST /api/events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsSuccessResponse is the success response envelope for GET /api/events (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventTotalsSuccessResponse is the success response envelope for GET /api/event-totals (200).
type EventTotalsSuccessResponse struct {
	Data  []*domain.EventTotals `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// EventGuestListSuccessResponse is the success response envelope for GET /api/event-guest-list (200).
type EventGuestListSuccessResponse struct {
	Data  []*domain.GuestListEntry `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// RSVPResponsesSuccessResponse is the success response envelope for GET /api/rsvp-responses (200).
type RSVPResponsesSuccessResponse struct {
	Data  []*domain.FormattedResponse `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// UploadGuestsResponse is the envelope for POST /api/upload-guests. On a failed row both
// data (rows committed before it) and error are set.
type UploadGuestsResponse struct {
	Data  *domain.ImportReport `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type AdminController struct {
	Logger         *slog.Logger
	Events         domain.EventService
	Reports        domain.ReportService
	Importer       domain.ImportService
	ExposeErrors   bool
	MaxUploadBytes int64
}

func NewAdminController(
	logger *slog.Logger,
	events domain.EventService,
	reports domain.ReportService,
	importer domain.ImportService,
	exposeErrors bool,
) *AdminController {
	return &AdminController{
		Logger:         logger,
		Events:         events,
		Reports:        reports,
		Importer:       importer,
		ExposeErrors:   exposeErrors,
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event ordered by date.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *AdminController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a wedding event. Names are unique; date is optional and formatted YYYY-MM-DD.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event name and date"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *AdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.CreateEvent(r.Context(), req.Name, req.Date)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// EventTotals godoc
// @Summary Headcount per event
// @Description Adults (guest plus spouse), children and total attendees for every event.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventTotalsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-totals [get]
func (c *AdminController) EventTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := c.Reports.EventTotals(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, totals)
}

// EventGuestList godoc
// @Summary Guest list per event
// @Description One row per invitation with the guest's attending status (Yes, No or Pending) and headcount.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventGuestListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-guest-list [get]
func (c *AdminController) EventGuestList(w http.ResponseWriter, r *http.Request) {
	list, err := c.Reports.EventGuestList(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// EventGuestListCSV godoc
// @Summary Download the guest list as CSV
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV with a header row"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-guest-list.csv [get]
func (c *AdminController) EventGuestListCSV(w http.ResponseWriter, r *http.Request) {
	list, err := c.Reports.EventGuestList(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="guest-list.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := guestcsv.WriteGuestList(w, list); err != nil {
		// headers are already sent
		c.Logger.ErrorContext(r.Context(), "write csv failed", "path", r.URL.Path, "err", err)
	}
}

// RSVPResponses godoc
// @Summary List all RSVP responses
// @Description Every stored response with guest and event names; booleans rendered Yes, No or Unknown.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RSVPResponsesSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp-responses [get]
func (c *AdminController) RSVPResponses(w http.ResponseWriter, r *http.Request) {
	list, err := c.Reports.FormattedResponses(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UploadGuests godoc
// @Summary Import a guest list CSV
// @Description Multipart upload (field "file") with columns rsvp_code, has_children, has_spouse, name, invited_events and optionally children_invited_events. Rows are imported in order; the first failing row stops the import.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Guest list CSV"
// @Success 200 {object} controllers.UploadGuestsResponse "data contains the import report"
// @Failure 400 {object} controllers.UploadGuestsResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} controllers.UploadGuestsResponse "error.code: internal_error"
// @Router /api/upload-guests [post]
func (c *AdminController) UploadGuests(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxUploadBytes)
	if err := r.ParseMultipartForm(c.MaxUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file is required")
		return
	}
	defer file.Close()

	rows, err := guestcsv.ReadGuestRowsFile(header.Filename, file)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, err)
		return
	}
	report, err := c.Importer.ImportGuests(r.Context(), rows)
	if err != nil {
		status, apiErr := apiError(r, c.Logger, c.ExposeErrors, err)
		var rowErr *domain.ImportRowError
		if errors.As(err, &rowErr) && status == http.StatusInternalServerError && !c.ExposeErrors {
			apiErr.Message = fmt.Sprintf("import stopped at row %d: %s", rowErr.Row, internalErrorMessage)
		}
		helpers.WriteJSON(w, status, report, apiErr)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
