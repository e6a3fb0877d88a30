package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func ptr[T any](v T) *T { return &v }

// decodeEnvelope decodes the standard API envelope, with Data left as raw JSON.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env.Data, env.Error
}

// fakeRSVPService implements domain.RSVPService for handler tests.
type fakeRSVPService struct {
	login         *domain.GuestLogin
	lookupErr     error
	submitErr     error
	deleteErr     error
	lastCode      string
	lastGuestID   int64
	lastResponses []domain.ResponseInput
	lastDeleted   int64
}

func (f *fakeRSVPService) Lookup(ctx context.Context, code string) (*domain.GuestLogin, error) {
	f.lastCode = code
	return f.login, f.lookupErr
}

func (f *fakeRSVPService) Submit(ctx context.Context, guestID int64, responses []domain.ResponseInput) error {
	f.lastGuestID = guestID
	f.lastResponses = responses
	return f.submitErr
}

func (f *fakeRSVPService) DeleteResponses(ctx context.Context, guestID int64) error {
	f.lastDeleted = guestID
	return f.deleteErr
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events   []*domain.Event
	err      error
	lastName string
	lastDate string
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) CreateEvent(ctx context.Context, name, date string) (*domain.Event, error) {
	f.lastName, f.lastDate = name, date
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Event{ID: 1, Name: name, Date: date}, nil
}

// fakeReportService implements domain.ReportService for handler tests.
type fakeReportService struct {
	totals    []*domain.EventTotals
	guestList []*domain.GuestListEntry
	responses []*domain.FormattedResponse
	err       error
}

func (f *fakeReportService) EventTotals(ctx context.Context) ([]*domain.EventTotals, error) {
	return f.totals, f.err
}

func (f *fakeReportService) EventGuestList(ctx context.Context) ([]*domain.GuestListEntry, error) {
	return f.guestList, f.err
}

func (f *fakeReportService) FormattedResponses(ctx context.Context) ([]*domain.FormattedResponse, error) {
	return f.responses, f.err
}

// fakeImportService implements domain.ImportService for handler tests.
type fakeImportService struct {
	report   *domain.ImportReport
	err      error
	lastRows []domain.GuestImportRow
}

func (f *fakeImportService) ImportGuests(ctx context.Context, rows []domain.GuestImportRow) (*domain.ImportReport, error) {
	f.lastRows = rows
	return f.report, f.err
}

// fakeAdminAuthService implements domain.AdminAuthService for handler tests.
type fakeAdminAuthService struct {
	token *domain.AdminToken
	err   error
}

func (f *fakeAdminAuthService) Login(ctx context.Context, password string) (*domain.AdminToken, error) {
	return f.token, f.err
}
