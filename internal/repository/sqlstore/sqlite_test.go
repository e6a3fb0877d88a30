package sqlstore

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"weddingrsvp/internal/db"
	"weddingrsvp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteDB returns a migrated in-memory database.
func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.Migrate(ctx, conn, db.DriverSQLite, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return conn
}

func seedEvents(t *testing.T, conn *sql.DB, events ...*domain.Event) {
	t.Helper()
	repo := NewEventRepository(conn)
	for _, e := range events {
		require.NoError(t, repo.Create(context.Background(), e))
	}
}

func TestSQLite_ImportAndLookup(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteDB(t)
	mehndi := &domain.Event{Name: "Mehndi", Date: "2025-06-01"}
	baraat := &domain.Event{Name: "Baraat", Date: "2025-06-02"}
	valima := &domain.Event{Name: "Valima", Date: "2025-06-03"}
	seedEvents(t, conn, mehndi, baraat, valima)

	imp := NewGuestImportRepository(conn)
	res, err := imp.ImportGuest(ctx, &domain.GuestImport{
		Code:                  "A1",
		HasChildren:           true,
		Name:                  "Jane",
		InvitedEvents:         []string{"Mehndi", "Baraat"},
		ChildrenInvitedEvents: []string{"Baraat"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.InvitationsCreated)
	assert.Empty(t, res.SkippedEvents)

	found, err := NewGuestRepository(conn).FindByRSVPCode(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", found.Guest.Name)
	assert.True(t, found.Family.HasChildren)
	assert.False(t, found.Family.HasSpouse)

	events, err := NewInvitationRepository(conn).ListEventsForGuest(ctx, found.Guest.ID)
	require.NoError(t, err)
	require.Equal(t, []*domain.InvitedEvent{
		{ID: mehndi.ID, Name: "Mehndi", Date: "2025-06-01", ChildrenInvited: false},
		{ID: baraat.ID, Name: "Baraat", Date: "2025-06-02", ChildrenInvited: true},
	}, events)

	// re-import with new flags and events keeps the same family and guest
	res2, err := imp.ImportGuest(ctx, &domain.GuestImport{
		Code:          "A1",
		HasSpouse:     true,
		Name:          "Jane",
		InvitedEvents: []string{"Valima", "Unknown"},
	})
	require.NoError(t, err)
	assert.Equal(t, res.FamilyID, res2.FamilyID)
	assert.Equal(t, res.GuestID, res2.GuestID)
	assert.Equal(t, []string{"Unknown"}, res2.SkippedEvents)

	found, err = NewGuestRepository(conn).FindByRSVPCode(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, found.Family.HasSpouse)
	assert.False(t, found.Family.HasChildren)
	events, err = NewInvitationRepository(conn).ListEventsForGuest(ctx, found.Guest.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Valima", events[0].Name)

	_, err = NewGuestRepository(conn).FindByRSVPCode(ctx, "UNKNOWN")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLite_ReplaceResponsesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteDB(t)
	seedEvents(t, conn, &domain.Event{Name: "Mehndi", Date: "2025-06-01"}, &domain.Event{Name: "Baraat", Date: "2025-06-02"})
	res, err := NewGuestImportRepository(conn).ImportGuest(ctx, &domain.GuestImport{
		Code: "A1", Name: "Jane", InvitedEvents: []string{"Mehndi", "Baraat"},
	})
	require.NoError(t, err)

	responses := []*domain.Response{
		{EventID: 1, Attending: ptr(true), ChildrenAttending: ptr(true), NumberOfChildren: ptr(2), Comment: ptr("")},
		{EventID: 2, Attending: ptr(false), Comment: ptr("sorry")},
	}
	repo := NewResponseRepository(conn)
	require.NoError(t, repo.ReplaceForGuest(ctx, res.GuestID, responses))
	first, err := repo.ListByGuestID(ctx, res.GuestID)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceForGuest(ctx, res.GuestID, responses))
	second, err := repo.ListByGuestID(ctx, res.GuestID)
	require.NoError(t, err)

	require.Len(t, second, 2)
	for i := range first {
		// ids are reassigned on replace; the content is the same
		first[i].ID, second[i].ID = 0, 0
	}
	assert.Equal(t, first, second)
	assert.Equal(t, ptr(2), second[0].NumberOfChildren)
	assert.Nil(t, second[1].ChildrenAttending)
}

func TestSQLite_ReplaceRejectsUninvitedEvent(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteDB(t)
	mehndi := &domain.Event{Name: "Mehndi", Date: "2025-06-01"}
	baraat := &domain.Event{Name: "Baraat", Date: "2025-06-02"}
	seedEvents(t, conn, mehndi, baraat)
	imp := NewGuestImportRepository(conn)
	res, err := imp.ImportGuest(ctx, &domain.GuestImport{
		Code: "A1", Name: "Jane", InvitedEvents: []string{"Mehndi", "Baraat"},
	})
	require.NoError(t, err)

	repo := NewResponseRepository(conn)
	require.NoError(t, repo.ReplaceForGuest(ctx, res.GuestID, []*domain.Response{
		{EventID: mehndi.ID, Attending: ptr(true), Comment: ptr("")},
	}))

	// the guest is re-imported without Baraat after the form was loaded
	_, err = imp.ImportGuest(ctx, &domain.GuestImport{
		Code: "A1", Name: "Jane", InvitedEvents: []string{"Mehndi"},
	})
	require.NoError(t, err)

	err = repo.ReplaceForGuest(ctx, res.GuestID, []*domain.Response{
		{EventID: mehndi.ID, Attending: ptr(false), Comment: ptr("")},
		{EventID: baraat.ID, Attending: ptr(true), Comment: ptr("")},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	kept, err := repo.ListByGuestID(ctx, res.GuestID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, mehndi.ID, kept[0].EventID)
	assert.Equal(t, ptr(true), kept[0].Attending)
}

func TestSQLite_StatusesAndDelete(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteDB(t)
	seedEvents(t, conn, &domain.Event{Name: "Mehndi", Date: "2025-06-01"})
	imp := NewGuestImportRepository(conn)
	jane, err := imp.ImportGuest(ctx, &domain.GuestImport{Code: "A1", HasSpouse: true, Name: "Jane", InvitedEvents: []string{"Mehndi"}})
	require.NoError(t, err)
	omar, err := imp.ImportGuest(ctx, &domain.GuestImport{Code: "B2", Name: "Omar", InvitedEvents: []string{"Mehndi"}})
	require.NoError(t, err)

	responses := NewResponseRepository(conn)
	require.NoError(t, responses.ReplaceForGuest(ctx, jane.GuestID, []*domain.Response{{EventID: 1, Attending: ptr(true)}}))
	require.NoError(t, responses.ReplaceForGuest(ctx, omar.GuestID, []*domain.Response{{EventID: 1, Attending: ptr(false)}}))

	invitations := NewInvitationRepository(conn)
	statuses, err := invitations.ListStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "Jane", statuses[0].GuestName)
	assert.True(t, statuses[0].HasSpouse)
	require.NotNil(t, statuses[0].Response)
	assert.Equal(t, ptr(true), statuses[0].Response.Attending)

	n, err := responses.DeleteByGuestID(ctx, jane.GuestID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	statuses, err = invitations.ListStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2, "invitations survive response deletion")
	assert.Nil(t, statuses[0].Response)
	require.NotNil(t, statuses[1].Response, "other guests keep their responses")

	details, err := responses.ListDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Omar", details[0].GuestName)
	assert.Equal(t, "Mehndi", details[0].EventName)
}

func TestSQLite_DuplicateEvent(t *testing.T) {
	conn := newSQLiteDB(t)
	repo := NewEventRepository(conn)
	require.NoError(t, repo.Create(context.Background(), &domain.Event{Name: "Mehndi"}))
	err := repo.Create(context.Background(), &domain.Event{Name: "Mehndi"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}
