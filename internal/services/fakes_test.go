package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"time"

	"weddingrsvp/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func ptr[T any](v T) *T { return &v }

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	events  []*domain.Event
	nextID  int64
	err     error // returned by Create and List
	created []*domain.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.events {
		if existing.Name == e.Name {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	e.ID = f.nextID
	f.events = append(f.events, e)
	f.created = append(f.created, e)
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

// fakeGuestRepo implements domain.GuestRepository over a fixed set of families and guests.
type fakeGuestRepo struct {
	families map[int64]*domain.Family
	guests   map[int64]*domain.Guest
	err      error
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	if g, ok := f.guests[id]; ok {
		return g, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) FindByRSVPCode(ctx context.Context, code string) (*domain.GuestWithFamily, error) {
	if f.err != nil {
		return nil, f.err
	}
	var first *domain.Guest
	for _, fam := range f.families {
		if fam.RSVPCode != code {
			continue
		}
		for _, g := range f.guests {
			if g.FamilyID == fam.ID && (first == nil || g.ID < first.ID) {
				first = g
			}
		}
		if first != nil {
			return &domain.GuestWithFamily{Guest: first, Family: fam}, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeInvitationRepo serves invited events per guest and canned statuses.
type fakeInvitationRepo struct {
	byGuest  map[int64][]*domain.InvitedEvent
	statuses []*domain.InvitationStatus
	err      error
}

func (f *fakeInvitationRepo) ListEventsForGuest(ctx context.Context, guestID int64) ([]*domain.InvitedEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	events := f.byGuest[guestID]
	if events == nil {
		events = []*domain.InvitedEvent{}
	}
	return events, nil
}

func (f *fakeInvitationRepo) ListStatuses(ctx context.Context) ([]*domain.InvitationStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.statuses, nil
}

// fakeResponseRepo keeps responses per guest, replacing them wholesale like the SQL store.
type fakeResponseRepo struct {
	byGuest    map[int64][]*domain.Response
	details    []*domain.ResponseDetail
	replaceErr error
	deleteErr  error
	listErr    error
	replaces   int
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{byGuest: make(map[int64][]*domain.Response)}
}

func (f *fakeResponseRepo) ReplaceForGuest(ctx context.Context, guestID int64, responses []*domain.Response) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaces++
	f.byGuest[guestID] = slices.Clone(responses)
	return nil
}

func (f *fakeResponseRepo) DeleteByGuestID(ctx context.Context, guestID int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	n := int64(len(f.byGuest[guestID]))
	delete(f.byGuest, guestID)
	return n, nil
}

func (f *fakeResponseRepo) ListByGuestID(ctx context.Context, guestID int64) ([]*domain.Response, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byGuest[guestID], nil
}

func (f *fakeResponseRepo) ListDetailed(ctx context.Context) ([]*domain.ResponseDetail, error) {
	return f.details, nil
}

// fakeEmailService records notifications.
type fakeEmailService struct {
	sent []*domain.RSVPNotificationEmailData
	err  error
}

func (f *fakeEmailService) SendRSVPNotification(ctx context.Context, data *domain.RSVPNotificationEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

// fakeImportRepo records imported rows and fails on a given code. A row with stallCode
// blocks until its context is done.
type fakeImportRepo struct {
	imported  []*domain.GuestImport
	deadlines []time.Time
	failCode  string
	stallCode string
	known     map[string]bool // event names that exist
}

var errImportFailed = errors.New("import failed")

func (f *fakeImportRepo) ImportGuest(ctx context.Context, g *domain.GuestImport) (*domain.ImportRowResult, error) {
	if d, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, d)
	}
	if g.Code == f.failCode {
		return nil, errImportFailed
	}
	if g.Code == f.stallCode {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.imported = append(f.imported, g)
	res := &domain.ImportRowResult{GuestID: int64(len(f.imported)), SkippedEvents: []string{}}
	for _, name := range g.InvitedEvents {
		if f.known[name] {
			res.InvitationsCreated++
		} else {
			res.SkippedEvents = append(res.SkippedEvents, name)
		}
	}
	return res, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	salt    string
	saltErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return f.salt, f.saltErr }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	lastSubject string
	lastRoles   []string
	err         error
}

func (f *fakeTokenIssuer) Issue(subject string, roles []string, _ time.Duration) (string, error) {
	f.lastSubject = subject
	f.lastRoles = roles
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + subject, nil
}
