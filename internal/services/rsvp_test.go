package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"weddingrsvp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rsvpFixture struct {
	guests      *fakeGuestRepo
	invitations *fakeInvitationRepo
	responses   *fakeResponseRepo
	email       *fakeEmailService
	svc         domain.RSVPService
}

func newRSVPFixture(notifyTo string) *rsvpFixture {
	f := &rsvpFixture{
		guests: &fakeGuestRepo{
			families: map[int64]*domain.Family{
				1: {ID: 1, RSVPCode: "A1", HasChildren: true, HasSpouse: true},
				2: {ID: 2, RSVPCode: "EMPTY"},
			},
			guests: map[int64]*domain.Guest{
				11: {ID: 11, Name: "Sam", FamilyID: 1},
				10: {ID: 10, Name: "Jane", FamilyID: 1},
				20: {ID: 20, Name: "Lonely", FamilyID: 2},
			},
		},
		invitations: &fakeInvitationRepo{
			byGuest: map[int64][]*domain.InvitedEvent{
				10: {
					{ID: 1, Name: "Mehndi", Date: "2025-06-01"},
					{ID: 2, Name: "Baraat", Date: "2025-06-02", ChildrenInvited: true},
				},
			},
		},
		responses: newFakeResponseRepo(),
		email:     &fakeEmailService{},
	}
	f.svc = NewRSVPService(f.guests, f.invitations, f.responses, f.email, notifyTo, testLogger, 5*time.Second)
	return f
}

func TestRSVPService_Lookup(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture("")

	t.Run("returns the first guest and invited events", func(t *testing.T) {
		login, err := f.svc.Lookup(ctx, "  A1 ")
		require.NoError(t, err)
		assert.Equal(t, int64(1), login.FamilyID)
		assert.Equal(t, "A1", login.RSVPCode)
		assert.Equal(t, int64(10), login.GuestID)
		assert.Equal(t, "Jane", login.Name)
		assert.True(t, login.HasSpouse)
		assert.True(t, login.HasChildren)
		require.Len(t, login.Events, 2)
		assert.True(t, login.Events[1].ChildrenInvited)
		assert.NotNil(t, login.Responses)
		assert.Empty(t, login.Responses)
	})

	t.Run("includes responses already submitted", func(t *testing.T) {
		f := newRSVPFixture("")
		require.NoError(t, f.svc.Submit(ctx, 10, []domain.ResponseInput{
			{EventID: 1, Attending: ptr(true), Comment: "can't wait"},
			{EventID: 2, Attending: ptr(false)},
		}))
		login, err := f.svc.Lookup(ctx, "A1")
		require.NoError(t, err)
		require.Len(t, login.Responses, 2)
		assert.Equal(t, int64(1), login.Responses[0].EventID)
		assert.Equal(t, ptr(true), login.Responses[0].Attending)
		assert.Equal(t, ptr("can't wait"), login.Responses[0].Comment)
		assert.Equal(t, ptr(false), login.Responses[1].Attending)
	})

	t.Run("response lookup failure", func(t *testing.T) {
		f := newRSVPFixture("")
		f.responses.listErr = errors.New("db down")
		_, err := f.svc.Lookup(ctx, "A1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list responses")
	})

	t.Run("guest without invitations gets an empty list", func(t *testing.T) {
		login, err := f.svc.Lookup(ctx, "EMPTY")
		require.NoError(t, err)
		assert.NotNil(t, login.Events)
		assert.Empty(t, login.Events)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := f.svc.Lookup(ctx, "UNKNOWN")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("blank code", func(t *testing.T) {
		_, err := f.svc.Lookup(ctx, "   ")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("storage failure", func(t *testing.T) {
		broken := newRSVPFixture("")
		broken.guests.err = errors.New("db down")
		_, err := broken.svc.Lookup(ctx, "A1")
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestRSVPService_Submit_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		guestID int64
		inputs  []domain.ResponseInput
		wantErr error
	}{
		{name: "zero guest", guestID: 0, inputs: []domain.ResponseInput{{EventID: 1, Attending: ptr(true)}}, wantErr: domain.ErrInvalidInput},
		{name: "empty list", guestID: 10, inputs: nil, wantErr: domain.ErrInvalidInput},
		{name: "missing event id", guestID: 10, inputs: []domain.ResponseInput{{EventID: 0, Attending: ptr(true)}}, wantErr: domain.ErrInvalidInput},
		{
			name:    "duplicate event id",
			guestID: 10,
			inputs:  []domain.ResponseInput{{EventID: 1, Attending: ptr(true)}, {EventID: 1, Attending: ptr(false)}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative children",
			guestID: 10,
			inputs:  []domain.ResponseInput{{EventID: 2, Attending: ptr(true), NumberOfChildren: ptr(-1)}},
			wantErr: domain.ErrInvalidInput,
		},
		{name: "not invited", guestID: 10, inputs: []domain.ResponseInput{{EventID: 3, Attending: ptr(true)}}, wantErr: domain.ErrInvalidInput},
		{name: "missing attending", guestID: 10, inputs: []domain.ResponseInput{{EventID: 1, Comment: "hi"}}, wantErr: domain.ErrInvalidInput},
		{name: "unknown guest", guestID: 99, inputs: []domain.ResponseInput{{EventID: 1, Attending: ptr(true)}}, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRSVPFixture("couple@example.com")
			err := f.svc.Submit(ctx, tt.guestID, tt.inputs)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.responses.replaces, "nothing stored")
			assert.Empty(t, f.email.sent)
		})
	}
}

func TestRSVPService_Submit(t *testing.T) {
	ctx := context.Background()
	inputs := []domain.ResponseInput{
		{EventID: 1, Attending: ptr(true), Comment: "can't wait"},
		{EventID: 2, Attending: ptr(true), ChildrenAttending: ptr(true), NumberOfChildren: ptr(2), ChildrenComments: ptr("ages 4 and 6")},
	}

	t.Run("replaces the response set and notifies", func(t *testing.T) {
		f := newRSVPFixture("couple@example.com")
		require.NoError(t, f.svc.Submit(ctx, 10, inputs))

		stored := f.responses.byGuest[10]
		require.Len(t, stored, 2)
		assert.Equal(t, int64(10), stored[0].GuestID)
		assert.Equal(t, ptr(true), stored[0].Attending)
		assert.Equal(t, ptr("can't wait"), stored[0].Comment)
		assert.Nil(t, stored[0].ChildrenAttending)
		assert.Equal(t, ptr(2), stored[1].NumberOfChildren)

		require.Len(t, f.email.sent, 1)
		mail := f.email.sent[0]
		assert.Equal(t, "couple@example.com", mail.To)
		assert.Equal(t, "Jane", mail.GuestName)
		require.Len(t, mail.Events, 2)
		assert.Equal(t, "Baraat", mail.Events[1].EventName)
		assert.Equal(t, 2, mail.Events[1].NumberOfChildren)
	})

	t.Run("same payload twice stores the same rows", func(t *testing.T) {
		f := newRSVPFixture("")
		require.NoError(t, f.svc.Submit(ctx, 10, inputs))
		first := f.responses.byGuest[10]
		require.NoError(t, f.svc.Submit(ctx, 10, inputs))
		assert.Equal(t, first, f.responses.byGuest[10])
		assert.Equal(t, 2, f.responses.replaces)
	})

	t.Run("mail failure does not fail the submission", func(t *testing.T) {
		f := newRSVPFixture("couple@example.com")
		f.email.err = errors.New("ses down")
		require.NoError(t, f.svc.Submit(ctx, 10, inputs))
		assert.Len(t, f.responses.byGuest[10], 2)
	})

	t.Run("no recipient means no mail", func(t *testing.T) {
		f := newRSVPFixture("")
		require.NoError(t, f.svc.Submit(ctx, 10, inputs))
		assert.Empty(t, f.email.sent)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newRSVPFixture("couple@example.com")
		f.responses.replaceErr = errors.New("tx aborted")
		err := f.svc.Submit(ctx, 10, inputs)
		require.Error(t, err)
		assert.Empty(t, f.email.sent)
	})

	t.Run("invitation withdrawn while saving", func(t *testing.T) {
		f := newRSVPFixture("couple@example.com")
		f.responses.replaceErr = domain.InvalidInputf("guest 10 is not invited to event 2")
		err := f.svc.Submit(ctx, 10, inputs)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, f.email.sent)
	})
}

func TestRSVPService_DeleteResponses(t *testing.T) {
	ctx := context.Background()
	f := newRSVPFixture("")
	require.NoError(t, f.svc.Submit(ctx, 10, []domain.ResponseInput{{EventID: 1, Attending: ptr(true)}}))
	f.responses.byGuest[20] = []*domain.Response{{GuestID: 20, EventID: 5}}

	require.NoError(t, f.svc.DeleteResponses(ctx, 10))
	assert.Empty(t, f.responses.byGuest[10])
	assert.Len(t, f.responses.byGuest[20], 1, "other guests untouched")

	// no responses left is still fine
	require.NoError(t, f.svc.DeleteResponses(ctx, 10))

	require.ErrorIs(t, f.svc.DeleteResponses(ctx, 99), domain.ErrNotFound)
	require.ErrorIs(t, f.svc.DeleteResponses(ctx, 0), domain.ErrInvalidInput)

	f.responses.deleteErr = errors.New("db down")
	require.Error(t, f.svc.DeleteResponses(ctx, 20))
}
