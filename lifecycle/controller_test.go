// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/danielhkuo/quickly-poll/auth"
	mock_lifecycle "github.com/danielhkuo/quickly-poll/lifecycle/mocks"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

var owner = &auth.Identity{ID: "owner-1", Email: "owner@example.com"}

func strPtr(s string) *string { return &s }

func storedPoll() *models.Poll {
	return &models.Poll{
		ID:          "poll-1",
		Title:       "Lunch?",
		Description: strPtr("Where to"),
		CreatedBy:   owner.ID,
		IsActive:    true,
		Options: []models.PollOption{
			{ID: "opt-a", PollID: "poll-1", OptionText: "A", Position: 0},
			{ID: "opt-b", PollID: "poll-1", OptionText: "B", Position: 1},
			{ID: "opt-c", PollID: "poll-1", OptionText: "C", Position: 2},
		},
	}
}

func newController(t *testing.T) (*Controller, *mock_lifecycle.MockStore) {
	ctrl := gomock.NewController(t)
	st := mock_lifecycle.NewMockStore(ctrl)
	return NewController(st), st
}

func TestController_WritesRequireIdentity(t *testing.T) {
	// No expectations: any store call fails the test
	c, _ := newController(t)
	ctx := context.Background()

	_, err := c.NewPoll(nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = c.CreatePoll(ctx, nil, "Q", "", []string{"A", "B"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = c.OpenEdit(ctx, nil, "poll-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = c.EditPoll(ctx, nil, "poll-1", "Q", "", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = c.DeletePoll(ctx, nil, "poll-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = c.NewVotingSession("poll-1", nil).Vote(ctx, "opt-a")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreatePoll_TrimsAndFilters(t *testing.T) {
	c, st := newController(t)

	created := &models.Poll{ID: "poll-1", Title: "Lunch?"}
	st.EXPECT().CreatePoll(gomock.Any(), models.CreatePollInput{
		Title:       "Lunch?",
		Description: nil,
		Options:     []string{"Pizza", "Salad"},
		OwnerID:     owner.ID,
	}).Return(created, nil)

	poll, err := c.CreatePoll(context.Background(), owner, "  Lunch?  ", "   ", []string{"Pizza ", "", "   ", "  Salad"})
	require.NoError(t, err)
	assert.Same(t, created, poll)
}

func TestCreatePoll_KeepsDescription(t *testing.T) {
	c, st := newController(t)

	st.EXPECT().CreatePoll(gomock.Any(), models.CreatePollInput{
		Title:       "Q",
		Description: strPtr("details"),
		Options:     []string{"A", "B"},
		OwnerID:     owner.ID,
	}).Return(&models.Poll{ID: "poll-1"}, nil)

	_, err := c.CreatePoll(context.Background(), owner, "Q", " details ", []string{"A", "B"})
	require.NoError(t, err)
}

func TestCreatePoll_LocalValidation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		options []string
	}{
		{"one option", "Q", []string{"A"}},
		{"blank options", "Q", []string{"A", "   ", ""}},
		{"no options", "Q", nil},
		{"blank title", "   ", []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newController(t)
			_, err := c.CreatePoll(context.Background(), owner, tt.title, "", tt.options)
			assert.ErrorIs(t, err, store.ErrValidation)
		})
	}
}

func TestAuthoringSession_FailedThenRetried(t *testing.T) {
	c, st := newController(t)
	ctx := context.Background()

	sess, err := c.NewPoll(owner)
	require.NoError(t, err)
	assert.Equal(t, StateEditing, sess.State())

	sess.SetTitle("Lunch?")
	sess.AddOption("Pizza")
	sess.AddOption(" ")

	err = sess.Submit(ctx)
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.Equal(t, StateFailed, sess.State())
	assert.ErrorIs(t, sess.Err(), store.ErrValidation)
	// The draft is left as typed
	assert.Equal(t, []models.OptionEdit{models.NewOption{Text: "Pizza"}, models.NewOption{Text: " "}}, sess.Options())

	require.NoError(t, sess.SetOption(1, "Salad"))
	assert.Equal(t, StateEditing, sess.State())
	assert.Error(t, sess.Err(), "the error stays visible until the next submit")

	st.EXPECT().CreatePoll(gomock.Any(), gomock.Any()).Return(nil, store.ErrPersistence)
	err = sess.Submit(ctx)
	assert.ErrorIs(t, err, store.ErrPersistence)
	assert.Equal(t, StateFailed, sess.State())
	assert.Nil(t, sess.Poll())

	created := &models.Poll{ID: "poll-9"}
	st.EXPECT().CreatePoll(gomock.Any(), gomock.Any()).Return(created, nil)
	require.NoError(t, sess.Submit(ctx))
	assert.Equal(t, StateSuccess, sess.State())
	assert.NoError(t, sess.Err())
	assert.Same(t, created, sess.Poll())
	assert.Equal(t, "poll-9", sess.PollID())
}

func TestAuthoringSession_ClosedAfterSuccess(t *testing.T) {
	c, st := newController(t)
	ctx := context.Background()

	sess, err := c.NewPoll(owner)
	require.NoError(t, err)
	sess.SetTitle("Q")
	sess.AddOption("A")
	sess.AddOption("B")

	st.EXPECT().CreatePoll(gomock.Any(), gomock.Any()).Return(&models.Poll{ID: "poll-1"}, nil).Times(1)
	require.NoError(t, sess.Submit(ctx))

	assert.ErrorIs(t, sess.Submit(ctx), ErrSessionClosed)
	assert.ErrorIs(t, sess.SetOption(0, "changed"), ErrSessionClosed)
	assert.ErrorIs(t, sess.RemoveOption(0), ErrSessionClosed)
	assert.ErrorIs(t, sess.SetOptions(nil), ErrSessionClosed)

	sess.SetTitle("ignored")
	sess.AddOption("ignored")
	assert.Equal(t, "Q", sess.Title())
	assert.Len(t, sess.Options(), 2)
	assert.Equal(t, StateSuccess, sess.State())
}

func TestAuthoringSession_NewPollRejectsStoredOptions(t *testing.T) {
	c, _ := newController(t)

	sess, err := c.NewPoll(owner)
	require.NoError(t, err)

	err = sess.SetOptions([]models.OptionEdit{
		models.NewOption{Text: "A"},
		models.ExistingOption{ID: "opt-x", Text: "B"},
	})
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.Empty(t, sess.Options())
}

func TestOpenEdit(t *testing.T) {
	c, st := newController(t)
	ctx := context.Background()

	st.EXPECT().GetPoll(gomock.Any(), "poll-1").Return(storedPoll(), nil)

	sess, err := c.OpenEdit(ctx, owner, "poll-1")
	require.NoError(t, err)
	assert.Equal(t, "poll-1", sess.PollID())
	assert.Equal(t, "Lunch?", sess.Title())
	assert.Equal(t, "Where to", sess.Description())
	assert.Equal(t, []models.OptionEdit{
		models.ExistingOption{ID: "opt-a", Text: "A"},
		models.ExistingOption{ID: "opt-b", Text: "B"},
		models.ExistingOption{ID: "opt-c", Text: "C"},
	}, sess.Options())
}

func TestOpenEdit_Errors(t *testing.T) {
	c, st := newController(t)
	ctx := context.Background()

	st.EXPECT().GetPoll(gomock.Any(), "missing").Return(nil, nil)
	_, err := c.OpenEdit(ctx, owner, "missing")
	assert.ErrorIs(t, err, store.ErrPollNotFound)

	st.EXPECT().GetPoll(gomock.Any(), "poll-1").Return(storedPoll(), nil)
	_, err = c.OpenEdit(ctx, &auth.Identity{ID: "intruder"}, "poll-1")
	assert.ErrorIs(t, err, store.ErrNotOwner)

	st.EXPECT().GetPoll(gomock.Any(), "poll-2").Return(nil, store.ErrPersistence)
	_, err = c.OpenEdit(ctx, owner, "poll-2")
	assert.ErrorIs(t, err, store.ErrPersistence)
}

func TestAuthoringSession_EditReconcile(t *testing.T) {
	c, st := newController(t)
	ctx := context.Background()

	st.EXPECT().GetPoll(gomock.Any(), "poll-1").Return(storedPoll(), nil)
	sess, err := c.OpenEdit(ctx, owner, "poll-1")
	require.NoError(t, err)

	// {A,B,C} -> {A', D}
	require.NoError(t, sess.SetOption(0, " A' "))
	sess.AddOption("D")
	require.NoError(t, sess.RemoveOption(1))
	require.NoError(t, sess.RemoveOption(1))
	assert.ErrorIs(t, sess.RemoveOption(0), store.ErrValidation, "the form keeps two options")

	st.EXPECT().UpdatePoll(gomock.Any(), models.UpdatePollInput{
		PollID:      "poll-1",
		OwnerID:     owner.ID,
		Title:       "Lunch?",
		Description: strPtr("Where to"),
		Options: []models.OptionEdit{
			models.ExistingOption{ID: "opt-a", Text: "A'"},
			models.NewOption{Text: "D"},
			models.RemovedOption{ID: "opt-b"},
			models.RemovedOption{ID: "opt-c"},
		},
	}).Return(nil)

	require.NoError(t, sess.Submit(ctx))
	assert.Equal(t, StateSuccess, sess.State())
	assert.Nil(t, sess.Poll())
	assert.Equal(t, "poll-1", sess.PollID())
}

func TestEditPoll_BlankStoredOptionIsRemoved(t *testing.T) {
	c, st := newController(t)
	ctx := context.Background()

	st.EXPECT().GetPoll(gomock.Any(), "poll-1").Return(storedPoll(), nil)
	st.EXPECT().UpdatePoll(gomock.Any(), models.UpdatePollInput{
		PollID:      "poll-1",
		OwnerID:     owner.ID,
		Title:       "Renamed",
		Description: nil,
		Options: []models.OptionEdit{
			models.ExistingOption{ID: "opt-a", Text: "A"},
			models.RemovedOption{ID: "opt-b"},
			models.NewOption{Text: "E"},
			models.RemovedOption{ID: "opt-c"},
		},
	}).Return(nil)

	err := c.EditPoll(ctx, owner, "poll-1", " Renamed ", "", []models.OptionEdit{
		models.ExistingOption{ID: "opt-a", Text: "A"},
		models.ExistingOption{ID: "opt-b", Text: "  "},
		models.NewOption{Text: "E"},
		models.NewOption{Text: ""},
		models.RemovedOption{ID: "opt-c"},
	})
	require.NoError(t, err)
}

func TestEditPoll_TooFewOptions(t *testing.T) {
	c, st := newController(t)

	st.EXPECT().GetPoll(gomock.Any(), "poll-1").Return(storedPoll(), nil)

	err := c.EditPoll(context.Background(), owner, "poll-1", "Q", "", []models.OptionEdit{
		models.ExistingOption{ID: "opt-a", Text: "A"},
		models.RemovedOption{ID: "opt-b"},
	})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestEditPoll_StoreErrorPassesThrough(t *testing.T) {
	c, st := newController(t)

	st.EXPECT().GetPoll(gomock.Any(), "poll-1").Return(storedPoll(), nil)
	st.EXPECT().UpdatePoll(gomock.Any(), gomock.Any()).Return(store.ErrInvalidReference)

	err := c.EditPoll(context.Background(), owner, "poll-1", "Q", "", []models.OptionEdit{
		models.ExistingOption{ID: "opt-a", Text: "A"},
		models.ExistingOption{ID: "opt-from-elsewhere", Text: "B"},
	})
	assert.ErrorIs(t, err, store.ErrInvalidReference)
}

func TestDeletePoll(t *testing.T) {
	c, st := newController(t)

	st.EXPECT().DeletePoll(gomock.Any(), "poll-1", owner.ID).Return(nil)
	assert.NoError(t, c.DeletePoll(context.Background(), owner, "poll-1"))

	st.EXPECT().DeletePoll(gomock.Any(), "poll-1", "intruder").Return(store.ErrNotOwner)
	assert.ErrorIs(t, c.DeletePoll(context.Background(), &auth.Identity{ID: "intruder"}, "poll-1"), store.ErrNotOwner)
}

func TestPollAndResults(t *testing.T) {
	c, st := newController(t)
	ctx := context.Background()

	st.EXPECT().GetPoll(gomock.Any(), "gone").Return(nil, nil).Times(2)
	_, err := c.Poll(ctx, "gone")
	assert.ErrorIs(t, err, store.ErrPollNotFound)
	_, _, err = c.Results(ctx, "gone")
	assert.ErrorIs(t, err, store.ErrPollNotFound)

	results := []models.PollResult{
		{PollID: "poll-1", OptionID: "opt-a", OptionText: "A", VoteCount: 2},
		{PollID: "poll-1", OptionID: "opt-b", OptionText: "B", VoteCount: 1},
	}
	st.EXPECT().GetPoll(gomock.Any(), "poll-1").Return(storedPoll(), nil)
	st.EXPECT().GetPollResults(gomock.Any(), "poll-1").Return(results, nil)

	poll, got, err := c.Results(ctx, "poll-1")
	require.NoError(t, err)
	assert.Equal(t, "poll-1", poll.ID)
	assert.Equal(t, results, got)

	st.EXPECT().GetPolls(gomock.Any()).Return([]models.Poll{*storedPoll()}, nil)
	polls, err := c.Polls(ctx)
	require.NoError(t, err)
	assert.Len(t, polls, 1)
}
