// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/testutil"
)

func TestVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)
	voter := testutil.AuthHeader(t, cfg, "voter-1")

	pollID, opts := testutil.CreateTestPoll(t, db, "owner-1", "Lunch?", "Pizza", "Salad")
	_, foreign := testutil.CreateTestPoll(t, db, "owner-1", "Other", "X", "Y")
	inactive, inactiveOpts := testutil.CreateTestPoll(t, db, "owner-1", "Gone", "A", "B")
	testutil.DeactivateTestPoll(t, db, inactive)

	tests := []struct {
		name           string
		pollID         string
		body           interface{}
		headers        map[string]string
		expectedStatus int
		expectedMsg    string
	}{
		{"anonymous", pollID, models.VoteRequest{OptionID: opts[0]}, nil, http.StatusUnauthorized, "Sign in required"},
		{"missing option", pollID, models.VoteRequest{}, voter, http.StatusBadRequest, "option_id is required"},
		{"invalid JSON", pollID, []int{1}, voter, http.StatusBadRequest, "Invalid JSON"},
		{"option of another poll", pollID, models.VoteRequest{OptionID: foreign[0]}, voter, http.StatusUnprocessableEntity, "Invalid poll or option"},
		{"unknown poll", "no-such-poll", models.VoteRequest{OptionID: opts[0]}, voter, http.StatusUnprocessableEntity, "Invalid poll or option"},
		{"inactive poll", inactive, models.VoteRequest{OptionID: inactiveOpts[0]}, voter, http.StatusUnprocessableEntity, "Invalid poll or option"},
		{"first vote", pollID, models.VoteRequest{OptionID: opts[0]}, voter, http.StatusCreated, ""},
		{"second vote same option", pollID, models.VoteRequest{OptionID: opts[0]}, voter, http.StatusConflict, "You have already voted on this poll"},
		{"second vote other option", pollID, models.VoteRequest{OptionID: opts[1]}, voter, http.StatusConflict, "You have already voted on this poll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(handler.Vote, "POST", "/polls/"+tt.pollID+"/votes", tt.pollID, tt.body, tt.headers)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.VoteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.VoteID == "" {
					t.Error("Expected vote_id in response")
				}
				return
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != tt.expectedMsg {
				t.Errorf("Expected message %q, got %q", tt.expectedMsg, resp.Message)
			}
		})
	}

	if n := testutil.CountRows(t, db, "votes", pollID); n != 1 {
		t.Errorf("Expected exactly 1 stored vote, got %d", n)
	}
}

func TestGetMyVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)
	voter := testutil.AuthHeader(t, cfg, "voter-1")

	pollID, opts := testutil.CreateTestPoll(t, db, "owner-1", "Lunch?", "Pizza", "Salad")

	check := func(headers map[string]string, want bool) {
		t.Helper()
		w := serve(handler.GetMyVote, "GET", "/polls/"+pollID+"/my-vote", pollID, nil, headers)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.VoteStatusResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.HasVoted != want {
			t.Errorf("Expected has_voted=%v, got %v", want, resp.HasVoted)
		}
	}

	check(nil, false)
	check(voter, false)

	w := serve(handler.Vote, "POST", "/polls/"+pollID+"/votes", pollID, models.VoteRequest{OptionID: opts[1]}, voter)
	testutil.AssertStatus(t, w, http.StatusCreated)

	check(voter, true)
	check(testutil.AuthHeader(t, cfg, "voter-2"), false)
	check(nil, false)
}
