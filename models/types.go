package models

import "time"

// Option edit kinds, as they appear on the wire
const (
	EditNew      = "new"
	EditExisting = "existing"
	EditRemoved  = "removed"
)

// MinOptions is the fewest options a poll may ever have
const MinOptions = 2

// Request types

type CreatePollRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// An empty ID marks an option that does not exist yet.
type OptionEditRequest struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Remove bool   `json:"remove,omitempty"`
}

type UpdatePollRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Options     []OptionEditRequest `json:"options"`
}

type VoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type CreatePollResponse struct {
	PollID string `json:"poll_id"`
}

type VoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type VoteStatusResponse struct {
	HasVoted bool `json:"has_voted"`
}

type PollDetailResponse struct {
	Poll     Poll `json:"poll"`
	HasVoted bool `json:"has_voted"`
	IsOwner  bool `json:"is_owner"`
}

type ListPollsResponse struct {
	Polls []Poll `json:"polls"`
}

type PollResultsResponse struct {
	PollID     string       `json:"poll_id"`
	Title      string       `json:"title"`
	Results    []PollResult `json:"results"`
	TotalVotes int          `json:"total_votes"`
}

// Domain types

type Poll struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	CreatedAgo  string       `json:"created_ago,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
	IsActive    bool         `json:"is_active"`
	Options     []PollOption `json:"options"`
}

// TotalVotes sums the vote counts of all options
func (p Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.VoteCount
	}
	return total
}

type PollOption struct {
	ID         string    `json:"id"`
	PollID     string    `json:"poll_id"`
	OptionText string    `json:"option_text"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	VoteCount  int       `json:"vote_count"`
}

type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PollResult is one row of the poll_results view
type PollResult struct {
	PollID          string    `json:"poll_id"`
	OptionID        string    `json:"option_id"`
	OptionText      string    `json:"option_text"`
	Position        int       `json:"position"`
	VoteCount       int       `json:"vote_count"`
	PollTitle       string    `json:"poll_title"`
	PollDescription *string   `json:"poll_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedBy       string    `json:"created_by"`
}

// Store inputs

type CreatePollInput struct {
	Title       string
	Description *string
	Options     []string
	OwnerID     string
}

type UpdatePollInput struct {
	PollID      string
	OwnerID     string
	Title       string
	Description *string
	Options     []OptionEdit
}

// OptionEdit is one entry of an edited option list.
// It is exactly one of NewOption, ExistingOption or RemovedOption.
type OptionEdit interface {
	Kind() string
	optionEdit()
}

type NewOption struct {
	Text string
}

type ExistingOption struct {
	ID   string
	Text string
}

type RemovedOption struct {
	ID string
}

func (NewOption) Kind() string      { return EditNew }
func (ExistingOption) Kind() string { return EditExisting }
func (RemovedOption) Kind() string  { return EditRemoved }

func (NewOption) optionEdit()      {}
func (ExistingOption) optionEdit() {}
func (RemovedOption) optionEdit()  {}

// OptionEditFromRequest converts the wire form of an edit into its variant
func OptionEditFromRequest(req OptionEditRequest) OptionEdit {
	switch {
	case req.ID == "":
		return NewOption{Text: req.Text}
	case req.Remove:
		return RemovedOption{ID: req.ID}
	default:
		return ExistingOption{ID: req.ID, Text: req.Text}
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
