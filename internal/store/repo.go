package store

import (
	"context"
	"time"

	"github.com/abhisek/quizform/internal/quizform"
)

// QueryOpts configures queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Submission is an accepted quiz as persisted.
type Submission struct {
	ID           int
	SubmissionID string // uuid, assigned on Save when empty
	SessionID    string
	Sequence     int64
	CreatedAt    time.Time
	Title        string
	Data         quizform.Data
}

// QuestionCount returns the number of submitted questions.
func (s *Submission) QuestionCount() int {
	return len(s.Data.Questions)
}

// SubmissionRepo persists accepted submissions.
type SubmissionRepo interface {
	// Save stores sub and fills in ID, SubmissionID, Sequence and CreatedAt.
	Save(ctx context.Context, sub *Submission) error

	// Get returns the submission with the given submission id, or nil if
	// none exists.
	Get(ctx context.Context, submissionID string) (*Submission, error)

	// List returns submissions newest first.
	List(ctx context.Context, opts QueryOpts) ([]Submission, error)

	// Count returns the number of stored submissions.
	Count(ctx context.Context) (int, error)
}

// Submission outcomes recorded by SubmissionEventData.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// SubmissionEventData captures one run of the submission gate.
type SubmissionEventData struct {
	SessionID     string
	Outcome       string
	QuestionCount int
	IssueCount    int
}

// SubmissionEventRecord is a stored submission event.
type SubmissionEventRecord struct {
	ID            int       `sql:"id"`
	Sequence      int64     `sql:"sequence"`
	Timestamp     time.Time `sql:"timestamp"`
	SessionID     string    `sql:"session_id"`
	Outcome       string    `sql:"outcome"`
	QuestionCount int       `sql:"question_count"`
	IssueCount    int       `sql:"issue_count"`
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID           int       `sql:"id"`
	Sequence     int64     `sql:"sequence"`
	Timestamp    time.Time `sql:"timestamp"`
	Provider     string    `sql:"provider"`
	Model        string    `sql:"model"`
	Purpose      string    `sql:"purpose"`
	InputTokens  int       `sql:"input_tokens"`
	OutputTokens int       `sql:"output_tokens"`
	LatencyMs    int64     `sql:"latency_ms"`
	Success      bool      `sql:"success"`
	ErrorMessage string    `sql:"error_message"`
	RequestBody  string    `sql:"request_body"`
	ResponseBody string    `sql:"response_body"`
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSubmissionEvent records one run of the submission gate.
	AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error

	// QuerySubmissionEvents returns submission events newest first.
	QuerySubmissionEvents(ctx context.Context, opts QueryOpts) ([]SubmissionEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}
