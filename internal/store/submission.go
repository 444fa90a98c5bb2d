package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

var submissionColumns = []string{
	"id", "submission_id", "session_id", "sequence", "created_at", "title", "payload",
}

// submissionRow is the scanned form of a submissions row. The payload is
// decoded separately.
type submissionRow struct {
	ID           int       `sql:"id"`
	SubmissionID string    `sql:"submission_id"`
	SessionID    string    `sql:"session_id"`
	Sequence     int64     `sql:"sequence"`
	CreatedAt    time.Time `sql:"created_at"`
	Title        string    `sql:"title"`
	Payload      string    `sql:"payload"`
}

func (r submissionRow) submission() (Submission, error) {
	sub := Submission{
		ID:           r.ID,
		SubmissionID: r.SubmissionID,
		SessionID:    r.SessionID,
		Sequence:     r.Sequence,
		CreatedAt:    r.CreatedAt,
		Title:        r.Title,
	}
	if err := json.Unmarshal([]byte(r.Payload), &sub.Data); err != nil {
		return Submission{}, fmt.Errorf("decode submission %s: %w", r.SubmissionID, err)
	}
	return sub, nil
}

type submissionRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *submissionRepo) Save(ctx context.Context, sub *Submission) error {
	payload, err := json.Marshal(sub.Data)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if sub.SubmissionID == "" {
		sub.SubmissionID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	ib := entsql.Dialect(dialect.SQLite).Insert(tableSubmissions).
		Columns("submission_id", "session_id", "sequence", "created_at", "title",
			"question_count", "answer_count", "payload").
		Values(sub.SubmissionID, sub.SessionID, seqNum, sub.CreatedAt, sub.Title,
			len(sub.Data.Questions), sub.Data.AnswerCount(), string(payload))

	id, err := insert(ctx, r.drv, ib)
	if err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	sub.ID = id
	sub.Sequence = seqNum
	return nil
}

func (r *submissionRepo) Get(ctx context.Context, submissionID string) (*Submission, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(submissionColumns...).
		From(entsql.Table(tableSubmissions)).
		Where(entsql.EQ("submission_id", submissionID))

	var rows []submissionRow
	if err := queryAll(ctx, r.drv, sel, &rows); err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	sub, err := rows[0].submission()
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) List(ctx context.Context, opts QueryOpts) ([]Submission, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(submissionColumns...).
		From(entsql.Table(tableSubmissions))
	applyQueryOpts(sel, opts, "created_at")
	sel.OrderBy(entsql.Desc("sequence"))

	var rows []submissionRow
	if err := queryAll(ctx, r.drv, sel, &rows); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	subs := make([]Submission, 0, len(rows))
	for _, row := range rows {
		sub, err := row.submission()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (r *submissionRepo) Count(ctx context.Context) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*")).
		From(entsql.Table(tableSubmissions)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	defer rows.Close()
	return entsql.ScanInt(rows)
}
