package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var submissionEventColumns = []string{
	"id", "sequence", "timestamp", "session_id", "outcome", "question_count", "issue_count",
}

func (r *eventRepo) AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error {
	switch data.Outcome {
	case OutcomeAccepted, OutcomeRejected:
	default:
		return fmt.Errorf("invalid submission outcome %q", data.Outcome)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ib := entsql.Dialect(dialect.SQLite).Insert(tableSubmissionEvents).
		Columns(submissionEventColumns[1:]...).
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Outcome, data.QuestionCount, data.IssueCount)
	if _, err := insert(ctx, r.drv, ib); err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySubmissionEvents(ctx context.Context, opts QueryOpts) ([]SubmissionEventRecord, error) {
	var records []SubmissionEventRecord
	sel := selectEvents(tableSubmissionEvents, opts, submissionEventColumns...)
	if err := queryAll(ctx, r.drv, sel, &records); err != nil {
		return nil, fmt.Errorf("query submission events: %w", err)
	}
	return records, nil
}
