package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableSubmissions      = "submissions"
	tableSubmissionEvents = "submission_events"
	tableLLMRequestEvents = "llm_request_events"
)

func idColumn() *schema.Column {
	return &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
}

// eventTable creates a table carrying the columns every event shares:
// id, the global sequence and a timestamp.
func eventTable(name string) *schema.Table {
	return schema.NewTable(name).
		AddPrimary(idColumn()).
		AddColumn(&schema.Column{Name: "sequence", Type: field.TypeInt64, Unique: true}).
		AddColumn(&schema.Column{Name: "timestamp", Type: field.TypeTime})
}

func tables() []*schema.Table {
	submissions := schema.NewTable(tableSubmissions).
		AddPrimary(idColumn()).
		AddColumn(&schema.Column{Name: "submission_id", Type: field.TypeString, Unique: true}).
		AddColumn(&schema.Column{Name: "session_id", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "sequence", Type: field.TypeInt64, Unique: true}).
		AddColumn(&schema.Column{Name: "created_at", Type: field.TypeTime}).
		AddColumn(&schema.Column{Name: "title", Type: field.TypeString, Default: ""}).
		AddColumn(&schema.Column{Name: "question_count", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "answer_count", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "payload", Type: field.TypeString, Size: 1 << 20})
	submissions.AddIndex("submission_session_id", false, []string{"session_id"})

	submissionEvents := eventTable(tableSubmissionEvents).
		AddColumn(&schema.Column{Name: "session_id", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "outcome", Type: field.TypeEnum, Enums: []string{OutcomeAccepted, OutcomeRejected}}).
		AddColumn(&schema.Column{Name: "question_count", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "issue_count", Type: field.TypeInt})
	submissionEvents.AddIndex("submissionevent_session_id", false, []string{"session_id"})

	llmEvents := eventTable(tableLLMRequestEvents).
		AddColumn(&schema.Column{Name: "provider", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "model", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "purpose", Type: field.TypeString}).
		AddColumn(&schema.Column{Name: "input_tokens", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "output_tokens", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "latency_ms", Type: field.TypeInt64}).
		AddColumn(&schema.Column{Name: "success", Type: field.TypeBool}).
		AddColumn(&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""}).
		AddColumn(&schema.Column{Name: "request_body", Type: field.TypeString, Size: 1 << 20, Default: ""}).
		AddColumn(&schema.Column{Name: "response_body", Type: field.TypeString, Size: 1 << 20, Default: ""})
	llmEvents.AddIndex("llmrequestevent_purpose", false, []string{"purpose"})

	return []*schema.Table{submissions, submissionEvents, llmEvents}
}

// migrate creates or extends the tables in append-only mode.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables()...)
}
