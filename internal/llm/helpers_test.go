package llm

import (
	"context"
	"sync"

	"github.com/abhisek/quizform/internal/store"
)

// quizSchema is a small quiz-shaped schema used across provider tests.
func quizSchema() *Schema {
	return &Schema{
		Name:        "quiz-test",
		Description: "A quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":     "array",
					"minItems": 1,
					"maxItems": 2,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
							"answers": map[string]any{
								"type":     "array",
								"minItems": 2,
								"items":    map[string]any{"type": "string"},
							},
						},
						"required":             []any{"question", "answers"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	}
}

const validQuizJSON = `{"questions":[{"question":"What is a goroutine?","answers":["A thread","A function"]}]}`

// recordingEventRepo captures LLM events and ignores everything else.
type recordingEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func (r *recordingEventRepo) AppendSubmissionEvent(context.Context, store.SubmissionEventData) error {
	return nil
}

func (r *recordingEventRepo) QuerySubmissionEvents(context.Context, store.QueryOpts) ([]store.SubmissionEventRecord, error) {
	return nil, nil
}

func (r *recordingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *recordingEventRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
