package drafter

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/abhisek/quizform/internal/llm"
	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/quizform"
)

// Purpose labels drafting requests in the LLM event log.
const Purpose = "quiz-draft"

// Input describes the quiz to draft. Zero counts fall back to the limits'
// defaults.
type Input struct {
	Topic     string
	Questions int
	Answers   int
	Avoid     []string // question texts the draft must not repeat
}

// Drafter asks an LLM for a quiz that fits a set of limits.
type Drafter struct {
	provider llm.Provider
	limits   quizform.Limits
	config   Config
}

// New creates a Drafter.
func New(provider llm.Provider, limits quizform.Limits, cfg Config) *Drafter {
	return &Drafter{provider: provider, limits: limits, config: cfg}
}

// draftOutput is the raw LLM response before validation.
type draftOutput struct {
	Title     string                  `json:"title"`
	Questions []quizform.QuestionData `json:"questions"`
}

// Draft produces a quiz document for in.
func (d *Drafter) Draft(ctx context.Context, in Input) (*quizdoc.Document, error) {
	in, err := d.resolve(in)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithTopic(llm.WithPurpose(ctx, Purpose), in.Topic)
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in, d.limits, d.config)},
		},
		Schema:      draftSchema(in.Questions, in.Answers),
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw draftOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	doc := &quizdoc.Document{
		Version:   quizdoc.Version,
		Title:     strings.TrimSpace(raw.Title),
		Questions: raw.Questions,
	}
	for _, v := range d.config.Validators {
		if verr := v.Validate(doc, in, d.limits); verr != nil {
			return nil, verr
		}
	}
	return doc, nil
}

// resolve fills in default counts and rejects counts the limits forbid.
func (d *Drafter) resolve(in Input) (Input, error) {
	in.Topic = strings.TrimSpace(in.Topic)
	if in.Topic == "" {
		return in, fmt.Errorf("topic is required")
	}
	if in.Questions == 0 {
		in.Questions = d.limits.DefaultQuestionCount
	}
	if in.Answers == 0 {
		in.Answers = d.limits.DefaultAnswerCount
	}
	if v := d.limits.QuestionCount().Check(in.Questions); !v.IsValid() {
		return in, fmt.Errorf("questions: %s", quizform.MessageOf(quizform.SubjectQuestions, v))
	}
	if v := d.limits.AnswerCount().Check(in.Answers); !v.IsValid() {
		return in, fmt.Errorf("answers: %s", quizform.MessageOf(quizform.SubjectAnswers, v))
	}
	return in, nil
}
