package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/store"
)

// Deps are the collaborators a session reports to. Any of them may be nil.
type Deps struct {
	Submissions store.SubmissionRepo
	Events      store.EventRepo
	Log         *zap.Logger
}

// Session exclusively owns one quiz and applies intents to it in the order
// they arrive. It is not safe for concurrent use.
type Session struct {
	id    string
	title string
	quiz  *quizform.Quiz
	deps  Deps
	log   *zap.Logger
}

// New creates a session holding a freshly populated quiz.
func New(l quizform.Limits, deps Deps) *Session {
	return Resume(quizform.New(l), deps)
}

// Resume creates a session around an existing quiz, such as one loaded from
// a document. The session takes ownership of qz.
func Resume(qz *quizform.Quiz, deps Deps) *Session {
	id := uuid.New().String()
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		id:   id,
		quiz: qz,
		deps: deps,
		log:  log.With(zap.String("session_id", id)),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Title() string { return s.title }

// SetTitle sets the title stored with accepted submissions.
func (s *Session) SetTitle(title string) { s.title = title }

func (s *Session) Limits() quizform.Limits { return s.quiz.Limits() }

func (s *Session) Len() int { return s.quiz.Len() }

func (s *Session) Valid() bool { return s.quiz.Valid() }

func (s *Session) Snapshot() quizform.State { return s.quiz.Snapshot() }

func (s *Session) Issues() []quizform.Issue { return s.quiz.Issues() }

func (s *Session) Extract() quizform.Data { return s.quiz.Extract() }

// intent logs a forwarded mutation and its failure, if any.
func (s *Session) intent(name string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("intent", name))
	if err != nil {
		s.log.Warn("intent rejected", append(fields, zap.Error(err))...)
		return err
	}
	s.log.Debug("intent", fields...)
	return nil
}

func (s *Session) SetQuestionText(qi int, text string) error {
	return s.intent("set_question_text", s.quiz.SetQuestionText(qi, text), zap.Int("question", qi))
}

func (s *Session) SetAnswerText(qi, ai int, text string) error {
	return s.intent("set_answer_text", s.quiz.SetAnswerText(qi, ai, text),
		zap.Int("question", qi), zap.Int("answer", ai))
}

func (s *Session) TouchQuestion(qi int) error {
	return s.intent("touch_question", s.quiz.TouchQuestion(qi), zap.Int("question", qi))
}

func (s *Session) TouchAnswer(qi, ai int) error {
	return s.intent("touch_answer", s.quiz.TouchAnswer(qi, ai),
		zap.Int("question", qi), zap.Int("answer", ai))
}

func (s *Session) MarkAllTouched() {
	s.quiz.MarkAllTouched()
	s.intent("mark_all_touched", nil)
}

// AddQuestion appends a default question and returns its index.
func (s *Session) AddQuestion() int {
	qi := s.quiz.AddQuestion()
	s.intent("add_question", nil, zap.Int("question", qi))
	return qi
}

func (s *Session) RemoveQuestion(qi int) error {
	return s.intent("remove_question", s.quiz.RemoveQuestion(qi), zap.Int("question", qi))
}

// AddAnswer appends an empty answer to question qi and returns its index.
func (s *Session) AddAnswer(qi int) (int, error) {
	ai, err := s.quiz.AddAnswer(qi)
	return ai, s.intent("add_answer", err, zap.Int("question", qi), zap.Int("answer", ai))
}

func (s *Session) RemoveAnswer(qi, ai int) error {
	return s.intent("remove_answer", s.quiz.RemoveAnswer(qi, ai),
		zap.Int("question", qi), zap.Int("answer", ai))
}

// Outcome is the result of one submit attempt.
type Outcome struct {
	Accepted   bool
	Submission quizform.Submission
	Stored     *store.Submission // nil when rejected or no repo is configured
	Issues     []quizform.Issue  // failures that blocked a rejected submit
}

// Status is the one-line result shown to the user.
func (o Outcome) Status() string {
	if !o.Accepted {
		return "Form is invalid"
	}
	return fmt.Sprintf("Form Submitted with %d questions", o.Submission.Count)
}

// Submit runs the submission gate. A rejected submit is not an error. When
// accepted, the quiz has already been reset by the time persistence runs, so
// a storage error leaves the quiz fresh and the outcome still accepted.
func (s *Session) Submit(ctx context.Context) (Outcome, error) {
	issues := s.quiz.Issues()
	sub, err := s.quiz.Submit()
	if errors.Is(err, quizform.ErrStructureInvalid) {
		s.log.Info("submission rejected", zap.Int("issues", len(issues)))
		s.record(ctx, store.SubmissionEventData{
			SessionID:     s.id,
			Outcome:       store.OutcomeRejected,
			QuestionCount: s.quiz.Len(),
			IssueCount:    len(issues),
		})
		return Outcome{Issues: issues}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Accepted: true, Submission: sub}
	s.log.Info("submission accepted",
		zap.Int("questions", sub.Count),
		zap.Int("answers", sub.Data.AnswerCount()))

	s.record(ctx, store.SubmissionEventData{
		SessionID:     s.id,
		Outcome:       store.OutcomeAccepted,
		QuestionCount: sub.Count,
	})

	if s.deps.Submissions == nil {
		return out, nil
	}
	stored := &store.Submission{SessionID: s.id, Title: s.title, Data: sub.Data}
	if err := s.deps.Submissions.Save(ctx, stored); err != nil {
		s.log.Error("failed to save submission", zap.Error(err))
		return out, fmt.Errorf("saving submission: %w", err)
	}
	out.Stored = stored
	s.log.Info("submission saved", zap.String("submission_id", stored.SubmissionID))
	return out, nil
}

// record appends a submission event; failures are logged, never returned.
func (s *Session) record(ctx context.Context, data store.SubmissionEventData) {
	if s.deps.Events == nil {
		return
	}
	if err := s.deps.Events.AppendSubmissionEvent(ctx, data); err != nil {
		s.log.Warn("failed to record submission event", zap.Error(err))
	}
}
