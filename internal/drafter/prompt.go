package drafter

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizform/internal/quizform"
)

const systemPrompt = `You write multiple-choice quizzes.

Rules:
- Write exactly the requested number of questions, each with exactly the requested number of answers.
- Every question is self-contained plain text. No markdown, no numbering.
- Answers are plain text options. Exactly one answer per question should be correct; the others should be plausible mistakes.
- Keep every question and answer within the stated length limits, counted in characters.
- Do not repeat any question from the "avoid" list.`

// buildUserMessage constructs the user message from the input and limits.
func buildUserMessage(in Input, l quizform.Limits, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	fmt.Fprintf(&b, "Questions: %d\n", in.Questions)
	fmt.Fprintf(&b, "Answers per question: %d\n", in.Answers)
	fmt.Fprintf(&b, "Question length: %d-%d characters\n", l.MinQuestionLength, l.MaxQuestionLength)
	fmt.Fprintf(&b, "Answer length: %d-%d characters\n", l.MinAnswerLength, l.MaxAnswerLength)

	b.WriteString("\nAvoid:\n")
	b.WriteString(buildAvoid(in.Avoid, cfg.MaxAvoid))
	return b.String()
}

// buildAvoid formats the avoid list, keeping the most recent max entries.
func buildAvoid(questions []string, max int) string {
	if len(questions) == 0 {
		return "None"
	}
	if max > 0 && len(questions) > max {
		questions = questions[len(questions)-max:]
	}

	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
