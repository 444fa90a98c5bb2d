package drafter

import "github.com/abhisek/quizform/internal/llm"

// draftSchema describes a quiz with exactly the requested counts. String
// lengths are stated in the prompt instead, since strict structured-output
// modes reject length keywords.
func draftSchema(questions, answers int) *llm.Schema {
	return &llm.Schema{
		Name:        "quiz-draft",
		Description: "A quiz of questions, each with a list of candidate answers",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "A short title for the quiz",
				},
				"questions": map[string]any{
					"type":     "array",
					"minItems": questions,
					"maxItems": questions,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{
								"type":        "string",
								"description": "The question text, plain text, self-contained",
							},
							"answers": map[string]any{
								"type":     "array",
								"minItems": answers,
								"maxItems": answers,
								"items": map[string]any{
									"type": "string",
								},
								"description": "Candidate answers to the question",
							},
						},
						"required":             []any{"question", "answers"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"title", "questions"},
			"additionalProperties": false,
		},
	}
}
