package drafter

// Config controls the behavior of the Drafter.
type Config struct {
	// Validators run in order on every draft; the first failure stops the
	// pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAvoid caps how many questions from Input.Avoid go into the prompt.
	MaxAvoid int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DuplicateValidator{},
			&LimitsValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
		MaxAvoid:    10,
	}
}
