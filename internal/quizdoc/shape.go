package quizdoc

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// shapeSchema only describes structure. Counts and lengths are the quiz
// limits' business and are reported after loading.
const shapeSchema = `{
  "type": "object",
  "properties": {
    "version": {"type": "string"},
    "title": {"type": "string"},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "question": {"type": "string"},
          "answers": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["question", "answers"],
        "additionalProperties": false
      }
    }
  },
  "required": ["questions"],
  "additionalProperties": false
}`

const shapeURL = "schema://quizdoc.json"

var compiledShape = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(strings.NewReader(shapeSchema))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(shapeURL, def); err != nil {
		return nil, err
	}
	return c.Compile(shapeURL)
})

// ShapeError reports a document that does not have the quiz structure.
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid document shape: %v", e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

func checkShape(raw []byte) error {
	schema, err := compiledShape()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ShapeError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := schema.Validate(v); err != nil {
		return &ShapeError{Err: err}
	}
	return nil
}
