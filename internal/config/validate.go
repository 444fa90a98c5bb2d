package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks every field and returns one joined error listing all
// failing keys.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fieldError(fe))
	}
	return fmt.Errorf("invalid config: %w", errors.Join(errs...))
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "gtefield":
		return fmt.Errorf("%s = %v must be >= %s", fe.Namespace(), fe.Value(), fe.Param())
	case "ltefield":
		return fmt.Errorf("%s = %v must be <= %s", fe.Namespace(), fe.Value(), fe.Param())
	case "oneof":
		return fmt.Errorf("%s = %q must be one of [%s]", fe.Namespace(), fe.Value(), fe.Param())
	default:
		return fmt.Errorf("%s = %v fails %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
	}
}
