package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DurationTag validates strings accepted by time.ParseDuration
const DurationTag = "duration"

// New returns a validator with the project's custom rules registered
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(DurationTag, validateDuration)
	return v
}

func validateDuration(fl validator.FieldLevel) bool {
	_, err := time.ParseDuration(fl.Field().String())
	return err == nil
}

// Struct validates s and flattens any field errors into a single readable error.
// rootPrefix is trimmed from field namespaces, e.g. "Config.".
func Struct(v *validator.Validate, s interface{}, rootPrefix string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, FormatFieldError(fe, rootPrefix))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError, rootPrefix string) string {
	field := strings.TrimPrefix(e.Namespace(), rootPrefix)
	switch e.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "numeric":
		return field + " must be numeric"
	case "oneof":
		return field + " must be one of: " + e.Param()
	case DurationTag:
		return field + " must be a duration such as 10s or 1m"
	case "gte":
		return field + " must be at least " + e.Param()
	case "lte":
		return field + " must be at most " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
