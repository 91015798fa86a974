package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a field-level message surfaced to the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validateStruct runs the tag-based schema check and converts the first
// failure into a field-level message. It runs before any write: a failure here
// means nothing has been persisted.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return ValidationError{Field: fe.Field(), Message: "is required"}
		case "oneof":
			return ValidationError{Field: fe.Field(), Message: "must be one of: " + fe.Param()}
		case "gte", "min":
			return ValidationError{Field: fe.Field(), Message: "is too small"}
		case "lte", "max":
			return ValidationError{Field: fe.Field(), Message: "is too large"}
		default:
			return ValidationError{Field: fe.Field(), Message: "is invalid"}
		}
	}
	return err
}
