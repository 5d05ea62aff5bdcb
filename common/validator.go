package common

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validation tags on payload and converts failures
// into an *APIError so callers can surface them uniformly, without making a
// network call for input the server would reject anyway.
func ValidateStruct(payload any) error {
	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewAPIError(http.StatusBadRequest, "validation failed", validationErrors.Error())
		}
		return err
	}
	return nil
}
