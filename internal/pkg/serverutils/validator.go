package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"algo-notes-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct's validate tags. Failures wrap apperror.ErrValidation
// and name every offending field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field()+" is "+fe.Tag())
	}
	return fmt.Errorf("%w: %s", apperror.ErrValidation, strings.Join(fields, ", "))
}
