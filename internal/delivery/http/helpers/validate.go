package helpers

import (
	"github.com/go-playground/validator/v10"

	"eventboard/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct tag validation on dest. Any failure is reported to the client as message.
func Validate(dest any, message string) error {
	if err := validate.Struct(dest); err != nil {
		return &domain.Error{Kind: domain.KindValidation, Message: message, Err: err}
	}
	return nil
}
