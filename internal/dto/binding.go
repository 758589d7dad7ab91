package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/opusregistry/catalog_backend/internal/validation"
)

// RegisterCustomValidators wires the music-identifier validators into gin's
// binding engine so DTO tags like `binding:"iswc"` enforce the same rules
// the domain layer uses. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	if err := v.RegisterValidation("iswc", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || len(validation.ValidateISWC(value)) == 0
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("isrc", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || !validation.HasBlocking(validation.ValidateISRC(value))
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		// advisory findings (uncommon codes) still bind
		return value == "" || !validation.HasBlocking(validation.ValidateLanguage(value))
	}); err != nil {
		return err
	}
	return nil
}

// ValidationErrorResponse is the envelope returned when domain validation
// fails; every collected finding is reported in one payload.
type ValidationErrorResponse struct {
	Errors []validation.Error `json:"errors"`
}
