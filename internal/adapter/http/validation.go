package http

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reMobile10 = regexp.MustCompile(`^[0-9]{10}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// mobile numbers are exactly 10 digits
	_ = v.RegisterValidation("mobile10", func(fl validator.FieldLevel) bool {
		return reMobile10.MatchString(fl.Field().String())
	})
	// calendar dates arrive as YYYY-MM-DD
	_ = v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "mobile10":
			out = append(out, FieldError{Field: field, Message: "must be exactly 10 digits"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "dateymd":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
