package schema

import (
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DateLayout is the wire format for all entity date fields.
const DateLayout = "2006-01-02"

// DefaultNecessityLevel is applied whenever the caller omits the field.
const DefaultNecessityLevel = "C"

// ValidationError names the offending field. It is returned before any
// write is attempted; a failed validation never reaches storage.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Schema validates entity inputs and patches and injects defaults. It is
// transport- and storage-agnostic.
type Schema struct {
	Validate *validator.Validate

	trans ut.Translator
}

func New() *Schema {
	validate := validator.New(validator.WithRequiredStructEnabled())

	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)

	return &Schema{
		Validate: validate,
		trans:    trans,
	}
}

func (s *Schema) check(v any) error {
	err := s.Validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}

	return &ValidationError{
		Field:  errs[0].Field(),
		Reason: errs[0].Translate(s.trans),
	}
}
