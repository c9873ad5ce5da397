package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FieldError is one failed rule on one struct field.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range e {
		msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", f.Field, f.Tag, f.Param))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, f := range e {
		fields = append(fields, f.Field)
	}
	return fields
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}
