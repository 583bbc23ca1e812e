package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	RegisterJSONFieldNames(binding.Validator)
}

// RegisterJSONFieldNames makes validation errors of v report json field names (professorId, not ProfessorID).
func RegisterJSONFieldNames(v binding.StructValidator) {
	if engine, ok := v.Engine().(*validator.Validate); ok {
		engine.RegisterTagNameFunc(JSONFieldName)
	}
}

// JSONFieldName returns the json tag name of fld, or its Go name when there is none
func JSONFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// HandleValidationError turns a gin binding error into an ErrorDetail with
// one entry per offending field.
func HandleValidationError(err error) *ErrorDetail {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := NewValidationErrors()
		for _, fe := range validationErrs {
			fields.AddError(fe.Field(), FormatFieldError(fe))
		}
		if len(fields.Errors) == 1 {
			detail.WithField(fields.Errors[0].Field)
		}
		return detail.WithDetails(fields.Errors)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		detail.Message = "Request body is required"
	case errors.As(err, &syntaxErr):
		detail.Message = "Malformed JSON body"
		detail.WithDetails(fmt.Sprintf("syntax error at offset %d", syntaxErr.Offset))
	case errors.As(err, &typeErr):
		detail.Message = "Invalid field type"
		detail.WithField(typeErr.Field).WithDetails(fmt.Sprintf("%s must be %s", typeErr.Field, typeErr.Type))
	default:
		detail.Message = "Invalid request format"
		detail.WithDetails(err.Error())
	}

	return detail
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
