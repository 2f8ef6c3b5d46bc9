package api

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use JSON tag names for field errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validationFields extracts per-field messages from a validator error.
func validationFields(err error) map[string]string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_error": err.Error()}
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			fields[e.Field()] = "is required"
		case "url":
			fields[e.Field()] = "must be a valid URL"
		case "oneof":
			fields[e.Field()] = "must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
		case "min":
			fields[e.Field()] = "must be at least " + e.Param()
		case "max":
			fields[e.Field()] = "must be at most " + e.Param()
		default:
			fields[e.Field()] = "is invalid"
		}
	}
	return fields
}

// writeValidationError writes the 400 response for a failed struct validation.
func writeValidationError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(errorBody{
		Error:  "validation failed",
		Code:   "VALIDATION_ERROR",
		Fields: validationFields(err),
	})
}
