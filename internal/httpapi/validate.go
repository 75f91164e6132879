package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError carries per-field messages for a 422 response.
type validationError struct {
	Fields map[string][]string
}

func (e *validationError) Error() string {
	return "validation failed"
}

// decodeAndValidate parses the JSON body into dst and runs struct validation.
func decodeAndValidate(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &validationError{Fields: map[string][]string{
			"body": {"invalid request body"},
		}}
	}
	if err := validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		fields := map[string][]string{}
		if ok := errorsAsValidation(err, &invalid); ok {
			for _, fe := range invalid {
				name := fieldName(fe)
				fields[name] = append(fields[name], fieldMessage(fe))
			}
		} else {
			fields["body"] = []string{"invalid request body"}
		}
		return &validationError{Fields: fields}
	}
	return nil
}

func errorsAsValidation(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func fieldName(fe validator.FieldError) string {
	// snake_case the struct field name to match the JSON wire names
	var b strings.Builder
	for i, r := range fe.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fieldName(fe))
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fieldName(fe))
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", fieldName(fe), fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", fieldName(fe), fe.Param())
	case "uuid":
		return fmt.Sprintf("The %s must be a valid identifier.", fieldName(fe))
	default:
		return fmt.Sprintf("The %s field is invalid.", fieldName(fe))
	}
}
