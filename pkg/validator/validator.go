package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = validator.New()

func init() {
	// Report fields under their wire names, e.g. "vendorId" not "VendorID"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs every rule declared on data and accumulates all
// failures into one list, in field declaration order. It never stops at
// the first failure.
func ValidateStruct(data interface{}) []FieldError {
	var errors []FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errors = append(errors, FieldError{
				Field:   err.Field(),
				Message: message(err),
			})
		}
	}
	return errors
}

func message(fe validator.FieldError) string {
	label := Label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed on rule '%s'", label, fe.Tag())
	}
}

// Label turns a wire field name into its human form:
// "vendorId" -> "Vendor ID", "materialName" -> "Material name".
func Label(field string) string {
	words := splitCamel(field)
	for i, w := range words {
		switch {
		case w == "":
		case strings.EqualFold(w, "id"):
			words[i] = "ID"
		case i == 0:
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		default:
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	return append(words, s[start:])
}
