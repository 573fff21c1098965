package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name, not the Go struct field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// CTA/href fields accept anchors (#about), relative paths (/about) or
	// full URLs, but never embedded whitespace.
	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\n")
	})
	return v
}

// ValidateStruct runs the validator tags on a DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationErrorResponse flattens validator.v10 errors into the
// per-field envelope. Non-validator errors fall back to a plain 400.
func ValidationErrorResponse(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		name := fieldName(fe)
		fields[name] = append(fields[name], messageFor(fe))
	}
	return JsonValidationError(c, fields)
}

func fieldName(fe validator.FieldError) string {
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "nospace":
		return "must not contain whitespace"
	case "email":
		return "must be a valid email address"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return fe.Tag()
	}
}

// RequireField is for rules the tag engine can't see (e.g. "image required
// on create" when the image may arrive as a file or a string).
func RequireField(c *fiber.Ctx, field string) error {
	return JsonValidationError(c, map[string][]string{field: {"this field is required"}})
}
