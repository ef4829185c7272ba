package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/cariesreview/catalog/internal/pkg/apperrors"
)

// Enum is implemented by closed value sets.
type Enum interface {
	Valid() bool
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the catalog's custom tags
// registered. Field names in errors are JSON names.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		Register(validate)
	})
	return validate
}

// Register installs the custom tags and JSON field naming on v. It is also
// used for gin's binding validator.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("enum", validateEnum)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	enum, ok := field.Interface().(Enum)
	if !ok {
		return false
	}
	return enum.Valid()
}

// Struct validates s and converts failures into an *apperrors.ValidationError.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	return Translate(err)
}

// Translate converts validator errors into an *apperrors.ValidationError. Other
// errors are returned unchanged.
func Translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	vErr := &apperrors.ValidationError{}
	for _, fe := range fieldErrs {
		vErr.Add(fieldPath(fe), Message(fe))
	}
	return vErr
}

// fieldPath strips the root struct name from the namespace so nested fields
// read "caries_data[0].sex".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// Message renders a human-readable message for one field error.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "this field is required"
	case "min":
		if isCollection(fe.Kind()) {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gtefield":
		return "must not be before " + toSnake(fe.Param())
	case "enum", "oneof":
		return fmt.Sprintf("%v is not a valid choice", fe.Value())
	case "datetime":
		return "must be a date formatted as " + fe.Param()
	default:
		return "failed validation: " + fe.Tag()
	}
}

func isCollection(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}

// toSnake converts a Go field name used in a cross-field tag param to the
// JSON name used elsewhere in messages.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
