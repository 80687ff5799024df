package model

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate  *validator.Validate
	translate ut.Translator

	digitsRegex = regexp.MustCompile(`^\d+$`)
)

func init() {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	translate, _ = uni.GetTranslator("en")
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := entranslations.RegisterDefaultTranslations(validate, translate); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := validate.RegisterTranslation(
		"digits",
		translate,
		func(ut ut.Translator) error {
			return ut.Add("digits", "{0} must be a string containing digits only", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct validates s against its `validate` tags and reports every
// failure as a StructuralValidationError. Paths are relative to s.
func ValidateStruct(s any) error {
	violations := structViolations(s, "")
	if len(violations) == 0 {
		return nil
	}
	return &StructuralValidationError{Violations: violations}
}

func structViolations(s any, prefix string) []Violation {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{
			Path:     strings.TrimSuffix(prefix, "."),
			Expected: "object",
			Received: fmt.Sprintf("%T", s),
			Message:  err.Error(),
		}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Path:     prefix + trimStructName(fe.Namespace()),
			Expected: expectedFor(fe),
			Received: describeValue(fe.Value()),
			Message:  fe.Translate(translate),
		})
	}
	return violations
}

// trimStructName drops the leading type name validator puts on namespaces,
// "RedirectPair.source.key" becomes "source.key".
func trimStructName(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func expectedFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "a value"
	case "oneof":
		return "one of [" + fe.Param() + "]"
	case "digits":
		return `string matching ^\d+$`
	case "min":
		return ">= " + fe.Param()
	case "max":
		return "<= " + fe.Param()
	}
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

func describeValue(v any) string {
	if v == nil {
		return "undefined"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "undefined"
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return "undefined"
		}
		return fmt.Sprintf("array(len=%d)", rv.Len())
	case reflect.Struct:
		if rv.IsZero() {
			return "undefined"
		}
		return "object"
	default:
		return fmt.Sprintf("%v", rv.Interface())
	}
}
