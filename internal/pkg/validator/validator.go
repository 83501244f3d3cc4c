package validator

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("trimmed_min", trimmedMin)
}

// Violation is one failed rule. Field is the JSON name of the field.
type Violation struct {
	Field string
	Tag   string
	Param string
}

// Check validates struct fields and returns the violations in field
// declaration order, nested structs included.
func Check(v interface{}) []Violation {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Tag: "invalid"}}
	}

	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{
			Field: fieldPath(fe.Namespace()),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// trimmedMin is "min" applied to the value with surrounding whitespace removed.
func trimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// fieldPath drops the top-level struct name: "Req.fullname.firstname"
// becomes "fullname.firstname".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
