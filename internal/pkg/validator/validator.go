package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FirstMissing returns the json name of the first field, in declaration order,
// that fails validation. Empty when v is valid.
func FirstMissing(v interface{}) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	return verrs[0].Field()
}

// Struct validates v and returns validator.ValidationErrors on failure.
func Struct(v interface{}) error {
	return validate.Struct(v)
}
