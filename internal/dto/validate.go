package dto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct tags and returns a user-facing message for the
// first failing field. Validation always runs before any store call.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s is required", e.Field())
		case "min":
			return fmt.Errorf("%s must be at least %s characters", e.Field(), e.Param())
		case "max":
			return fmt.Errorf("%s must be at most %s characters", e.Field(), e.Param())
		case "email":
			return fmt.Errorf("%s must be a valid email address", e.Field())
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", e.Field(), e.Param())
		default:
			return fmt.Errorf("%s is invalid", e.Field())
		}
	}
	return err
}
