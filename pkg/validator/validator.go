// Package validator wraps go-playground struct validation with
// readable single-line error messages.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var parts []string
	for _, fe := range err.(validator.ValidationErrors) {
		part := fe.Field() + " failed " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}

	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}
