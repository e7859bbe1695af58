package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/placementportal/internal/pkg/validation"
)

// RegisterValidators configures gin's validator: error field names follow the
// json/form tags and the custom rules used by the request DTOs are registered.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(fieldName)
	return v.RegisterValidation("rollnumber", validateRollNumber)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validateRollNumber(fl validator.FieldLevel) bool {
	return validation.IsValidRollNumber(validation.NormalizeRollNumber(fl.Field().String()))
}
