package response

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterValidations wires the custom rules and the json tag names into gin's
// validator engine. Call once before serving.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
}

// Bind decodes the request body into obj and flattens any validation failures
// into a single BadRequest with a field-to-messages map.
func Bind(c *gin.Context, obj interface{}) *APIError {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBadRequest("Invalid request body")
	}

	byField := make(map[string]int)
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		idx, seen := byField[name]
		if !seen {
			idx = len(fields)
			byField[name] = idx
			fields = append(fields, FieldError{Field: name})
		}
		fields[idx].Messages = append(fields[idx].Messages, validationMessage(fe))
	}
	return NewValidation(fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "username":
		return "Username can only contain letters, numbers, and underscores"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
