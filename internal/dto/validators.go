package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom validation tags on gin's binding engine.
// Field names in validation errors use the form/json tag instead of the Go name.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterTagNameFunc(tagName)
		err = v.RegisterValidation("isodate", isISODate)
	})
	return err
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func tagName(field reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// ValidationMessage turns a binding error into a client facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Sprintf("Invalid query parameter: %v", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("Required parameter '%s' is missing", fe.Field()))
		case "isodate":
			msgs = append(msgs, fmt.Sprintf("Parameter '%s' must be a date in YYYY-MM-DD format", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("Parameter '%s' must be at least %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("Parameter '%s' is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
