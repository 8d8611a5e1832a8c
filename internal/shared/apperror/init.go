package apperror

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is how leave dates travel in requests and responses.
const DateLayout = "2006-01-02"

// Init hooks the leave request rules into gin's validator. Call it once
// before the router is built.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations reports fields by their json name and adds the isodate
// tag used on leave and calendar dates.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		panic(fmt.Sprintf("register isodate validation: %v", err))
	}
}

// isoDate accepts a bare calendar date such as 2024-03-04.
func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
