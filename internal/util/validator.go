package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError, customField *map[string]string) string {
	// convert to custom field if exist
	field := fe.Field()
	if customField != nil {
		if _, ok := (*customField)[field]; ok {
			field = (*customField)[field]
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "min":
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace charaters", field)
	case "cdate":
		return fmt.Sprintf("%v must be a valid date (YYYY-MM-DD)", field)
	case "certStatus":
		return fmt.Sprintf("%v must be one of active, revoked, expired", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error() // default error
}

/*
GenerateErrorMessages extracts validation errors and returns them as an array of ApiError.
Each ApiError contains the field name and a descriptive error message.

Example output:

	[
	  {
		"field": "certificateNumber",
		"message": "certificateNumber is required"
	  }
	]

Optional Parameters:
- customField (map[string]string): A map to override field names in the error messages.
- fieldName (string): A specific field name used when err is not a validation error.
*/
func GenerateErrorMessages(err error, optionalParams ...interface{}) []ApiError {
	var customField map[string]string
	var fieldName string

	for _, param := range optionalParams {
		switch v := param.(type) {
		case map[string]string:
			customField = v
		case string:
			fieldName = v
		}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			field := fe.Field()
			if customField != nil {
				if customFieldName, ok := customField[field]; ok {
					field = customFieldName
				}
			}
			out[i] = ApiError{field, msgForTag(fe, &customField)}
		}
		return out
	}

	if fieldName == "" {
		fieldName = "Unknown"
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return []ApiError{{Field: fieldName, Message: "Record not found"}}
	default:
		return []ApiError{{Field: fieldName, Message: err.Error()}}
	}
}

/*
Extract error from validator and return the first error as a string
Usage: GenerateErrorMessagesAsString(err, nil)
Example output: "certificateNumber is required"
*/
func GenerateErrorMessagesAsString(err error, customField map[string]string) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		if len(ve) > 0 {
			return msgForTag(ve[0], &customField)
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Record not found"
	}

	return err.Error()
}

// RegisterValidations installs the custom tags and makes field errors report
// json names. Used for gin's binding engine and for NewValidator.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonTagName)

	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		return err
	}
	if err := v.RegisterValidation("cdate", CertificateDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("certStatus", CertificateStatus); err != nil {
		return err
	}
	return nil
}

// NewValidator returns a validator reading the same `binding` tags gin uses.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterValidations(v); err != nil {
		// only fails on an empty tag name, which is a programming error
		panic(err)
	}
	return v
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(strings.TrimSpace(field.String())) > 0
}

// check if string is a certificate date (YYYY-MM-DD or RFC 3339)
// Usage: `binding:"cdate"`
func CertificateDate(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	_, err := model.ParseDate(field.String())
	return err == nil
}

// check if string is one of the certificate statuses
// Usage: `binding:"certStatus"`
func CertificateStatus(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return model.CertificateStatus(strings.TrimSpace(field.String())).IsValid()
}

var ginValidationsOnce sync.Once

// RegisterGinValidations installs the custom tags on gin's binding engine.
// Safe to call more than once; registration happens on the first call.
func RegisterGinValidations() error {
	var err error
	ginValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not a go-playground validator")
			return
		}
		err = RegisterValidations(v)
	})
	return err
}
