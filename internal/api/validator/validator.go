package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	sep = " and "
)

const (
	MSISDNsTag = "msisdns"
)

var msisdnRegex = regexp.MustCompile(`^\+?\d{9,15}$`)

var valid = map[string]func(fl validator.FieldLevel) bool{
	MSISDNsTag: ValidateMSISDNs,
}

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
	Message(errs []Error) string
}

type XValidator struct {
	validator *validator.Validate
}

func NewXValidator(v *validator.Validate) (IXValidator, error) {
	for key, function := range valid {
		if err := v.RegisterValidation(key, function); err != nil {
			return nil, fmt.Errorf("register %s validation: %w", key, err)
		}
	}

	return &XValidator{validator: v}, nil
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	err := x.validator.Struct(data)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Error{{FailedField: "body", Tag: "invalid"}}
	}

	for _, fe := range errs {
		validationErrors = append(validationErrors, Error{
			FailedField: fe.Namespace(),
			Tag:         fe.Tag(),
			Value:       fe.Value(),
		})
	}

	return validationErrors
}

func (x XValidator) Message(errs []Error) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("[%s] failed on '%s'", e.FailedField, e.Tag))
	}
	return strings.Join(msgs, sep)
}

// ValidateMSISDNs accepts a comma-separated list of international numbers.
func ValidateMSISDNs(fl validator.FieldLevel) bool {
	numbers := fl.Field().String()
	if numbers == "" {
		return false
	}

	for _, n := range strings.Split(numbers, ",") {
		if !msisdnRegex.MatchString(strings.TrimSpace(n)) {
			return false
		}
	}

	return true
}
