package validator

import (
	"bytes"
	"encoding/json"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	v1 "github.com/hireloop/identity/api/v1"
	"github.com/thoas/go-funk"
)

var (
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{2,31}$`)

	availabilities = []string{"immediately", "two_weeks", "one_month", "three_months", "flexible"}
)

func onboardingStatusValidator(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return v1.OnboardingStatus(fl.Field().String()).Valid()
}

// jsonObjectValidator accepts a JSON document whose top level is an object.
func jsonObjectValidator(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Slice {
		return false
	}
	data := bytes.TrimSpace(fl.Field().Bytes())
	return len(data) > 0 && data[0] == '{' && json.Valid(data)
}

func phoneValidator(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return phoneRegex.MatchString(fl.Field().String())
}

func availabilityValidator(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return funk.ContainsString(availabilities, fl.Field().String())
}

// salaryRangeValidator checks the field against DesiredSalaryMin of the same struct.
func salaryRangeValidator(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Int {
		return false
	}

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	minField := parent.FieldByName("DesiredSalaryMin")
	if !minField.IsValid() || (minField.Kind() == reflect.Ptr && minField.IsNil()) {
		return true
	}
	if minField.Kind() == reflect.Ptr {
		minField = minField.Elem()
	}
	return fl.Field().Int() >= minField.Int()
}
