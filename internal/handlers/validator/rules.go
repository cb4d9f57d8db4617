package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewAccountValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("onboarding_status", onboardingStatusValidator),
		},
		{
			Rule: registerFn("json_object", jsonObjectValidator),
		},
	}
}

func NewProfileValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("phone", phoneValidator),
		},
		{
			Rule: registerFn("availability", availabilityValidator),
		},
		{
			Rule: registerFn("salary_range", salaryRangeValidator),
		},
	}
}
