package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewSelectionValidationRules registers the tags shared by calculation requests
// and chart queries.
func NewSelectionValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("machine", machineValidator),
		},
		{
			Rule: registerFn("cutter", cutterValidator),
		},
		{
			Rule: registerFn("flutes", flutesValidator),
		},
		{
			Rule: registerFn("aggression", aggressionValidator),
		},
		{
			Rule: registerFn("unit", unitValidator),
		},
	}
}

func NewCalculationValidationRules() []ValidationRule {
	return append(NewSelectionValidationRules(), ValidationRule{
		Rule: registerFn("material", materialValidator),
	})
}

func NewChartValidationRules() []ValidationRule {
	return append(NewSelectionValidationRules(), ValidationRule{
		Rule: registerFn("chart_format", chartFormatValidator),
	})
}
