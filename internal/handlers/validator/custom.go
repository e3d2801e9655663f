package validator

import (
	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/thoas/go-funk"
)

func machineValidator(fl validator.FieldLevel) bool {
	_, ok := feeds.LookupMachine(fl.Field().String())
	return ok
}

func materialValidator(fl validator.FieldLevel) bool {
	_, ok := feeds.LookupMaterial(fl.Field().String())
	return ok
}

func aggressionValidator(fl validator.FieldLevel) bool {
	_, ok := feeds.LookupAggression(fl.Field().String())
	return ok
}

func cutterValidator(fl validator.FieldLevel) bool {
	_, ok := feeds.LookupCutWidth(fl.Field().String())
	return ok
}

func flutesValidator(fl validator.FieldLevel) bool {
	if !fl.Field().CanInt() {
		return false
	}
	return feeds.ValidFlutes(int(fl.Field().Int()))
}

// unitValidator accepts every spelling feeds.ParseUnit understands.
func unitValidator(fl validator.FieldLevel) bool {
	_, err := feeds.ParseUnit(fl.Field().String())
	return err == nil
}

func chartFormatValidator(fl validator.FieldLevel) bool {
	return funk.Contains(service.ChartFormats(), service.ChartFormat(fl.Field().String()))
}
