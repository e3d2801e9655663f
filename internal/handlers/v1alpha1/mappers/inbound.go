package mappers

import (
	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/internal/service"
)

// parseUnit maps an optional unit to feeds.Unit, millimeters when absent.
func parseUnit(unit *string) (feeds.Unit, error) {
	if unit == nil || *unit == "" {
		return feeds.UnitMillimeter, nil
	}
	u, err := feeds.ParseUnit(*unit)
	if err != nil {
		return "", service.NewErrUnknownOption("unit", *unit)
	}
	return u, nil
}

func CalculateRequestToInput(req v1alpha1.CalculateRequest) (feeds.Input, error) {
	cutter, ok := feeds.LookupCutWidth(req.Cutter)
	if !ok {
		return feeds.Input{}, service.NewErrUnknownOption("cutter", req.Cutter)
	}
	unit, err := parseUnit(req.Unit)
	if err != nil {
		return feeds.Input{}, err
	}

	return feeds.Input{
		Machine:    req.Machine,
		CutWidth:   cutter.Class,
		Flutes:     req.Flutes,
		Aggression: req.Aggression,
		Material:   req.Material,
		RPM:        req.Rpm,
		Unit:       unit,
	}, nil
}

// ChartParamsToOptions fills every parameter the caller left out from the default selection.
func ChartParamsToOptions(params v1alpha1.GetChartParams) (service.ChartOptions, error) {
	defaults := feeds.DefaultSelection()
	in := defaults.Input()
	cutter, _ := defaults.Cutter()

	opts := service.ChartOptions{
		Machine:    in.Machine,
		Cutter:     cutter.Label,
		Flutes:     in.Flutes,
		Aggression: in.Aggression,
		Format:     service.ChartFormatCSV,
	}

	if params.Machine != nil {
		opts.Machine = *params.Machine
	}
	if params.Cutter != nil {
		opts.Cutter = *params.Cutter
	}
	if params.Flutes != nil {
		opts.Flutes = *params.Flutes
	}
	if params.Aggression != nil {
		opts.Aggression = *params.Aggression
	}
	if params.Format != nil {
		opts.Format = service.ChartFormat(*params.Format)
	}
	if params.RpmFrom != nil {
		opts.RPMFrom = *params.RpmFrom
	}
	if params.RpmTo != nil {
		opts.RPMTo = *params.RpmTo
	}
	if params.RpmStep != nil {
		opts.RPMStep = *params.RpmStep
	}

	unit, err := parseUnit(params.Unit)
	if err != nil {
		return service.ChartOptions{}, err
	}
	opts.Unit = unit

	return opts, nil
}
