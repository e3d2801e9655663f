package mappers

import (
	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/feedrate/feedrate-calculator/pkg/version"
)

func CalculationToApi(c *service.CalculationResult, withBreakdown bool) v1alpha1.Calculation {
	out := v1alpha1.Calculation{
		Unit: v1alpha1.StringToUnit(c.Input.Unit.String()),
		Result: v1alpha1.Result{
			FeedRate:   c.Result.FeedRate,
			DepthOfCut: c.Result.DepthOfCut,
			ChipLoad:   c.Result.ChipLoad,
		},
		Display: v1alpha1.Display{
			FeedRate:   c.Display.FeedRate,
			DepthOfCut: c.Display.DepthOfCut,
			ChipLoad:   c.Display.ChipLoad,
		},
	}
	if withBreakdown {
		b := c.Breakdown
		out.Breakdown = &v1alpha1.Breakdown{
			RawFeedRate:      b.RawFeedRate,
			Multiplier:       b.Multiplier,
			MachineFactor:    b.MachineFactor,
			AggressionFactor: b.AggressionFactor,
			UnitScale:        b.UnitScale,
			Clamped:          b.Clamped,
			Reason:           b.Reason,
		}
	}
	return out
}

func OptionsToApi(o service.Options) v1alpha1.Options {
	out := v1alpha1.Options{
		Flutes: o.Flutes,
		MinRpm: o.MinRPM,
		MaxRpm: o.MaxRPM,
		Defaults: v1alpha1.CalculateRequest{
			Machine:    o.Defaults.Machine,
			Cutter:     o.DefaultCutter.Label,
			Flutes:     o.Defaults.Flutes,
			Aggression: o.Defaults.Aggression,
			Material:   o.Defaults.Material,
			Rpm:        o.Defaults.RPM,
		},
	}

	unit := o.Defaults.Unit.String()
	out.Defaults.Unit = &unit

	for _, m := range o.Machines {
		out.Machines = append(out.Machines, v1alpha1.Machine{Name: m.Name, Factor: m.Factor})
	}
	for _, c := range o.CutWidths {
		out.Cutters = append(out.Cutters, v1alpha1.Cutter{Label: c.Label, DiameterMm: c.DiameterMM, Class: int(c.Class)})
	}
	for _, a := range o.Aggressions {
		out.Aggressions = append(out.Aggressions, v1alpha1.Aggression{Name: a.Name, Factor: a.Factor})
	}
	for _, m := range o.Materials {
		out.Materials = append(out.Materials, materialToApi(m))
	}
	for _, u := range o.Units {
		out.Units = append(out.Units, v1alpha1.StringToUnit(u.String()))
	}
	for _, f := range service.ChartFormats() {
		out.ChartFormats = append(out.ChartFormats, v1alpha1.StringToChartFormat(string(f)))
	}
	return out
}

func materialToApi(m feeds.MaterialProfile) v1alpha1.Material {
	return v1alpha1.Material{
		Name:               m.Name,
		FeedRate:           m.FeedRate[:],
		Depth:              m.Depth[:],
		FeedRateMultiplier: m.FeedRateMultiplier,
	}
}

func InfoToApi(v version.Info) v1alpha1.Info {
	return v1alpha1.Info{
		GitCommit:   v.GitCommit,
		VersionName: v.GitVersion,
		BuildDate:   v.BuildDate,
		GoVersion:   v.GoVersion,
		Platform:    v.Platform,
	}
}
