package service

import (
	"context"
	"math"
	"strings"

	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/pkg/log"
	"github.com/feedrate/feedrate-calculator/pkg/metrics"
)

// CalculationResult is a computed Result together with its presentation and derivation.
type CalculationResult struct {
	Input     feeds.Input
	Result    feeds.Result
	Display   feeds.Display
	Breakdown feeds.Breakdown
}

// Options describes every choice offered to a user.
type Options struct {
	Machines      []feeds.MachineProfile
	CutWidths     []feeds.CutWidthOption
	Flutes        []int
	Aggressions   []feeds.AggressionOption
	Materials     []feeds.MaterialProfile
	Units         []feeds.Unit
	MinRPM        float64
	MaxRPM        float64
	Defaults      feeds.Input
	// DefaultCutter is the menu entry behind Defaults.CutWidth.
	DefaultCutter feeds.CutWidthOption
}

// CalculatorService is the entry point of the API and the CLI into the feeds package.
// Unlike feeds.Compute it rejects incomplete selections with typed errors.
type CalculatorService struct {
	logger *log.StructuredLogger
}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{
		logger: log.NewDebugLogger("calculator_service"),
	}
}

// Calculate validates in and derives its cutting parameters.
func (s *CalculatorService) Calculate(ctx context.Context, in feeds.Input) (*CalculationResult, error) {
	tracer := s.logger.WithContext(ctx).Operation("calculate").
		WithString("machine", in.Machine).
		WithString("material", in.Material).
		WithString("aggression", in.Aggression).
		WithInt("cutter_class", int(in.CutWidth)).
		WithInt("flutes", in.Flutes).
		WithFloat("rpm", in.RPM).
		WithString("unit", in.Unit.String()).
		Build()

	if err := Validate(in); err != nil {
		metrics.IncreaseRejectedInputsTotalMetric(rejectReason(err))
		tracer.Error(err).Log()
		return nil, err
	}

	breakdown, _ := feeds.Explain(in)

	metrics.IncreaseCalculationsTotalMetric(in.Material, in.Machine, in.Unit.String())
	if breakdown.Clamped {
		metrics.IncreaseClampedFeedsTotalMetric(in.Material, in.Machine)
	}

	tracer.Success().
		WithFloat("feed_rate", breakdown.FeedRate).
		WithFloat("depth_of_cut", breakdown.DepthOfCut).
		WithFloat("chip_load", breakdown.ChipLoad).
		WithBool("clamped", breakdown.Clamped).
		Log()

	return &CalculationResult{
		Input:     in,
		Result:    breakdown.Result,
		Display:   breakdown.Result.Display(in.Unit),
		Breakdown: breakdown,
	}, nil
}

// Options returns the option tables and the default selection.
func (s *CalculatorService) Options() Options {
	defaults := feeds.DefaultSelection()
	cutter, _ := defaults.Cutter()
	return Options{
		Machines:      feeds.Machines(),
		CutWidths:     feeds.CutWidths(),
		Flutes:        feeds.Flutes(),
		Aggressions:   feeds.Aggressions(),
		Materials:     feeds.Materials(),
		Units:         []feeds.Unit{feeds.UnitMillimeter, feeds.UnitInch},
		MinRPM:        feeds.MinRPM,
		MaxRPM:        feeds.MaxRPM,
		Defaults:      defaults.Input(),
		DefaultCutter: cutter,
	}
}

// Validate reports the first selection of in that is missing from the tables.
func Validate(in feeds.Input) error {
	if _, ok := feeds.LookupMachine(in.Machine); !ok {
		return NewErrUnknownOption("machine", in.Machine)
	}
	if !in.CutWidth.Valid() {
		return NewErrUnknownOption("cutter class", int(in.CutWidth))
	}
	if !feeds.ValidFlutes(in.Flutes) {
		return NewErrUnknownOption("flute count", in.Flutes)
	}
	if _, ok := feeds.LookupAggression(in.Aggression); !ok {
		return NewErrUnknownOption("aggression", in.Aggression)
	}
	if _, ok := feeds.LookupMaterial(in.Material); !ok {
		return NewErrUnknownOption("material", in.Material)
	}
	if in.Unit != feeds.UnitMillimeter && in.Unit != feeds.UnitInch {
		return NewErrUnknownOption("unit", in.Unit)
	}
	return validateRPM(in.RPM)
}

func validateRPM(rpm float64) error {
	if math.IsNaN(rpm) || rpm < feeds.MinRPM || rpm > feeds.MaxRPM {
		return NewErrRPMOutOfRange(rpm)
	}
	return nil
}

func rejectReason(err error) string {
	switch e := err.(type) {
	case *ErrUnknownOption:
		return "unknown_" + strings.ReplaceAll(e.Kind, " ", "_")
	case *ErrRPMOutOfRange:
		return "rpm_out_of_range"
	default:
		return "other"
	}
}
