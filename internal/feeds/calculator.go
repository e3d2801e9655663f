package feeds

import (
	"fmt"
	"math"
)

// Compute derives the cutting parameters for in.
//
// An input that references a machine, material, aggression, flute count or cutter class
// missing from the tables, or that has no positive spindle speed, yields the zero Result.
func Compute(in Input) Result {
	b, ok := Explain(in)
	if !ok {
		return Result{}
	}
	return b.Result
}

// Explain runs the same derivation as Compute and also returns every intermediate factor.
// The boolean is false when in is incomplete, in which case the Breakdown is zero.
func Explain(in Input) (Breakdown, bool) {
	material, ok := LookupMaterial(in.Material)
	if !ok {
		return Breakdown{}, false
	}
	machine, ok := LookupMachine(in.Machine)
	if !ok {
		return Breakdown{}, false
	}
	aggression, ok := LookupAggression(in.Aggression)
	if !ok {
		return Breakdown{}, false
	}
	if !in.CutWidth.Valid() || !ValidFlutes(in.Flutes) {
		return Breakdown{}, false
	}
	if math.IsNaN(in.RPM) || math.IsInf(in.RPM, 0) || in.RPM <= 0 {
		return Breakdown{}, false
	}

	unitScale := in.Unit.Scale()
	revsPerMinute := in.RPM * float64(in.Flutes)

	rawFeedRate := material.FeedRate.At(in.CutWidth) * revsPerMinute
	multiplier := material.Multiplier(machine.Name)
	limited := math.Min(FeedRateLimit, rawFeedRate*multiplier)
	feedRate := limited * unitScale

	depthOfCut := material.Depth.At(in.CutWidth) * machine.Factor * aggression.Factor * unitScale

	// feedRate already carries unitScale, so chip load ends up scaled twice.
	chipLoad := (feedRate / revsPerMinute) * unitScale

	return Breakdown{
		Result: Result{
			FeedRate:   feedRate,
			DepthOfCut: depthOfCut,
			ChipLoad:   chipLoad,
		},
		RawFeedRate:      rawFeedRate,
		Multiplier:       multiplier,
		MachineFactor:    machine.Factor,
		AggressionFactor: aggression.Factor,
		UnitScale:        unitScale,
		Clamped:          rawFeedRate*multiplier > FeedRateLimit,
		Reason:           reason(in, material, rawFeedRate, multiplier, machine.Factor, aggression.Factor),
	}, true
}

func reason(in Input, material MaterialProfile, rawFeedRate, multiplier, machineFactor, aggressionFactor float64) string {
	feed := fmt.Sprintf("feed %g x %g rpm x %d flutes x %g = %g",
		material.FeedRate.At(in.CutWidth), in.RPM, in.Flutes, multiplier, rawFeedRate*multiplier)
	if rawFeedRate*multiplier > FeedRateLimit {
		feed += fmt.Sprintf(", limited to %g", FeedRateLimit)
	}
	depth := fmt.Sprintf("depth %g x machine %g x aggression %g",
		material.Depth.At(in.CutWidth), machineFactor, aggressionFactor)
	return fmt.Sprintf("%s; %s; unit scale %g", feed, depth, in.Unit.Scale())
}
