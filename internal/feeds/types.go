package feeds

import (
	"fmt"
	"strings"
)

const (
	// MillimetersPerInch is the scale applied to every output when the unit is millimeters.
	MillimetersPerInch = 25.4

	// FeedRateLimit caps the feed rate before the unit scale is applied.
	FeedRateLimit = 320.0

	// MinRPM and MaxRPM bound the spindle speed offered to the user.
	MinRPM = 800.0
	MaxRPM = 25000.0
	// DefaultRPM is the initial spindle speed.
	DefaultRPM = 15000.0
)

// Unit selects the output units. It only affects the final scale of the outputs.
type Unit string

const (
	UnitMillimeter Unit = "mm"
	UnitInch       Unit = "inch"
)

// Scale returns 25.4 for millimeters and 1 for anything else.
func (u Unit) Scale() float64 {
	if u == UnitMillimeter {
		return MillimetersPerInch
	}
	return 1
}

func (u Unit) String() string { return string(u) }

// ParseUnit accepts the unit names used on the command line and in the API.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters":
		return UnitMillimeter, nil
	case "inch", "inches", "in":
		return UnitInch, nil
	default:
		return "", fmt.Errorf("unknown unit %q", s)
	}
}

// CutterClass is the ordinal used to index the material coefficient tables.
type CutterClass int

const (
	CutterClassXS CutterClass = iota // 1/16" or 2mm
	CutterClassS                     // 1/8" or 3mm
	CutterClassM                     // 3/16" or 5mm
	CutterClassL                     // 1/4" or 6mm

	cutterClassCount = 4
)

// Valid reports whether c can index a coefficient table.
func (c CutterClass) Valid() bool {
	return c >= 0 && c < cutterClassCount
}

// Coefficients holds one value per cutter class.
type Coefficients [cutterClassCount]float64

// At returns the coefficient for class c. c must be valid.
func (c Coefficients) At(class CutterClass) float64 {
	return c[class]
}

// CutWidthOption is one entry of the cutter diameter menu.
// The label is the key, the class picks the material coefficients.
type CutWidthOption struct {
	Label      string      `json:"label"`
	DiameterMM float64     `json:"diameterMM"`
	Class      CutterClass `json:"class"`
}

// MachineProfile is a router model. Factor scales the depth of cut.
type MachineProfile struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// AggressionOption trades material removal speed against tool and machine stress.
// Factor only scales the depth of cut.
type AggressionOption struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// MaterialProfile holds the per-class coefficients of one stock material.
type MaterialProfile struct {
	Name     string       `json:"name"`
	FeedRate Coefficients `json:"feedRate"`
	Depth    Coefficients `json:"depth"`
	// FeedRateMultiplier overrides the feed rate multiplier for specific machines.
	FeedRateMultiplier map[string]float64 `json:"feedRateMultiplier,omitempty"`
}

// Multiplier returns the feed rate multiplier for machine, 1 when there is no override.
func (m MaterialProfile) Multiplier(machine string) float64 {
	if mult, ok := m.FeedRateMultiplier[machine]; ok && mult != 0 {
		return mult
	}
	return 1
}

// Input is one complete set of selections.
type Input struct {
	Machine    string      `json:"machine"`
	CutWidth   CutterClass `json:"cutWidth"`
	Flutes     int         `json:"flutes"`
	Aggression string      `json:"aggression"`
	Material   string      `json:"material"`
	RPM        float64     `json:"rpm"`
	Unit       Unit        `json:"unit"`
}

// Result holds the derived cutting parameters, expressed in Input.Unit.
type Result struct {
	FeedRate   float64 `json:"feedRate"`
	DepthOfCut float64 `json:"depthOfCut"`
	ChipLoad   float64 `json:"chipLoad"`
}

// IsZero reports whether r is the result returned for an incomplete selection.
func (r Result) IsZero() bool {
	return r == Result{}
}

// Breakdown exposes the factors that went into a Result.
type Breakdown struct {
	Result

	RawFeedRate      float64 `json:"rawFeedRate"`
	Multiplier       float64 `json:"multiplier"`
	MachineFactor    float64 `json:"machineFactor"`
	AggressionFactor float64 `json:"aggressionFactor"`
	UnitScale        float64 `json:"unitScale"`
	Clamped          bool    `json:"clamped"`
	Reason           string  `json:"reason"`
}
