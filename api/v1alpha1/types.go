package v1alpha1

// Info defines model for Info.
type Info struct {
	BuildDate   string `json:"buildDate,omitempty"`
	GitCommit   string `json:"gitCommit"`
	GoVersion   string `json:"goVersion,omitempty"`
	Platform    string `json:"platform,omitempty"`
	VersionName string `json:"versionName"`
}

// Error defines model for Error.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

// CalculateRequest defines model for CalculateRequest.
type CalculateRequest struct {
	Aggression string  `json:"aggression" validate:"required,aggression"`
	Cutter     string  `json:"cutter" validate:"required,cutter"`
	Flutes     int     `json:"flutes" validate:"flutes"`
	Machine    string  `json:"machine" validate:"required,machine"`
	Material   string  `json:"material" validate:"required,material"`
	Rpm        float64 `json:"rpm" validate:"gte=800,lte=25000"`
	Unit       *string `json:"unit,omitempty" validate:"omitempty,unit"`
}

// Result defines model for Result.
type Result struct {
	ChipLoad   float64 `json:"chipLoad"`
	DepthOfCut float64 `json:"depthOfCut"`
	FeedRate   float64 `json:"feedRate"`
}

// Display defines model for Display.
type Display struct {
	ChipLoad   string `json:"chipLoad"`
	DepthOfCut string `json:"depthOfCut"`
	FeedRate   string `json:"feedRate"`
}

// Breakdown defines model for Breakdown.
type Breakdown struct {
	AggressionFactor float64 `json:"aggressionFactor"`
	Clamped          bool    `json:"clamped"`
	MachineFactor    float64 `json:"machineFactor"`
	Multiplier       float64 `json:"multiplier"`
	RawFeedRate      float64 `json:"rawFeedRate"`
	Reason           string  `json:"reason,omitempty"`
	UnitScale        float64 `json:"unitScale"`
}

// Calculation defines model for Calculation.
type Calculation struct {
	Breakdown *Breakdown `json:"breakdown,omitempty"`
	Display   Display    `json:"display"`
	Result    Result     `json:"result"`
	Unit      Unit       `json:"unit"`
}

// Machine defines model for Machine.
type Machine struct {
	Factor float64 `json:"factor"`
	Name   string  `json:"name"`
}

// Cutter defines model for Cutter.
type Cutter struct {
	Class      int     `json:"class"`
	DiameterMm float64 `json:"diameterMm"`
	Label      string  `json:"label"`
}

// Aggression defines model for Aggression.
type Aggression struct {
	Factor float64 `json:"factor"`
	Name   string  `json:"name"`
}

// Material defines model for Material.
type Material struct {
	Depth              []float64          `json:"depth"`
	FeedRate           []float64          `json:"feedRate"`
	FeedRateMultiplier map[string]float64 `json:"feedRateMultiplier,omitempty"`
	Name               string             `json:"name"`
}

// Options defines model for Options.
type Options struct {
	Aggressions  []Aggression     `json:"aggressions"`
	ChartFormats []ChartFormat    `json:"chartFormats"`
	Cutters      []Cutter         `json:"cutters"`
	Defaults     CalculateRequest `json:"defaults"`
	Flutes       []int            `json:"flutes"`
	Machines     []Machine        `json:"machines"`
	Materials    []Material       `json:"materials"`
	MaxRpm       float64          `json:"maxRpm"`
	MinRpm       float64          `json:"minRpm"`
	Units        []Unit           `json:"units"`
}

// GetChartParams defines parameters for GetChart.
type GetChartParams struct {
	Aggression *string      `json:"aggression,omitempty" validate:"omitempty,aggression"`
	Cutter     *string      `json:"cutter,omitempty" validate:"omitempty,cutter"`
	Flutes     *int         `json:"flutes,omitempty" validate:"omitempty,flutes"`
	Format     *ChartFormat `json:"format,omitempty" validate:"omitempty,chart_format"`
	Machine    *string      `json:"machine,omitempty" validate:"omitempty,machine"`
	RpmFrom    *float64     `json:"rpmFrom,omitempty" validate:"omitempty,gte=800,lte=25000"`
	RpmStep    *float64     `json:"rpmStep,omitempty" validate:"omitempty,gt=0"`
	RpmTo      *float64     `json:"rpmTo,omitempty" validate:"omitempty,gte=800,lte=25000"`
	Unit       *string      `json:"unit,omitempty" validate:"omitempty,unit"`
}
