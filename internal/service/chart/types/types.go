package types

import (
	"time"

	"github.com/feedrate/feedrate-calculator/internal/feeds"
)

type ChartRenderer interface {
	Render(data *ChartData) ([]byte, error)
	SupportedFormat() ChartFormat
	ContentType() string
}

type ChartFormat string

const (
	ChartFormatCSV  ChartFormat = "csv"
	ChartFormatHTML ChartFormat = "html"
	ChartFormatXLSX ChartFormat = "xlsx"
)

// ChartOptions fixes every selection except material and spindle speed, which the chart sweeps.
type ChartOptions struct {
	Machine    string
	Cutter     string
	Flutes     int
	Aggression string
	Unit       feeds.Unit
	RPMFrom    float64
	RPMTo      float64
	RPMStep    float64
	Format     ChartFormat
}

type ChartRow struct {
	RPM     float64
	Result  feeds.Result
	Clamped bool
}

type MaterialChart struct {
	Material string
	Rows     []ChartRow
}

type ChartData struct {
	Options   ChartOptions
	Cutter    feeds.CutWidthOption
	Materials []MaterialChart
	Generated time.Time
}

// Headers are the column titles shared by every tabular renderer.
func (d *ChartData) Headers() []string {
	u := d.Options.Unit.String()
	return []string{
		"Material",
		"RPM",
		"Feed Rate (" + u + "/min)",
		"Depth of Cut (" + u + ")",
		"Chip Load (" + u + ")",
		"Feed Limited",
	}
}

// Settings lists the fixed selections as label/value pairs.
func (d *ChartData) Settings() [][2]string {
	return [][2]string{
		{"Machine", d.Options.Machine},
		{"Cutter", d.Cutter.Label},
		{"Flutes", itoa(d.Options.Flutes)},
		{"Aggression", d.Options.Aggression},
		{"Unit", d.Options.Unit.String()},
	}
}
