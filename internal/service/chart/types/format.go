package types

import (
	"strconv"

	"github.com/feedrate/feedrate-calculator/internal/feeds"
)

func itoa(i int) string { return strconv.Itoa(i) }

// FormatRow renders a row with the same precision as the calculator display.
func FormatRow(material string, row ChartRow) []string {
	limited := "no"
	if row.Clamped {
		limited = "yes"
	}
	return []string{
		material,
		feeds.Trim(row.RPM, 0),
		feeds.Trim(row.Result.FeedRate, feeds.FeedRateDigits),
		feeds.Trim(row.Result.DepthOfCut, feeds.DepthOfCutDigits),
		feeds.Trim(row.Result.ChipLoad, feeds.ChipLoadDigits),
		limited,
	}
}
