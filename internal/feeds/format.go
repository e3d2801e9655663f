package feeds

import (
	"strconv"
	"strings"
)

// Number of decimals shown for each output.
const (
	FeedRateDigits   = 4
	DepthOfCutDigits = 4
	ChipLoadDigits   = 6
)

// Trim formats value with digits decimals and drops trailing zeros and a trailing point.
func Trim(value float64, digits int) string {
	s := strconv.FormatFloat(value, 'f', digits, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Display is the presentation form of a Result.
type Display struct {
	FeedRate   string `json:"feedRate"`
	DepthOfCut string `json:"depthOfCut"`
	ChipLoad   string `json:"chipLoad"`
}

// Display renders r with unit suffixes: "<unit>/min" for the feed rate, "<unit>" otherwise.
func (r Result) Display(unit Unit) Display {
	return Display{
		FeedRate:   Trim(r.FeedRate, FeedRateDigits) + " " + unit.String() + "/min",
		DepthOfCut: Trim(r.DepthOfCut, DepthOfCutDigits) + " " + unit.String(),
		ChipLoad:   Trim(r.ChipLoad, ChipLoadDigits) + " " + unit.String(),
	}
}
