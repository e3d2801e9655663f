package service

import (
	"fmt"

	"github.com/feedrate/feedrate-calculator/internal/feeds"
)

// ErrUnknownOption is returned when a selection names an entry that is not in the option tables.
type ErrUnknownOption struct {
	error
	Kind string
}

func NewErrUnknownOption(kind string, value any) *ErrUnknownOption {
	return &ErrUnknownOption{error: fmt.Errorf("unknown %s %v", kind, value), Kind: kind}
}

type ErrRPMOutOfRange struct {
	error
}

func NewErrRPMOutOfRange(rpm float64) *ErrRPMOutOfRange {
	return &ErrRPMOutOfRange{fmt.Errorf("rpm %g is outside [%g, %g]", rpm, feeds.MinRPM, feeds.MaxRPM)}
}

type ErrInvalidChartRange struct {
	error
}

func NewErrInvalidChartRange(format string, args ...any) *ErrInvalidChartRange {
	return &ErrInvalidChartRange{fmt.Errorf(format, args...)}
}

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format string) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported chart format: %s", format)}
}
