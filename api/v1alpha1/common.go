package v1alpha1

type Unit string

const (
	UnitMm   Unit = "mm"
	UnitInch Unit = "inch"
)

type ChartFormat string

const (
	ChartFormatCsv  ChartFormat = "csv"
	ChartFormatHtml ChartFormat = "html"
	ChartFormatXlsx ChartFormat = "xlsx"
)

func StringToUnit(s string) Unit {
	switch s {
	case string(UnitInch):
		return UnitInch
	default:
		return UnitMm
	}
}

func StringToChartFormat(s string) ChartFormat {
	switch s {
	case string(ChartFormatHtml):
		return ChartFormatHtml
	case string(ChartFormatXlsx):
		return ChartFormatXlsx
	default:
		return ChartFormatCsv
	}
}
