package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/feedrate/feedrate-calculator/internal/service/chart/types"
)

const sheetName = "Feed Chart"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ChartFormat {
	return types.ChartFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render writes a single sheet: the settings block, a header row, then one row per
// material and spindle speed with numeric cells.
func (r *Renderer) Render(data *types.ChartData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	row := 1
	for _, setting := range data.Settings() {
		if err := f.SetSheetRow(sheetName, cell(0, row), &[]any{setting[0], setting[1]}); err != nil {
			return nil, err
		}
		row++
	}
	row++

	headers := data.Headers()
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, cell(0, row), &headerRow); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(0, row), cell(len(headers)-1, row), bold); err != nil {
		return nil, err
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: row, TopLeftCell: cell(0, row+1), ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}
	row++

	for _, m := range data.Materials {
		for _, cr := range m.Rows {
			values := []any{m.Material, cr.RPM, cr.Result.FeedRate, cr.Result.DepthOfCut, cr.Result.ChipLoad, cr.Clamped}
			if err := f.SetSheetRow(sheetName, cell(0, row), &values); err != nil {
				return nil, err
			}
			row++
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "F", 20); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
