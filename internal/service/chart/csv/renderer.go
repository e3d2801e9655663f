package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/feedrate/feedrate-calculator/internal/service/chart/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ChartFormat {
	return types.ChartFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv"
}

func (r *Renderer) Render(data *types.ChartData) ([]byte, error) {
	var csvRows [][]string

	csvRows = append(csvRows, []string{"FEED RATE CHART"})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s", data.Generated.Format(time.RFC3339))})
	csvRows = append(csvRows, []string{""})

	for _, setting := range data.Settings() {
		csvRows = append(csvRows, []string{setting[0], setting[1]})
	}
	csvRows = append(csvRows, []string{""})

	csvRows = append(csvRows, data.Headers())
	for _, m := range data.Materials {
		for _, row := range m.Rows {
			csvRows = append(csvRows, types.FormatRow(m.Material, row))
		}
	}

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}
