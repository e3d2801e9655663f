package html

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/feedrate/feedrate-calculator/internal/service/chart/types"
)

type Renderer struct {
	tmpl *template.Template
}

type materialSection struct {
	Name string
	Rows [][]string
}

type templateData struct {
	CSS       template.CSS
	Generated string
	Settings  [][2]string
	Headers   []string
	Materials []materialSection
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("chart").Parse(chartTemplate))}
}

func (r *Renderer) SupportedFormat() types.ChartFormat {
	return types.ChartFormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(data *types.ChartData) ([]byte, error) {
	td := templateData{
		CSS:       template.CSS(chartCSS),
		Generated: data.Generated.Format(time.RFC1123),
		Settings:  data.Settings(),
		// the material gets its own heading, so it is dropped from the columns
		Headers: data.Headers()[1:],
	}

	for _, m := range data.Materials {
		section := materialSection{Name: m.Material}
		for _, row := range m.Rows {
			section.Rows = append(section.Rows, types.FormatRow(m.Material, row)[1:])
		}
		td.Materials = append(td.Materials, section)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

const chartCSS = `
        body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
        .container { max-width: 1000px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; }
        h1 { color: #2c3e50; text-align: center; }
        h2 { color: #2c3e50; border-left: 4px solid #3498db; padding-left: 15px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 8px 12px; text-align: right; border-bottom: 1px solid #ddd; }
        th { background: #34495e; color: white; }
        tr:nth-child(even) { background-color: #f8f9fa; }
        .settings td { text-align: left; }
        .limited { color: #c0392b; font-weight: bold; }
`

const chartTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Feed Rate Chart</title>
    <style>{{.CSS}}</style>
</head>
<body>
<div class="container">
    <h1>Feed Rate Chart</h1>
    <p>Generated {{.Generated}}</p>
    <table class="settings">
        {{- range .Settings}}
        <tr><td>{{index . 0}}</td><td>{{index . 1}}</td></tr>
        {{- end}}
    </table>
    {{- range .Materials}}
    <h2>{{.Name}}</h2>
    <table>
        <tr>{{range $.Headers}}<th>{{.}}</th>{{end}}</tr>
        {{- range .Rows}}
        <tr>{{range $i, $v := .}}{{if and (eq $i 4) (eq $v "yes")}}<td class="limited">{{$v}}</td>{{else}}<td>{{$v}}</td>{{end}}{{end}}</tr>
        {{- end}}
    </table>
    {{- end}}
</div>
</body>
</html>
`
