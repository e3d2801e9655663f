package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"

	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

func readCSV(content []byte) [][]string {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	Expect(err).To(BeNil())
	return rows
}

func materialRows(rows [][]string) [][]string {
	var out [][]string
	for _, row := range rows {
		if _, ok := feeds.LookupMaterial(row[0]); ok {
			out = append(out, row)
		}
	}
	return out
}

var _ = Describe("ChartService", func() {
	var (
		srv  *service.ChartService
		ctx  context.Context
		opts service.ChartOptions
	)

	BeforeEach(func() {
		srv = service.NewChartService(service.DefaultChartMaxRows)
		ctx = context.Background()
		opts = service.ChartOptions{
			Machine:    feeds.MachinePowerRoute,
			Cutter:     `1/8"`,
			Flutes:     2,
			Aggression: feeds.AggressionNormal,
			Unit:       feeds.UnitInch,
			Format:     service.ChartFormatCSV,
		}
	})

	Describe("BuildData", func() {
		It("sweeps the slider range by default", func() {
			data, err := srv.BuildData(opts)

			Expect(err).To(BeNil())
			Expect(data.Materials).To(HaveLen(6))
			rows := data.Materials[0].Rows
			Expect(rows).To(HaveLen(25))
			Expect(rows[0].RPM).To(Equal(800.0))
			Expect(rows[24].RPM).To(Equal(24800.0))
		})

		It("includes the end of an aligned range", func() {
			opts.RPMFrom = 10000
			opts.RPMTo = 20000
			opts.RPMStep = 2500

			data, err := srv.BuildData(opts)

			Expect(err).To(BeNil())
			rpms := []float64{}
			for _, r := range data.Materials[0].Rows {
				rpms = append(rpms, r.RPM)
			}
			Expect(rpms).To(Equal([]float64{10000, 12500, 15000, 17500, 20000}))
		})

		It("computes every cell with the calculator", func() {
			opts.RPMFrom = 15000
			opts.RPMTo = 15000

			data, err := srv.BuildData(opts)

			Expect(err).To(BeNil())
			Expect(data.Cutter.Class).To(Equal(feeds.CutterClassS))
			for _, m := range data.Materials {
				expected := feeds.Compute(feeds.Input{
					Machine:    opts.Machine,
					CutWidth:   feeds.CutterClassS,
					Flutes:     2,
					Aggression: opts.Aggression,
					Material:   m.Material,
					RPM:        15000,
					Unit:       feeds.UnitInch,
				})
				Expect(m.Rows).To(HaveLen(1))
				Expect(m.Rows[0].Result).To(Equal(expected))
			}
		})

		DescribeTable("rejects invalid ranges",
			func(from, to, step float64) {
				opts.RPMFrom, opts.RPMTo, opts.RPMStep = from, to, step

				_, err := srv.BuildData(opts)

				Expect(err).NotTo(BeNil())
			},
			Entry("start below minimum", 500.0, 1000.0, 100.0),
			Entry("end above maximum", 1000.0, 30000.0, 100.0),
			Entry("reversed", 20000.0, 10000.0, 100.0),
			Entry("negative step", 1000.0, 2000.0, -5.0),
			Entry("too many rows", 800.0, 25000.0, 10.0),
		)

		It("rejects a step too small to count the rows", func() {
			opts.RPMFrom, opts.RPMTo, opts.RPMStep = feeds.MinRPM, feeds.MaxRPM, 1e-300

			chart, err := srv.Generate(ctx, opts)

			Expect(chart).To(BeNil())
			var invalidRange *service.ErrInvalidChartRange
			Expect(errors.As(err, &invalidRange)).To(BeTrue())
		})

		It("rejects an unknown cutter", func() {
			opts.Cutter = "12mm"

			_, err := srv.BuildData(opts)

			var unknown *service.ErrUnknownOption
			Expect(errors.As(err, &unknown)).To(BeTrue())
		})

		It("rejects an unknown machine", func() {
			opts.Machine = "Shapeoko"

			_, err := srv.BuildData(opts)

			var unknown *service.ErrUnknownOption
			Expect(errors.As(err, &unknown)).To(BeTrue())
		})
	})

	Describe("Generate", func() {
		It("renders CSV", func() {
			opts.RPMFrom = 15000
			opts.RPMTo = 15000

			chart, err := srv.Generate(ctx, opts)

			Expect(err).To(BeNil())
			Expect(chart.ContentType).To(Equal("text/csv"))
			Expect(chart.Filename).To(HaveSuffix(".csv"))

			rows := readCSV(chart.Content)
			Expect(rows[0]).To(Equal([]string{"FEED RATE CHART"}))

			data := materialRows(rows)
			Expect(data).To(HaveLen(6))
			Expect(data[0]).To(Equal([]string{feeds.MaterialAluminum, "15000", "43.2", "0.036", "0.00144", "no"}))
		})

		It("renders HTML with escaped labels", func() {
			opts.Format = service.ChartFormatHTML

			chart, err := srv.Generate(ctx, opts)

			Expect(err).To(BeNil())
			Expect(chart.ContentType).To(HavePrefix("text/html"))
			html := string(chart.Content)
			Expect(html).To(ContainSubstring("<h2>MDF</h2>"))
			Expect(html).To(ContainSubstring("1/8&#34;"))
			Expect(strings.Count(html, "<h2>")).To(Equal(6))
		})

		It("renders XLSX with numeric cells", func() {
			opts.Format = service.ChartFormatXLSX
			opts.RPMFrom = 15000
			opts.RPMTo = 16000

			chart, err := srv.Generate(ctx, opts)

			Expect(err).To(BeNil())
			Expect(chart.Filename).To(HaveSuffix(".xlsx"))

			f, err := excelize.OpenReader(bytes.NewReader(chart.Content))
			Expect(err).To(BeNil())
			defer f.Close()

			rows, err := f.GetRows("Feed Chart")
			Expect(err).To(BeNil())
			data := materialRows(rows)
			Expect(data).To(HaveLen(12))
			Expect(data[0][0]).To(Equal(feeds.MaterialAluminum))
			Expect(data[0][1]).To(Equal("15000"))
		})

		It("rejects an unsupported format", func() {
			opts.Format = "pdf"

			chart, err := srv.Generate(ctx, opts)

			Expect(chart).To(BeNil())
			var unsupported *service.ErrUnsupportedFormat
			Expect(errors.As(err, &unsupported)).To(BeTrue())
		})
	})
})
