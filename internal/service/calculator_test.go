package service_test

import (
	"context"
	"errors"

	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CalculatorService", func() {
	var (
		srv *service.CalculatorService
		ctx context.Context
		in  feeds.Input
	)

	BeforeEach(func() {
		srv = service.NewCalculatorService()
		ctx = context.Background()
		in = feeds.Input{
			Machine:    feeds.MachinePowerRoute,
			CutWidth:   feeds.CutterClassS,
			Flutes:     2,
			Aggression: feeds.AggressionNormal,
			Material:   feeds.MaterialAluminum,
			RPM:        15000,
			Unit:       feeds.UnitMillimeter,
		}
	})

	Describe("Calculate", func() {
		Context("valid selection", func() {
			It("returns the computed result", func() {
				result, err := srv.Calculate(ctx, in)

				Expect(err).To(BeNil())
				Expect(result.Result.FeedRate).To(BeNumerically("~", 1097.28, 1e-9))
				Expect(result.Result.DepthOfCut).To(BeNumerically("~", 0.9144, 1e-12))
				Expect(result.Result.ChipLoad).To(BeNumerically("~", 0.9290304, 1e-12))
				Expect(result.Result).To(Equal(feeds.Compute(in)))
			})

			It("renders the display strings with unit suffixes", func() {
				result, err := srv.Calculate(ctx, in)

				Expect(err).To(BeNil())
				Expect(result.Display.FeedRate).To(Equal("1097.28 mm/min"))
				Expect(result.Display.DepthOfCut).To(Equal("0.9144 mm"))
				Expect(result.Display.ChipLoad).To(Equal("0.92903 mm"))
			})

			It("includes the breakdown", func() {
				result, err := srv.Calculate(ctx, in)

				Expect(err).To(BeNil())
				Expect(result.Breakdown.Multiplier).To(Equal(1.6))
				Expect(result.Breakdown.UnitScale).To(Equal(feeds.MillimetersPerInch))
				Expect(result.Breakdown.Reason).NotTo(BeEmpty())
				Expect(result.Breakdown.Clamped).To(BeFalse())
			})

			It("flags a limited feed rate", func() {
				in.Material = feeds.MaterialMDF
				in.CutWidth = feeds.CutterClassL
				in.Flutes = 4
				in.RPM = feeds.MaxRPM
				in.Unit = feeds.UnitInch

				result, err := srv.Calculate(ctx, in)

				Expect(err).To(BeNil())
				Expect(result.Result.FeedRate).To(Equal(feeds.FeedRateLimit))
				Expect(result.Breakdown.Clamped).To(BeTrue())
			})
		})

		Context("invalid selection", func() {
			DescribeTable("rejects unknown options",
				func(mutate func(*feeds.Input), kind string) {
					mutate(&in)

					result, err := srv.Calculate(ctx, in)

					Expect(result).To(BeNil())
					var unknown *service.ErrUnknownOption
					Expect(errors.As(err, &unknown)).To(BeTrue())
					Expect(unknown.Kind).To(Equal(kind))
				},
				Entry("machine", func(in *feeds.Input) { in.Machine = "Shapeoko" }, "machine"),
				Entry("cutter class", func(in *feeds.Input) { in.CutWidth = 9 }, "cutter class"),
				Entry("flutes", func(in *feeds.Input) { in.Flutes = 6 }, "flute count"),
				Entry("aggression", func(in *feeds.Input) { in.Aggression = "" }, "aggression"),
				Entry("material", func(in *feeds.Input) { in.Material = "Titanium" }, "material"),
				Entry("unit", func(in *feeds.Input) { in.Unit = "cm" }, "unit"),
			)

			DescribeTable("rejects spindle speeds outside the slider bounds",
				func(rpm float64) {
					in.RPM = rpm

					_, err := srv.Calculate(ctx, in)

					var outOfRange *service.ErrRPMOutOfRange
					Expect(errors.As(err, &outOfRange)).To(BeTrue())
				},
				Entry("zero", 0.0),
				Entry("below minimum", 799.0),
				Entry("above maximum", 25001.0),
			)

			It("accepts the slider bounds themselves", func() {
				for _, rpm := range []float64{feeds.MinRPM, feeds.MaxRPM} {
					in.RPM = rpm
					_, err := srv.Calculate(ctx, in)
					Expect(err).To(BeNil())
				}
			})
		})
	})

	Describe("Options", func() {
		It("lists every table and the default selection", func() {
			opts := srv.Options()

			Expect(opts.Machines).To(HaveLen(4))
			Expect(opts.CutWidths).To(HaveLen(8))
			Expect(opts.Flutes).To(Equal([]int{1, 2, 3, 4}))
			Expect(opts.Aggressions).To(HaveLen(3))
			Expect(opts.Materials).To(HaveLen(6))
			Expect(opts.Units).To(ConsistOf(feeds.UnitMillimeter, feeds.UnitInch))
			Expect(opts.MinRPM).To(Equal(800.0))
			Expect(opts.MaxRPM).To(Equal(25000.0))
			Expect(opts.Defaults.Material).To(Equal(feeds.MaterialHardwood))
		})

		It("offers a default selection that validates", func() {
			Expect(service.Validate(srv.Options().Defaults)).To(Succeed())
		})
	})
})
