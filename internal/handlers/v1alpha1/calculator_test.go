package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	api "github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/feeds"
	handlers "github.com/feedrate/feedrate-calculator/internal/handlers/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/feedrate/feedrate-calculator/pkg/middleware"
	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	h := handlers.NewServiceHandler(service.NewCalculatorService(), service.NewChartService(service.DefaultChartMaxRows))
	return handlers.HandlerFromMux(h, router)
}

func post(router http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	Expect(err).To(BeNil())

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("calculator handler", func() {
	var (
		router http.Handler
		body   map[string]any
	)

	BeforeEach(func() {
		router = newRouter()
		body = map[string]any{
			"machine":    feeds.MachinePowerRoute,
			"cutter":     `1/8"`,
			"flutes":     2,
			"aggression": feeds.AggressionNormal,
			"material":   feeds.MaterialAluminum,
			"rpm":        15000,
			"unit":       "inch",
		}
	})

	Context("calculate", func() {
		It("successfully computes a selection", func() {
			rec := post(router, "/api/v1/calculate", body)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var calc api.Calculation
			Expect(json.Unmarshal(rec.Body.Bytes(), &calc)).To(Succeed())
			Expect(calc.Unit).To(Equal(api.UnitInch))
			Expect(calc.Result.FeedRate).To(BeNumerically("~", 43.2, 1e-9))
			Expect(calc.Result.DepthOfCut).To(BeNumerically("~", 0.036, 1e-12))
			Expect(calc.Result.ChipLoad).To(BeNumerically("~", 0.00144, 1e-12))
			Expect(calc.Display.FeedRate).To(Equal("43.2 inch/min"))
			Expect(calc.Breakdown).NotTo(BeNil())
			Expect(calc.Breakdown.Multiplier).To(Equal(1.6))
		})

		It("defaults to millimeters", func() {
			delete(body, "unit")

			rec := post(router, "/api/v1/calculate", body)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var calc api.Calculation
			Expect(json.Unmarshal(rec.Body.Bytes(), &calc)).To(Succeed())
			Expect(calc.Unit).To(Equal(api.UnitMm))
			Expect(calc.Display.FeedRate).To(Equal("1097.28 mm/min"))
		})

		It("omits the breakdown on request", func() {
			rec := post(router, "/api/v1/calculate?breakdown=false", body)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var calc api.Calculation
			Expect(json.Unmarshal(rec.Body.Bytes(), &calc)).To(Succeed())
			Expect(calc.Breakdown).To(BeNil())
		})

		DescribeTable("rejects an invalid selection",
			func(field string, value any) {
				body[field] = value

				rec := post(router, "/api/v1/calculate", body)

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				var apiErr api.Error
				Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(Succeed())
				Expect(apiErr.Message).To(ContainSubstring(field))
				Expect(apiErr.RequestId).NotTo(BeNil())
				Expect(*apiErr.RequestId).To(Equal(rec.Header().Get("X-Request-Id")))
			},
			Entry("machine", "machine", "Shapeoko"),
			Entry("cutter", "cutter", "12mm"),
			Entry("flutes", "flutes", 6),
			Entry("aggression", "aggression", "Reckless"),
			Entry("material", "material", "Steel"),
			Entry("rpm", "rpm", 30000),
			Entry("unit", "unit", "furlong"),
		)

		It("rejects a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewBufferString("{"))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var apiErr api.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(Succeed())
			Expect(apiErr.Message).To(HavePrefix("invalid request body"))
			Expect(apiErr.RequestId).NotTo(BeNil())
			Expect(*apiErr.RequestId).To(Equal(rec.Header().Get("X-Request-Id")))
		})
	})

	Context("options", func() {
		It("lists the tables and a usable default", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var opts api.Options
			Expect(json.Unmarshal(rec.Body.Bytes(), &opts)).To(Succeed())
			Expect(opts.Machines).To(HaveLen(4))
			Expect(opts.Cutters).To(HaveLen(8))
			Expect(opts.Materials).To(HaveLen(6))
			Expect(opts.ChartFormats).To(ConsistOf(api.ChartFormatCsv, api.ChartFormatHtml, api.ChartFormatXlsx))
			Expect(opts.Defaults.Cutter).To(Equal(`1/8"`))

			rec = post(router, "/api/v1/calculate", opts.Defaults)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
