package v1alpha1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	api "github.com/feedrate/feedrate-calculator/api/v1alpha1"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func get(router http.Handler, path string, query url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("chart handler", func() {
	var router http.Handler

	BeforeEach(func() {
		router = newRouter()
	})

	It("downloads a csv chart with the default selection", func() {
		rec := get(router, "/api/v1/chart", url.Values{})

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal("text/csv"))
		Expect(rec.Header().Get("Content-Disposition")).To(MatchRegexp(`^attachment; filename="feed-chart-.*\.csv"$`))
		Expect(rec.Body.String()).To(ContainSubstring(`"1/8"""`))
	})

	It("downloads an xlsx chart", func() {
		rec := get(router, "/api/v1/chart", url.Values{
			"format":  {"xlsx"},
			"cutter":  {"6mm"},
			"rpmFrom": {"10000"},
			"rpmTo":   {"12000"},
		})

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(HavePrefix("application/vnd.openxmlformats"))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))
	})

	DescribeTable("rejects bad parameters",
		func(query url.Values) {
			rec := get(router, "/api/v1/chart", query)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var apiErr api.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(Succeed())
			Expect(apiErr.Message).NotTo(BeEmpty())
		},
		Entry("format", url.Values{"format": {"pdf"}}),
		Entry("cutter", url.Values{"cutter": {"12mm"}}),
		Entry("flutes", url.Values{"flutes": {"two"}}),
		Entry("step", url.Values{"rpmStep": {"-1"}}),
		Entry("range", url.Values{"rpmFrom": {"20000"}, "rpmTo": {"10000"}}),
		Entry("rows", url.Values{"rpmStep": {"1"}}),
		Entry("tiny step", url.Values{"rpmStep": {"1e-300"}}),
	)
})
