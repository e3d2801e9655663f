package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"

	api "github.com/feedrate/feedrate-calculator/api/v1alpha1"
	apiserver "github.com/feedrate/feedrate-calculator/internal/api_server"
	"github.com/feedrate/feedrate-calculator/internal/cli"
	"github.com/feedrate/feedrate-calculator/internal/config"
	"github.com/spf13/cobra"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"
)

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("calc", func() {
	It("prints the default selection", func() {
		out, err := execute(cli.NewCmdCalc())

		Expect(err).To(BeNil())
		Expect(out).To(MatchRegexp(`Feed Rate:\s+\S+ mm/min`))
		Expect(out).To(MatchRegexp(`Depth of Cut:\s+\S+ mm`))
		Expect(out).To(MatchRegexp(`Chip Load:\s+\S+ mm`))
	})

	It("computes the given selection", func() {
		out, err := execute(cli.NewCmdCalc(),
			"--machine", "PowerRoute",
			"--cutter", `1/8"`,
			"--flutes", "2",
			"--aggression", "Normal",
			"--material", "Aluminum (6061)",
			"--rpm", "15000",
			"--unit", "inch",
		)

		Expect(err).To(BeNil())
		Expect(out).To(MatchRegexp(`Feed Rate:\s+43.2 inch/min`))
		Expect(out).To(MatchRegexp(`Depth of Cut:\s+0.036 inch`))
		Expect(out).To(MatchRegexp(`Chip Load:\s+0.00144 inch`))
		Expect(out).NotTo(ContainSubstring("Multiplier"))
	})

	It("explains the result", func() {
		out, err := execute(cli.NewCmdCalc(), "--material", "MDF", "--cutter", "6mm", "--flutes", "4", "--rpm", "25000", "--unit", "inch", "--explain")

		Expect(err).To(BeNil())
		Expect(out).To(MatchRegexp(`Feed Rate:\s+320 inch/min`))
		Expect(out).To(MatchRegexp(`Limited:\s+true`))
	})

	It("prints json", func() {
		out, err := execute(cli.NewCmdCalc(), "--unit", "inch", "-o", "json", "--explain")

		Expect(err).To(BeNil())
		var calc api.Calculation
		Expect(json.Unmarshal([]byte(out), &calc)).To(Succeed())
		Expect(calc.Unit).To(Equal(api.UnitInch))
		Expect(calc.Breakdown).NotTo(BeNil())
	})

	It("prints yaml", func() {
		out, err := execute(cli.NewCmdCalc(), "-o", "yaml")

		Expect(err).To(BeNil())
		var calc api.Calculation
		Expect(yaml.Unmarshal([]byte(out), &calc)).To(Succeed())
		Expect(calc.Display.FeedRate).To(HaveSuffix("mm/min"))
	})

	DescribeTable("rejects bad flags",
		func(args ...string) {
			_, err := execute(cli.NewCmdCalc(), args...)

			Expect(err).NotTo(BeNil())
		},
		Entry("machine", "--machine", "Shapeoko"),
		Entry("cutter", "--cutter", "12mm"),
		Entry("flutes", "--flutes", "0"),
		Entry("material", "--material", "Steel"),
		Entry("rpm", "--rpm", "100"),
		Entry("unit", "--unit", "furlong"),
		Entry("output", "-o", "xml"),
	)
})

var _ = Describe("options", func() {
	It("prints the tables", func() {
		out, err := execute(cli.NewCmdOptions())

		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring("PowerRoute"))
		Expect(out).To(ContainSubstring(`3/16"`))
		Expect(out).To(ContainSubstring("Softwood (i.e. pine, cedar, fir)"))
		Expect(out).To(MatchRegexp(`FLUTES\s+1, 2, 3, 4`))
	})

	It("prints json", func() {
		out, err := execute(cli.NewCmdOptions(), "-o", "json")

		Expect(err).To(BeNil())
		var opts api.Options
		Expect(json.Unmarshal([]byte(out), &opts)).To(Succeed())
		Expect(opts.Materials).To(HaveLen(6))
	})
})

var _ = Describe("chart", func() {
	It("writes the chart to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "chart.html")

		out, err := execute(cli.NewCmdChart(), "--format", "html", "--file", path, "--rpm-from", "10000", "--rpm-to", "12000")

		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring(path))
		content, err := os.ReadFile(path)
		Expect(err).To(BeNil())
		Expect(string(content)).To(ContainSubstring("<h2>MDF</h2>"))
	})

	It("writes the chart to stdout", func() {
		out, err := execute(cli.NewCmdChart(), "--file", "-", "--rpm-from", "15000", "--rpm-to", "15000", "--unit", "inch")

		Expect(err).To(BeNil())
		Expect(out).To(HavePrefix("FEED RATE CHART"))
	})

	It("rejects an unknown format", func() {
		_, err := execute(cli.NewCmdChart(), "--format", "pdf", "--file", "-")

		Expect(err).NotTo(BeNil())
	})

	It("honours the row limit", func() {
		_, err := execute(cli.NewCmdChart(), "--file", "-", "--rpm-step", "100", "--max-rows", "10")

		Expect(err).NotTo(BeNil())
	})

	It("rejects a step too small to count the rows", func() {
		_, err := execute(cli.NewCmdChart(), "--file", "-", "--rpm-step", "1e-300")

		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring("rows per material"))
	})

	It("reports an unwritable destination", func() {
		path := filepath.Join(GinkgoT().TempDir(), "missing", "chart.csv")

		_, err := execute(cli.NewCmdChart(), "--file", path)

		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring("writing chart to"))
	})
})

var _ = Describe("version", func() {
	It("prints the version", func() {
		out, err := execute(cli.NewCmdVersion())

		Expect(err).To(BeNil())
		Expect(out).To(HavePrefix("feedrate version: "))
	})
})

var _ = Describe("remote server", func() {
	var server *httptest.Server

	BeforeEach(func() {
		cfg, err := config.New()
		Expect(err).To(BeNil())
		handler, err := apiserver.New(cfg, nil).Handler()
		Expect(err).To(BeNil())
		server = httptest.NewServer(handler)
	})

	AfterEach(func() {
		server.Close()
	})

	It("computes through the api", func() {
		out, err := execute(cli.NewCmdCalc(), "--server-url", server.URL, "--material", "Aluminum (6061)", "--unit", "inch", "--rpm", "15000")

		Expect(err).To(BeNil())
		Expect(out).To(MatchRegexp(`Feed Rate:\s+43.2 inch/min`))
		Expect(out).NotTo(ContainSubstring("Multiplier"))
	})

	It("explains through the api", func() {
		out, err := execute(cli.NewCmdCalc(), "-u", server.URL, "--explain")

		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring("Multiplier"))
	})

	It("lists the options through the api", func() {
		out, err := execute(cli.NewCmdOptions(), "-u", server.URL)

		Expect(err).To(BeNil())
		Expect(out).To(MatchRegexp(`CHART FORMATS\s+csv, html, xlsx`))
	})

	It("downloads a chart through the api", func() {
		out, err := execute(cli.NewCmdChart(), "-u", server.URL, "--file", "-", "--rpm-from", "15000", "--rpm-to", "15000")

		Expect(err).To(BeNil())
		Expect(out).To(HavePrefix("FEED RATE CHART"))
	})

	It("prints the server version", func() {
		out, err := execute(cli.NewCmdVersion(), "-u", server.URL)

		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring("feedrate-api version: "))
	})
})
