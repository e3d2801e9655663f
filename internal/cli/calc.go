package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/feedrate/feedrate-calculator/api/v1alpha1"
	"github.com/feedrate/feedrate-calculator/internal/feeds"
	"github.com/feedrate/feedrate-calculator/internal/handlers/v1alpha1/mappers"
	"github.com/feedrate/feedrate-calculator/internal/handlers/validator"
	"github.com/feedrate/feedrate-calculator/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CalcOptions struct {
	GlobalOptions

	Machine    string
	Cutter     string
	Flutes     int
	Aggression string
	Material   string
	RPM        float64
	Unit       string
	Explain    bool
}

// DefaultCalcOptions starts from the selection the calculator screen opens with.
func DefaultCalcOptions() *CalcOptions {
	sel := feeds.DefaultSelection()
	in := sel.Input()
	cutter, _ := sel.Cutter()
	return &CalcOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Machine:       in.Machine,
		Cutter:        cutter.Label,
		Flutes:        in.Flutes,
		Aggression:    in.Aggression,
		Material:      in.Material,
		RPM:           in.RPM,
		Unit:          in.Unit.String(),
	}
}

func NewCmdCalc() *cobra.Command {
	o := DefaultCalcOptions()
	cmd := &cobra.Command{
		Use:     "calc [FLAGS]",
		Short:   "Compute feed rate, depth of cut and chip load",
		Example: `calc --machine M3 --cutter '1/4"' --flutes 2 --material MDF --rpm 18000 --unit inch`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalcOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Machine, "machine", o.Machine, "Machine model.")
	fs.StringVar(&o.Cutter, "cutter", o.Cutter, `Cutter diameter, e.g. 1/8" or 6mm.`)
	fs.IntVar(&o.Flutes, "flutes", o.Flutes, "Number of flutes (1-4).")
	fs.StringVar(&o.Aggression, "aggression", o.Aggression, "Aggression level.")
	fs.StringVar(&o.Material, "material", o.Material, "Stock material.")
	fs.Float64Var(&o.RPM, "rpm", o.RPM, fmt.Sprintf("Spindle speed (%g-%g).", feeds.MinRPM, feeds.MaxRPM))
	fs.StringVar(&o.Unit, "unit", o.Unit, "Unit of the results: mm or inch.")
	fs.BoolVar(&o.Explain, "explain", o.Explain, "Show the factors that went into the result.")
}

func (o *CalcOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	v := validator.NewValidator()
	v.Register(validator.NewCalculationValidationRules()...)
	return v.Struct(o.request())
}

func (o *CalcOptions) request() v1alpha1.CalculateRequest {
	unit := o.Unit
	return v1alpha1.CalculateRequest{
		Machine:    o.Machine,
		Cutter:     o.Cutter,
		Flutes:     o.Flutes,
		Aggression: o.Aggression,
		Material:   o.Material,
		Rpm:        o.RPM,
		Unit:       &unit,
	}
}

func (o *CalcOptions) Run(ctx context.Context, args []string) error {
	calc, err := o.calculate(ctx)
	if err != nil {
		return fmt.Errorf("calculating: %w", err)
	}

	if ok, err := printStructured(o.out, o.Output, calc); ok {
		return err
	}

	w := tabwriter.NewWriter(o.out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Feed Rate:\t%s\n", calc.Display.FeedRate)
	fmt.Fprintf(w, "Depth of Cut:\t%s\n", calc.Display.DepthOfCut)
	fmt.Fprintf(w, "Chip Load:\t%s\n", calc.Display.ChipLoad)
	if b := calc.Breakdown; b != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Raw Feed Rate:\t%s\n", feeds.Trim(b.RawFeedRate, feeds.FeedRateDigits))
		fmt.Fprintf(w, "Multiplier:\t%g\n", b.Multiplier)
		fmt.Fprintf(w, "Machine Factor:\t%g\n", b.MachineFactor)
		fmt.Fprintf(w, "Aggression Factor:\t%g\n", b.AggressionFactor)
		fmt.Fprintf(w, "Unit Scale:\t%g\n", b.UnitScale)
		fmt.Fprintf(w, "Limited:\t%t\n", b.Clamped)
		fmt.Fprintf(w, "Reason:\t%s\n", b.Reason)
	}
	return w.Flush()
}

func (o *CalcOptions) calculate(ctx context.Context) (*v1alpha1.Calculation, error) {
	if c := o.Client(); c != nil {
		calc, err := c.Calculate(ctx, o.request())
		if err != nil {
			return nil, err
		}
		if !o.Explain {
			calc.Breakdown = nil
		}
		return calc, nil
	}

	in, err := mappers.CalculateRequestToInput(o.request())
	if err != nil {
		return nil, err
	}
	result, err := service.NewCalculatorService().Calculate(ctx, in)
	if err != nil {
		return nil, err
	}
	calc := mappers.CalculationToApi(result, o.Explain)
	return &calc, nil
}
