package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/feedrate/feedrate-calculator/internal/client"
	"github.com/feedrate/feedrate-calculator/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	ServerUrl string
	Timeout   time.Duration
	LogLevel  string
	Output    string

	out io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Timeout:  30 * time.Second,
		LogLevel: "error",
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	o.BindServer(fs)
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

// BindServer binds the flags shared by every command, output excluded.
func (o *GlobalOptions) BindServer(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of a feedrate-api server. Computes locally when unset.")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout of requests to the server.")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error).")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.out = cmd.OutOrStdout()
	logger, err := log.InitLog(log.NewOptions(o.LogLevel, log.FormatConsole))
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

// Client returns the API client, nil when the command computes locally.
func (o *GlobalOptions) Client() *client.FeedRateClient {
	if o.ServerUrl == "" {
		return nil
	}
	return client.NewFeedRateClient(strings.TrimSuffix(o.ServerUrl, "/"), o.Timeout)
}
