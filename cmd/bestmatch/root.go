// cmd/bestmatch/root.go

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	configadapter "github.com/damianoneill/bestmatch/pkg/adapter/config"
	httpadapter "github.com/damianoneill/bestmatch/pkg/adapter/http"
	zapadapter "github.com/damianoneill/bestmatch/pkg/adapter/logging"
	metricsadapter "github.com/damianoneill/bestmatch/pkg/adapter/metrics"
	"github.com/damianoneill/bestmatch/pkg/adapter/textio"
	tracingadapter "github.com/damianoneill/bestmatch/pkg/adapter/tracing"
	domainlog "github.com/damianoneill/bestmatch/pkg/domain/logging"
	"github.com/damianoneill/bestmatch/pkg/usecase/bestmatch"
)

const serviceName = "bestmatch"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configFile string
	logLevel   string
	format     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "bestmatch [files...]",
		Short: "Print the best matching pattern for each path",
		Long: `bestmatch reads a batch of comma separated patterns and slash separated
paths and prints, for each path, the pattern that matches it best or
NO MATCH.

Without arguments the batch is read from standard input. Each argument is
a file or a glob (** matches across directories); every file is a batch of
its own and results are written in argument order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatches(cmd, flags, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/bestmatch/config.yaml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&flags.format, "format", "", "input format: text or yaml")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runBatches(cmd *cobra.Command, flags *rootFlags, args []string) (err error) {
	files, err := expandInputs(args)
	if err != nil {
		return err
	}

	svc, err := newService(cmd, flags, domainlog.WarnLevel, false)
	if err != nil {
		return err
	}
	defer closeService(cmd.Context(), svc, &err)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(files) == 0 {
		if err := svc.RunBatch(ctx, cmd.InOrStdin(), out); err != nil {
			svc.Logger().ErrorWith("Batch failed", domainlog.Fields{
				"input": "stdin",
				"error": err.Error(),
			})
			return err
		}
		return nil
	}

	for _, name := range files {
		if err := runFile(ctx, svc, name, cmd); err != nil {
			svc.Logger().ErrorWith("Batch failed", domainlog.Fields{
				"input": name,
				"error": err.Error(),
			})
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func runFile(ctx context.Context, svc *bestmatch.Service, name string, cmd *cobra.Command) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return svc.RunBatch(ctx, f, cmd.OutOrStdout())
}

// newService builds the service from flags, environment and config files.
// Only flags the user actually set take part in the configuration.
func newService(cmd *cobra.Command, flags *rootFlags, defaultLevel domainlog.Level, runtimeMetrics bool) (*bestmatch.Service, error) {
	opts := bestmatch.Options{
		ServiceName:     serviceName,
		Version:         version,
		ConfigFile:      flags.configFile,
		DefaultLogLevel: defaultLevel,
		RuntimeMetrics:  runtimeMetrics,
		Overrides:       map[string]interface{}{},
	}
	if opts.ConfigFile == "" {
		opts.OptionalConfigFile = filepath.Join(xdg.ConfigHome, serviceName, "config.yaml")
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		opts.Overrides["logging.level"] = flags.logLevel
	}
	if fs.Changed("format") {
		opts.Overrides["input.format"] = flags.format
	}
	if fs.Lookup("port") != nil && fs.Changed("port") {
		port, err := fs.GetInt("port")
		if err != nil {
			return nil, err
		}
		opts.Overrides["server.http.port"] = port
	}

	return bestmatch.NewService(opts, dependencies(), nil)
}

func dependencies() bestmatch.Dependencies {
	return bestmatch.Dependencies{
		ConfigFactory:  configadapter.NewFactory(),
		LoggerFactory:  zapadapter.NewFactory(),
		CodecFactory:   textio.NewFactory(),
		MetricsFactory: metricsadapter.NewMetricsFactory(),
		TracerFactory:  tracingadapter.NewFactory(),
		RouterFactory:  httpadapter.NewFactory(),
	}
}

// closeService flushes telemetry and keeps the first error.
func closeService(ctx context.Context, svc *bestmatch.Service, errp *error) {
	if err := svc.Close(context.WithoutCancel(ctx)); err != nil && *errp == nil {
		*errp = fmt.Errorf("closing: %w", err)
	}
}
