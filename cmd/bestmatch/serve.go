// cmd/bestmatch/serve.go

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	domainlog "github.com/damianoneill/bestmatch/pkg/domain/logging"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve batches over HTTP",
		Long: `serve accepts batches with POST /v1/match and answers with one line per
path, exactly as the batch command prints them. Probes live under
/internal and Prometheus metrics under /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, err := newService(cmd, flags, domainlog.InfoLevel, true)
			if err != nil {
				return err
			}
			defer closeService(ctx, svc, &err)

			return svc.Serve(ctx)
		},
	}

	cmd.Flags().Int("port", 8080, "listen port")
	return cmd
}
