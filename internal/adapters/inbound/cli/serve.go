package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/paylane/paylane/internal/adapters/inbound/httpapi"
	"github.com/paylane/paylane/internal/adapters/outbound/config"
	"github.com/paylane/paylane/internal/application"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and HTTP API",
		Long: "Start the HTTP front door: a small dashboard plus JSON endpoints for health, " +
			"sample receipts and on-demand pipeline runs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(verbose)

			cfg, err := config.New().Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			ports, closePorts := buildPorts(cmd.Context(), cfg, true)
			defer func() {
				if err := closePorts(); err != nil {
					slog.Warn("closing integrations", "error", err)
				}
			}()

			if addr == "" {
				addr = ":" + cfg.Port
			}

			svc := application.NewProcessService(cfg, ports, slog.Default())
			slog.Info("serving", "addr", addr)
			return httpapi.New(svc).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, defaults to :$PORT")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
