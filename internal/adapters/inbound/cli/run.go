package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/paylane/paylane/internal/adapters/outbound/config"
	"github.com/paylane/paylane/internal/adapters/outbound/tui"
	"github.com/paylane/paylane/internal/application"
	"github.com/paylane/paylane/internal/domain"
)

func newRunCmd() *cobra.Command {
	var (
		channel     string
		receiptFile string
		dryRun      bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the payment pipeline once",
		Long: "Scan the configured channel for the most recent payment notification, verify it " +
			"against the payment processor, create the tracking ticket and ledger record, and post a confirmation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(verbose)

			cfg, err := config.New().Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			var fixture *domain.Receipt
			if receiptFile != "" {
				fixture, err = loadReceiptFile(receiptFile)
				if err != nil {
					return err
				}
			}

			ports, closePorts := buildPorts(cmd.Context(), cfg, fixture != nil)
			defer func() {
				if err := closePorts(); err != nil {
					slog.Warn("closing integrations", "error", err)
				}
			}()

			svc := application.NewProcessService(cfg, ports, slog.Default())
			res := svc.Run(cmd.Context(), application.RunOptions{
				Channel: channel,
				Fixture: fixture,
				DryRun:  dryRun,
			})

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunSummary(res))

			if !res.Success {
				return fmt.Errorf("pipeline finished with %d errors", len(res.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&channel, "channel", "c", "", "Channel to scan instead of CHAT_CHANNEL_ID")
	cmd.Flags().StringVarP(&receiptFile, "receipt-file", "m", "", "JSON receipt file to process instead of scanning the channel")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Stop after verification, create nothing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func loadReceiptFile(path string) (*domain.Receipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading receipt file: %w", err)
	}
	var r domain.Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing receipt file: %w", err)
	}
	validated, err := r.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid receipt in %s: %w", path, err)
	}
	return &validated, nil
}

func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
