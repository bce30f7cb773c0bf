package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/paylane/paylane/internal/adapters/outbound/chat"
	"github.com/paylane/paylane/internal/adapters/outbound/ledger"
	"github.com/paylane/paylane/internal/adapters/outbound/mcprpc"
	"github.com/paylane/paylane/internal/adapters/outbound/payments"
	"github.com/paylane/paylane/internal/adapters/outbound/tracker"
	"github.com/paylane/paylane/internal/application"
	"github.com/paylane/paylane/internal/domain"
)

// buildPorts assembles the outbound side of the pipeline. Every integration
// defaults to its mock; a live client replaces it only when mock mode is off
// and the required credentials are present. A helper subprocess that fails to
// start degrades that one integration back to its mock instead of aborting.
//
// skipHelpers suppresses the chat, tracker and ledger subprocesses entirely.
// It is set when a fixture receipt bypasses the channel anyway and for the
// HTTP server, which must not spawn per-request children.
func buildPorts(ctx context.Context, cfg domain.Config, skipHelpers bool) (application.Ports, func() error) {
	chatMock := chat.NewMock()
	ports := application.Ports{
		Verifier:  payments.NewMock(),
		Tickets:   tracker.NewMock(cfg.TrackerProjectKey),
		Documents: ledger.NewMock(),
		Source:    chatMock,
		Notifier:  chatMock,
	}
	var clients []*mcprpc.Client

	if !cfg.MockMode && cfg.PaymentsConfigured() {
		ports.Verifier = payments.NewHTTP(cfg.PaymentAPIURL, cfg.PaymentAccessToken)
	}

	if !cfg.MockMode && !skipHelpers {
		if cfg.ChatConfigured() {
			if c, err := dialHelper(ctx, "chat", cfg.MCPChatPath, map[string]string{
				"CHAT_BOT_TOKEN": cfg.ChatBotToken,
			}); err == nil {
				clients = append(clients, c)
				mc := chat.NewMCP(c)
				ports.Source = mc
				ports.Notifier = mc
			}
		}
		if cfg.TrackerConfigured() {
			if c, err := dialHelper(ctx, "tracker", cfg.MCPTrackerPath, map[string]string{
				"TRACKER_BASE_URL":  cfg.TrackerBaseURL,
				"TRACKER_EMAIL":     cfg.TrackerEmail,
				"TRACKER_API_TOKEN": cfg.TrackerAPIToken,
			}); err == nil {
				clients = append(clients, c)
				ports.Tickets = tracker.NewMCP(c, cfg.TrackerProjectKey, cfg.TrackerBaseURL)
			}
		}
		if cfg.LedgerConfigured() {
			if c, err := dialHelper(ctx, "ledger", cfg.MCPLedgerPath, map[string]string{
				"LEDGER_TOKEN": cfg.LedgerToken,
			}); err == nil {
				clients = append(clients, c)
				ports.Documents = ledger.NewMCP(c, cfg.LedgerDBID)
			}
		}
	}

	closeAll := func() error {
		var g errgroup.Group
		for _, c := range clients {
			g.Go(c.Close)
		}
		return g.Wait()
	}
	return ports, closeAll
}

func dialHelper(ctx context.Context, name, path string, env map[string]string) (*mcprpc.Client, error) {
	c, err := mcprpc.Dial(ctx, name, "node", []string{filepath.Join(path, "bin", name+"-mcp.js")}, env)
	if err != nil {
		slog.Warn("helper unavailable, using mock", "integration", name, "error", err)
		return nil, err
	}
	return c, nil
}
