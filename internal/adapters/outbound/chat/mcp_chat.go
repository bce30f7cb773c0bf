// Package chat reads payment messages from a chat channel and posts
// confirmations back to it.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/paylane/paylane/internal/domain"
)

// ToolCaller is the slice of the MCP client this adapter needs.
type ToolCaller interface {
	CallTool(ctx context.Context, tool string, args map[string]any, out any) error
}

// MCPChat implements domain.MessageSource and domain.Notifier on top of a
// chat MCP helper.
type MCPChat struct {
	rpc ToolCaller
}

// NewMCP creates an MCPChat over the given tool caller.
func NewMCP(rpc ToolCaller) *MCPChat {
	return &MCPChat{rpc: rpc}
}

// LatestMessages fetches the most recent messages of a channel, newest first.
func (c *MCPChat) LatestMessages(ctx context.Context, channelID string, limit int) ([]domain.ChannelMessage, error) {
	var out struct {
		Messages []domain.ChannelMessage `json:"messages"`
	}
	err := c.rpc.CallTool(ctx, "conversations.history", map[string]any{
		"channel": channelID,
		"limit":   limit,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("fetching channel history: %w", err)
	}
	return out.Messages, nil
}

// PostConfirmation posts the processed-payment confirmation, threaded under
// the original message when threadTS is set.
func (c *MCPChat) PostConfirmation(ctx context.Context, channelID string, r domain.Receipt, ticketKey, documentURL, threadTS string) error {
	args := map[string]any{
		"channel": channelID,
		"text":    ConfirmationText(r, ticketKey, documentURL),
	}
	if threadTS != "" {
		args["thread_ts"] = threadTS
	}
	if err := c.rpc.CallTool(ctx, "chat.postMessage", args, nil); err != nil {
		return fmt.Errorf("posting confirmation: %w", err)
	}
	return nil
}

// ConfirmationText renders the confirmation message body.
func ConfirmationText(r domain.Receipt, ticketKey, documentURL string) string {
	lines := []string{
		"*Payment Processed Successfully*",
		"",
		fmt.Sprintf("Order: `%s`", r.OrderID),
		fmt.Sprintf("Amount: $%s %s", r.Amount.StringFixed(2), r.Currency),
		fmt.Sprintf("Payer: %s", r.Payer),
		"",
		fmt.Sprintf("Ticket: %s", ticketKey),
	}
	if documentURL != "" {
		lines = append(lines, fmt.Sprintf("Ledger entry: %s", documentURL))
	}
	lines = append(lines, "", "_Automated by paylane_")
	return strings.Join(lines, "\n")
}
