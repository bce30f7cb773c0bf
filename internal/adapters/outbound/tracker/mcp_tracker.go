// Package tracker creates follow-up tickets in the tracking system.
package tracker

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

// MCPTracker implements domain.TicketCreator on top of a tracker MCP helper.
type MCPTracker struct {
	rpc        ToolCaller
	projectKey string
	baseURL    string
}

// NewMCP creates an MCPTracker creating tickets under projectKey. baseURL is
// used to build browse links for created tickets.
func NewMCP(rpc ToolCaller, projectKey, baseURL string) *MCPTracker {
	return &MCPTracker{rpc: rpc, projectKey: projectKey, baseURL: baseURL}
}

// CreateTicket files a task summarizing the receipt and its verification.
// Unverified payments get a raised priority so someone looks at them.
func (t *MCPTracker) CreateTicket(ctx context.Context, r domain.Receipt, v domain.VerificationResult) (domain.TicketRecord, error) {
	priority := "Medium"
	if !v.Verified {
		priority = "High"
	}

	var out struct {
		Key string `json:"key"`
		ID  string `json:"id"`
	}
	err := t.rpc.CallTool(ctx, "createIssue", map[string]any{
		"fields": map[string]any{
			"project":     map[string]any{"key": t.projectKey},
			"summary":     fmt.Sprintf("Payment Received: %s - $%s", r.OrderID, r.Amount.StringFixed(2)),
			"description": ticketDescription(r, v),
			"issuetype":   map[string]any{"name": "Task"},
			"labels":      []string{"payment", "expense", "automated"},
			"priority":    map[string]any{"name": priority},
		},
	}, &out)
	if err != nil {
		return domain.TicketRecord{}, fmt.Errorf("creating ticket: %w", err)
	}

	return domain.TicketRecord{
		Key: out.Key,
		ID:  out.ID,
		URL: fmt.Sprintf("%s/browse/%s", strings.TrimSuffix(t.baseURL, "/"), out.Key),
	}, nil
}

func ticketDescription(r domain.Receipt, v domain.VerificationResult) string {
	verified := "No"
	if v.Verified {
		verified = "Yes"
	}

	lines := []string{
		"*Payment Details*",
		fmt.Sprintf("* Order ID: %s", r.OrderID),
		fmt.Sprintf("* Amount: $%s %s", r.Amount.StringFixed(2), r.Currency),
		fmt.Sprintf("* Payer: %s", r.Payer),
		fmt.Sprintf("* Source: %s", r.Source),
	}
	if r.Timestamp != "" {
		lines = append(lines, fmt.Sprintf("* Timestamp: %s", r.Timestamp))
	}
	lines = append(lines,
		"",
		"*Verification Status*",
		fmt.Sprintf("* Verified: %s", verified),
		fmt.Sprintf("* Status: %s", strings.ToUpper(string(v.Status))),
	)
	if v.TransactionID != "" {
		lines = append(lines, fmt.Sprintf("* Transaction ID: %s", v.TransactionID))
	}
	if v.Message != "" {
		lines = append(lines, fmt.Sprintf("* Message: %s", v.Message))
	}
	if r.Description != "" {
		lines = append(lines, "", "*Original Message*", r.Description)
	}
	lines = append(lines, "", "_Automatically created by paylane_")
	return strings.Join(lines, "\n")
}
