// Package ledger writes payment records into the document database.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/paylane/paylane/internal/domain"
)

// ToolCaller is the slice of the MCP client this adapter needs.
type ToolCaller interface {
	CallTool(ctx context.Context, tool string, args map[string]any, out any) error
}

// MCPLedger implements domain.DocumentWriter on top of a document database
// MCP helper. Every record lands as a page in one configured database.
type MCPLedger struct {
	rpc        ToolCaller
	databaseID string
}

// NewMCP creates an MCPLedger writing into databaseID.
func NewMCP(rpc ToolCaller, databaseID string) *MCPLedger {
	return &MCPLedger{rpc: rpc, databaseID: databaseID}
}

// CreateDocument stores the receipt and its verification outcome as a new page.
func (l *MCPLedger) CreateDocument(ctx context.Context, r domain.Receipt, v domain.VerificationResult, ticketKey string) (domain.DocumentRecord, error) {
	if l.databaseID == "" {
		return domain.DocumentRecord{}, errors.New("ledger database id not configured")
	}

	status := "Pending"
	if v.Verified {
		status = "Verified"
	} else if v.Status == domain.StatusFailed {
		status = "Failed"
	}

	properties := map[string]any{
		"Order ID": map[string]any{
			"title": []any{map[string]any{"text": map[string]any{"content": r.OrderID}}},
		},
		"Amount": map[string]any{
			"number": r.Amount.InexactFloat64(),
		},
		"Currency": map[string]any{
			"select": map[string]any{"name": r.Currency},
		},
		"Payer": map[string]any{
			"rich_text": []any{map[string]any{"text": map[string]any{"content": r.Payer}}},
		},
		"Status": map[string]any{
			"select": map[string]any{"name": status},
		},
		"Source": map[string]any{
			"select": map[string]any{"name": string(r.Source)},
		},
	}
	if r.Timestamp != "" {
		properties["Date"] = map[string]any{
			"date": map[string]any{"start": r.Timestamp},
		}
	}
	if ticketKey != "" {
		properties["Ticket"] = map[string]any{
			"rich_text": []any{map[string]any{"text": map[string]any{"content": ticketKey}}},
		}
	}
	if v.TransactionID != "" {
		properties["Transaction ID"] = map[string]any{
			"rich_text": []any{map[string]any{"text": map[string]any{"content": v.TransactionID}}},
		}
	}

	var out struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	err := l.rpc.CallTool(ctx, "pages.create", map[string]any{
		"parent":     map[string]any{"database_id": l.databaseID},
		"properties": properties,
	}, &out)
	if err != nil {
		return domain.DocumentRecord{}, fmt.Errorf("creating ledger record: %w", err)
	}

	url := out.URL
	if url == "" {
		url = "https://docs.example.com/" + out.ID
	}
	return domain.DocumentRecord{ID: out.ID, URL: url}, nil
}
