package ledger

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/snowflake"
	"github.com/paylane/paylane/internal/domain"
)

// Mock is the deterministic stand-in used when no document database
// credentials are configured. Record ids are snowflakes so concurrent runs
// never collide.
type Mock struct {
	node *snowflake.Node
}

// NewMock creates a ledger mock.
func NewMock() *Mock {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return &Mock{node: node}
}

// CreateDocument returns a synthetic document record with a fresh id.
func (m *Mock) CreateDocument(_ context.Context, r domain.Receipt, _ domain.VerificationResult, ticketKey string) (domain.DocumentRecord, error) {
	id := m.node.Generate().String()
	slog.Info("mock ledger record created", "id", id, "order", r.OrderID, "ticket", ticketKey)
	return domain.DocumentRecord{
		ID:  id,
		URL: "https://docs.example.com/" + id,
	}, nil
}
