package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/paylane/paylane/internal/domain"
)

// Mock is the deterministic stand-in used when no tracker credentials are
// configured. Keys count up from 1000 within the process.
type Mock struct {
	projectKey string

	mu   sync.Mutex
	next int
}

// NewMock creates a tracker mock issuing keys under projectKey.
func NewMock(projectKey string) *Mock {
	return &Mock{projectKey: projectKey, next: 1000}
}

// CreateTicket returns a synthetic but structurally valid ticket record.
func (m *Mock) CreateTicket(_ context.Context, r domain.Receipt, _ domain.VerificationResult) (domain.TicketRecord, error) {
	m.mu.Lock()
	n := m.next
	m.next++
	m.mu.Unlock()

	key := fmt.Sprintf("%s-%d", m.projectKey, n)
	slog.Info("mock ticket created", "key", key, "order", r.OrderID)
	return domain.TicketRecord{
		Key: key,
		ID:  strconv.Itoa(n),
		URL: "https://tracker.example.com/browse/" + key,
	}, nil
}
