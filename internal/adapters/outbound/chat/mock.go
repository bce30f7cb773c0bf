package chat

import (
	"context"
	"log/slog"
	"sync"

	"github.com/paylane/paylane/internal/domain"
)

// Mock is the deterministic stand-in used when no chat credentials are
// configured. Its message history contains exactly one parseable payment
// line, and posted confirmations are recorded instead of sent.
type Mock struct {
	mu    sync.Mutex
	posts []string
}

// NewMock creates a chat mock.
func NewMock() *Mock { return &Mock{} }

// LatestMessages returns the canned channel history.
func (m *Mock) LatestMessages(_ context.Context, channelID string, _ int) ([]domain.ChannelMessage, error) {
	slog.Debug("mock chat history read", "channel", channelID)
	return []domain.ChannelMessage{
		{
			Type: "message",
			User: "U123456",
			Text: "Payment received: $150.00 from John Doe for order #ORD-2024-001",
			TS:   "1234567890.123456",
		},
	}, nil
}

// PostConfirmation records the confirmation text without sending anything.
func (m *Mock) PostConfirmation(_ context.Context, channelID string, r domain.Receipt, ticketKey, documentURL, _ string) error {
	text := ConfirmationText(r, ticketKey, documentURL)
	m.mu.Lock()
	m.posts = append(m.posts, text)
	m.mu.Unlock()
	slog.Info("mock confirmation posted", "channel", channelID, "ticket", ticketKey)
	return nil
}

// Posts returns a copy of every confirmation recorded so far.
func (m *Mock) Posts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.posts))
	copy(out, m.posts)
	return out
}
