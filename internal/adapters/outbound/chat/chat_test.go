package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/paylane/paylane/internal/adapters/outbound/chat"
	"github.com/paylane/paylane/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	lastTool string
	lastArgs map[string]any
	reply    func(out any)
	err      error
}

func (f *fakeCaller) CallTool(_ context.Context, tool string, args map[string]any, out any) error {
	f.lastTool = tool
	f.lastArgs = args
	if f.err != nil {
		return f.err
	}
	if f.reply != nil && out != nil {
		f.reply(out)
	}
	return nil
}

func testReceipt() domain.Receipt {
	return domain.Receipt{
		OrderID:  "ORD-1",
		Amount:   decimal.NewFromFloat(150.00),
		Currency: "USD",
		Payer:    "John Doe",
		Source:   domain.SourceChannelMessage,
	}
}

func TestMCPChat_LatestMessages(t *testing.T) {
	fake := &fakeCaller{reply: func(out any) {
		dst := out.(*struct {
			Messages []domain.ChannelMessage `json:"messages"`
		})
		dst.Messages = []domain.ChannelMessage{{Text: "hi", TS: "1.0"}}
	}}
	c := chat.NewMCP(fake)

	msgs, err := c.LatestMessages(context.Background(), "C123", 20)
	require.NoError(t, err)

	assert.Equal(t, "conversations.history", fake.lastTool)
	assert.Equal(t, "C123", fake.lastArgs["channel"])
	assert.Equal(t, 20, fake.lastArgs["limit"])
	require.Len(t, msgs, 1)
	assert.Equal(t, "1.0", msgs[0].TS)
}

func TestMCPChat_LatestMessagesError(t *testing.T) {
	fake := &fakeCaller{err: errors.New("transport down")}
	c := chat.NewMCP(fake)

	_, err := c.LatestMessages(context.Background(), "C123", 20)
	assert.ErrorContains(t, err, "transport down")
}

func TestMCPChat_PostConfirmationThreads(t *testing.T) {
	fake := &fakeCaller{}
	c := chat.NewMCP(fake)

	err := c.PostConfirmation(context.Background(), "C123", testReceipt(), "EXP-1001", "https://docs.example.com/d1", "42.0")
	require.NoError(t, err)

	assert.Equal(t, "chat.postMessage", fake.lastTool)
	assert.Equal(t, "42.0", fake.lastArgs["thread_ts"])
	text := fake.lastArgs["text"].(string)
	assert.Contains(t, text, "ORD-1")
	assert.Contains(t, text, "EXP-1001")
	assert.Contains(t, text, "https://docs.example.com/d1")
}

func TestMCPChat_PostConfirmationWithoutThread(t *testing.T) {
	fake := &fakeCaller{}
	c := chat.NewMCP(fake)

	err := c.PostConfirmation(context.Background(), "C123", testReceipt(), "EXP-1001", "", "")
	require.NoError(t, err)

	_, hasThread := fake.lastArgs["thread_ts"]
	assert.False(t, hasThread)
}

func TestConfirmationText_FormatsAmount(t *testing.T) {
	text := chat.ConfirmationText(testReceipt(), "EXP-1001", "")
	assert.Contains(t, text, "$150.00 USD")
	assert.NotContains(t, text, "Ledger entry")
}

func TestMock_HistoryParses(t *testing.T) {
	m := chat.NewMock()

	msgs, err := m.LatestMessages(context.Background(), "anything", 20)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)

	r, ok := domain.ParseReceipt(msgs[0].Text)
	require.True(t, ok, "mock history must contain a parseable payment message")
	assert.Equal(t, "ORD-2024-001", r.OrderID)
}

func TestMock_RecordsPosts(t *testing.T) {
	m := chat.NewMock()

	require.NoError(t, m.PostConfirmation(context.Background(), "C1", testReceipt(), "EXP-1", "", ""))
	require.NoError(t, m.PostConfirmation(context.Background(), "C1", testReceipt(), "EXP-2", "", ""))

	posts := m.Posts()
	require.Len(t, posts, 2)
	assert.Contains(t, posts[1], "EXP-2")
}
