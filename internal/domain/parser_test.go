package domain_test

import (
	"strings"
	"testing"

	"github.com/paylane/paylane/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReceipt_PaymentKeywordPattern(t *testing.T) {
	r, ok := domain.ParseReceipt("Payment received: $150 from John Doe for order #12345")
	require.True(t, ok)

	assert.Equal(t, "12345", r.OrderID)
	assert.Equal(t, "150", r.Amount.String())
	assert.Equal(t, "John Doe", r.Payer)
	assert.Equal(t, "USD", r.Currency)
	assert.Equal(t, domain.SourceChannelMessage, r.Source)
	assert.NotEmpty(t, r.Timestamp)
}

func TestParseReceipt_DecimalAmount(t *testing.T) {
	r, ok := domain.ParseReceipt("Payment received: $150.00 from John Doe for order #ORD-2024-001")
	require.True(t, ok)

	assert.Equal(t, "ORD-2024-001", r.OrderID)
	assert.True(t, r.Amount.Equal(decimalFromString(t, "150.00")))
}

// A leading "Received" matches the keyword pattern first, but its capture
// groups get read in the wrong order there, so the candidate fails validation
// and the dollar-first pattern picks it up instead.
func TestParseReceipt_FallsThroughToDollarFirstPattern(t *testing.T) {
	r, ok := domain.ParseReceipt("Received $99.99 from Jane Smith, order ORD-2024-002")
	require.True(t, ok)

	assert.Equal(t, "ORD-2024-002", r.OrderID)
	assert.True(t, r.Amount.Equal(decimalFromString(t, "99.99")))
	assert.Equal(t, "Jane Smith", r.Payer)
}

func TestParseReceipt_OrderFirstPattern(t *testing.T) {
	r, ok := domain.ParseReceipt("Order #ORD-7, got $20.00 from Sam Lee")
	require.True(t, ok)

	assert.Equal(t, "ORD-7", r.OrderID)
	assert.True(t, r.Amount.Equal(decimalFromString(t, "20.00")))
	assert.Equal(t, "Sam Lee", r.Payer)
}

func TestParseReceipt_SingleWordPayer(t *testing.T) {
	r, ok := domain.ParseReceipt("paid $42 by alice, order A-1")
	require.True(t, ok)

	assert.Equal(t, "A-1", r.OrderID)
	assert.Equal(t, "alice", r.Payer)
}

func TestParseReceipt_EmailPayer(t *testing.T) {
	r, ok := domain.ParseReceipt("Payment of $99.99 from jane@example.com, order ABC-123")
	require.True(t, ok)

	assert.Equal(t, "ABC-123", r.OrderID)
	assert.Equal(t, "jane@example.com", r.Payer)
}

func TestParseReceipt_NoMatch(t *testing.T) {
	for _, text := range []string{
		"",
		"hello team, lunch at noon?",
		"the deploy is done",
		"order status update without any figures",
		"$12 but no payer or order reference",
	} {
		_, ok := domain.ParseReceipt(text)
		assert.False(t, ok, "text %q should not parse", text)
	}
}

func TestParseReceipt_ZeroAmountRejected(t *testing.T) {
	_, ok := domain.ParseReceipt("Payment received: $0 from John Doe for order #12345")
	assert.False(t, ok)
}

func TestParseReceipt_DescriptionKeepsPrefixOfText(t *testing.T) {
	long := "Payment received: $150 from John Doe for order #12345 " + strings.Repeat("x", 500)
	r, ok := domain.ParseReceipt(long)
	require.True(t, ok)

	assert.Len(t, []rune(r.Description), 200)
	assert.True(t, strings.HasPrefix(long, r.Description))
}

func TestParseReceipt_CaseInsensitiveKeywords(t *testing.T) {
	r, ok := domain.ParseReceipt("PAYMENT RECEIVED: $10 FROM Bob FOR ORDER #X-99")
	require.True(t, ok)
	assert.Equal(t, "X-99", r.OrderID)
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
