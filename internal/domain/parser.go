package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ordered extraction patterns. The first pattern that yields a valid receipt
// wins; no scoring or disambiguation across patterns.
//
// Example texts they recognize:
//
//	"Payment received: $150 from John Doe for Order #12345"
//	"Received $99.99 from jane@example.com, order ABC-123"
//	"Order #789, got $50 from Alice"
var receiptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:payment|received|paid).*?\$(\d+(?:\.\d{2})?)\s+(?:from|by)\s+([^\s,]+(?:\s+[^\s,]+)?)[,\s]+.*?(?:order|#)\s*([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)\$(\d+(?:\.\d{2})?)\s+(?:from|by)\s+([^\s,]+(?:\s+[^\s,]+)?)[,\s]+.*?(?:order|#)\s*([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)(?:order|#)\s*([A-Za-z0-9-]+)[,\s]+.*?\$(\d+(?:\.\d{2})?)\s+(?:from|by)\s+([^\s,]+(?:\s+[^\s,]+)?)`),
}

// Receipts parsed from chat keep at most this much of the original text.
const descriptionLimit = 200

// ParseReceipt extracts a payment receipt from free-form message text.
// It reports false when no pattern matches or when an extracted candidate
// fails validation (a non-numeric amount, for example); it never fails hard
// on unmatched text.
func ParseReceipt(text string) (Receipt, bool) {
	for _, pattern := range receiptPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		// The patterns capture amount, payer and order id in different
		// group orders. Amount comes first when the match opens with the
		// dollar figure or a payment keyword.
		var amountStr, payer, orderID string
		if strings.HasPrefix(m[0], "$") || strings.Contains(strings.ToLower(m[0]), "payment") {
			amountStr, payer, orderID = m[1], m[2], m[3]
		} else {
			orderID, amountStr, payer = m[1], m[2], m[3]
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			continue
		}

		candidate := Receipt{
			OrderID:     strings.TrimSpace(orderID),
			Amount:      amount,
			Currency:    "USD",
			Payer:       strings.TrimSpace(payer),
			Description: truncate(text, descriptionLimit),
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Source:      SourceChannelMessage,
		}

		receipt, err := candidate.Validate()
		if err != nil {
			continue // treat as a non-match, try the next pattern
		}
		return receipt, true
	}

	return Receipt{}, false
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
