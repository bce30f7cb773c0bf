package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Source identifies where a receipt entered the pipeline.
type Source string

const (
	SourceChannelMessage Source = "channel-message"
	SourceEmail          Source = "email"
	SourceWebhook        Source = "webhook"
	SourceManual         Source = "manual"
)

// ValidSources enumerates all recognized receipt sources.
var ValidSources = []Source{
	SourceChannelMessage,
	SourceEmail,
	SourceWebhook,
	SourceManual,
}

// Receipt is a structured record of a single payment event.
// A receipt is immutable once validated; downstream steps never mutate it.
type Receipt struct {
	OrderID     string          `json:"orderId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Payer       string          `json:"payer"`
	Description string          `json:"description,omitempty"`
	Timestamp   string          `json:"timestamp,omitempty"`
	Source      Source          `json:"source,omitempty"`
}

// Validate checks the receipt invariants and returns a copy with currency
// and source defaults applied. The receiver is left untouched.
func (r Receipt) Validate() (Receipt, error) {
	if r.Currency == "" {
		r.Currency = "USD"
	}
	if r.Source == "" {
		r.Source = SourceChannelMessage
	}

	if strings.TrimSpace(r.OrderID) == "" {
		return Receipt{}, errors.New("orderId must not be empty")
	}
	if strings.TrimSpace(r.Payer) == "" {
		return Receipt{}, errors.New("payer must not be empty")
	}
	if !r.Amount.IsPositive() {
		return Receipt{}, fmt.Errorf("amount must be positive, got %s", r.Amount)
	}
	if !validSource(r.Source) {
		return Receipt{}, fmt.Errorf("unknown source %q", r.Source)
	}

	return r, nil
}

func validSource(s Source) bool {
	for _, v := range ValidSources {
		if s == v {
			return true
		}
	}
	return false
}
