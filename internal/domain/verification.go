package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VerificationStatus is the outcome class of a payment verification.
type VerificationStatus string

const (
	StatusSuccess VerificationStatus = "success"
	StatusPending VerificationStatus = "pending"
	StatusFailed  VerificationStatus = "failed"
)

// VerificationResult is produced once per receipt by a PaymentVerifier.
// A failed verification is a first-class outcome, not an error: downstream
// steps still run against it.
type VerificationResult struct {
	Verified      bool               `json:"verified"`
	OrderID       string             `json:"orderId"`
	Amount        decimal.Decimal    `json:"amount"`
	Status        VerificationStatus `json:"status"`
	TransactionID string             `json:"transactionId,omitempty"`
	Message       string             `json:"message,omitempty"`
	VerifiedAt    time.Time          `json:"verifiedAt"`
}
