package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paylane/paylane/internal/domain"
)

// Mock is the verifier used when no processor token is configured. Any
// receipt with a positive amount verifies.
type Mock struct{}

// NewMock creates a payments mock.
func NewMock() *Mock { return &Mock{} }

// Verify approves positive amounts and fails everything else.
func (m *Mock) Verify(_ context.Context, r domain.Receipt) domain.VerificationResult {
	result := domain.VerificationResult{
		OrderID:    r.OrderID,
		Amount:     r.Amount,
		VerifiedAt: time.Now(),
	}

	if r.Amount.IsPositive() {
		result.Verified = true
		result.Status = domain.StatusSuccess
		result.TransactionID = "mock_txn_" + uuid.NewString()
		result.Message = fmt.Sprintf("Mock verification successful for $%s", r.Amount.StringFixed(2))
	} else {
		result.Status = domain.StatusFailed
		result.Message = "Mock verification failed"
	}

	slog.Debug("mock payment verification", "order", r.OrderID, "verified", result.Verified)
	return result
}
