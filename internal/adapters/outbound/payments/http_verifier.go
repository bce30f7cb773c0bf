// Package payments checks receipts against the payment processor.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/paylane/paylane/internal/domain"
	"github.com/shopspring/decimal"
)

const apiVersion = "2024-01-18"

// HTTPVerifier implements domain.PaymentVerifier against the processor's
// REST API. It never returns an error; every failure mode is expressed as
// an unverified result so the pipeline can keep going.
type HTTPVerifier struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewHTTP creates a verifier against baseURL authenticating with token.
func NewHTTP(baseURL, token string) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

type processorPayment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	ReferenceID string `json:"reference_id"`
	OrderID     string `json:"order_id"`
	AmountMoney struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"amount_money"`
}

type paymentListing struct {
	Payments []processorPayment `json:"payments"`
}

// Verify looks the receipt up by order id in the processor's recent payments
// and checks that the charge completed for the expected amount.
func (v *HTTPVerifier) Verify(ctx context.Context, r domain.Receipt) domain.VerificationResult {
	result := domain.VerificationResult{
		OrderID:    r.OrderID,
		Amount:     r.Amount,
		Status:     domain.StatusFailed,
		VerifiedAt: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/v2/payments", nil)
	if err != nil {
		result.Message = fmt.Sprintf("building request: %v", err)
		return result
	}
	req.Header.Set("Authorization", "Bearer "+v.token)
	req.Header.Set("Square-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	res, err := v.httpc.Do(req)
	if err != nil {
		result.Message = fmt.Sprintf("payment lookup failed: %v", err)
		return result
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		result.Message = fmt.Sprintf("payment lookup failed: status %d", res.StatusCode)
		return result
	}

	var listing paymentListing
	if err := json.NewDecoder(res.Body).Decode(&listing); err != nil {
		result.Message = fmt.Sprintf("decoding payment listing: %v", err)
		return result
	}

	match, found := findByOrder(listing.Payments, r.OrderID)
	if !found {
		result.Message = "Payment not found"
		return result
	}

	result.TransactionID = match.ID
	cents := r.Amount.Mul(decimal.NewFromInt(100)).IntPart()
	if match.Status == "COMPLETED" && match.AmountMoney.Amount == cents {
		result.Verified = true
		result.Status = domain.StatusSuccess
		result.Message = "Payment verified"
		return result
	}

	result.Status = domain.StatusPending
	result.Message = fmt.Sprintf("Payment status mismatch: status=%s amount=%d expected=%d",
		match.Status, match.AmountMoney.Amount, cents)
	return result
}

func findByOrder(payments []processorPayment, orderID string) (processorPayment, bool) {
	for _, p := range payments {
		if p.ReferenceID == orderID || p.OrderID == orderID {
			return p, true
		}
	}
	return processorPayment{}, false
}
