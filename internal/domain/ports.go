package domain

import "context"

// PaymentVerifier cross-checks a receipt against the payment processor's
// record of truth. Verify never fails: transport and API errors are folded
// into a VerificationResult with Status == StatusFailed.
type PaymentVerifier interface {
	Verify(ctx context.Context, r Receipt) VerificationResult
}

// TicketCreator creates a follow-up ticket for a received payment.
type TicketCreator interface {
	CreateTicket(ctx context.Context, r Receipt, v VerificationResult) (TicketRecord, error)
}

// DocumentWriter creates a document-database entry mirroring the receipt and
// its verification outcome. ticketKey may be empty when no ticket was created.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, r Receipt, v VerificationResult, ticketKey string) (DocumentRecord, error)
}

// MessageSource reads the most recent messages of a chat channel,
// newest first.
type MessageSource interface {
	LatestMessages(ctx context.Context, channelID string, limit int) ([]ChannelMessage, error)
}

// Notifier posts a confirmation message back to a chat channel. documentURL
// and threadTS may be empty; a non-empty threadTS threads the confirmation
// under the original payment message.
type Notifier interface {
	PostConfirmation(ctx context.Context, channelID string, r Receipt, ticketKey, documentURL, threadTS string) error
}
