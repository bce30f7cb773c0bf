package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paylane/paylane/internal/domain"
)

// How many recent channel messages are scanned for a payment receipt.
const messageScanLimit = 20

// Ports bundles the outbound collaborators of the pipeline. Each field may be
// a live client or its deterministic mock; the service does not know which.
type Ports struct {
	Verifier  domain.PaymentVerifier
	Tickets   domain.TicketCreator
	Documents domain.DocumentWriter
	Source    domain.MessageSource
	Notifier  domain.Notifier
}

// RunOptions selects the input and mode of a single pipeline run.
type RunOptions struct {
	// Channel overrides the configured source channel.
	Channel string
	// Fixture bypasses channel scanning and feeds this receipt directly
	// into the pipeline. It must already be validated.
	Fixture *domain.Receipt
	// DryRun stops after verification, skipping all side-effecting steps.
	DryRun bool
}

// ProcessService runs the five-step payment pipeline:
// acquire receipt -> verify -> create ticket -> create document -> confirm.
type ProcessService struct {
	cfg   domain.Config
	ports Ports
	log   *slog.Logger
}

func NewProcessService(cfg domain.Config, ports Ports, log *slog.Logger) *ProcessService {
	if log == nil {
		log = slog.Default()
	}
	return &ProcessService{cfg: cfg, ports: ports, log: log}
}

// Run executes one pipeline pass. It never returns an error: a failure to
// acquire a receipt produces a failed RunResult with the reason in Errors,
// and failures in the ticket, document and confirmation steps are isolated
// per step so the remaining steps still execute.
func (s *ProcessService) Run(ctx context.Context, opts RunOptions) *domain.RunResult {
	errs := []string{}

	// 1. Acquire a receipt, either supplied directly or extracted from the
	// most recent channel messages.
	receipt, threadTS, err := s.acquireReceipt(ctx, opts)
	if err != nil {
		s.log.Error("receipt acquisition failed", "error", err)
		return &domain.RunResult{Success: false, Errors: append(errs, err.Error())}
	}
	s.log.Info("receipt acquired", "order", receipt.OrderID, "amount", receipt.Amount.String(), "payer", receipt.Payer)

	// 2. Verify the payment. An unverified payment is logged and tracked
	// like any other; it does not abort the pipeline.
	verification := s.ports.Verifier.Verify(ctx, receipt)
	if !verification.Verified {
		s.log.Warn("payment not verified, continuing", "order", receipt.OrderID, "message", verification.Message)
	}

	if opts.DryRun {
		s.log.Info("dry run, skipping ticket, document and confirmation steps")
		return &domain.RunResult{
			Receipt:      &receipt,
			Verification: &verification,
			Success:      true,
			Errors:       errs,
		}
	}

	// 3. Create the tracking ticket.
	var ticket *domain.TicketRecord
	if t, err := s.ports.Tickets.CreateTicket(ctx, receipt, verification); err != nil {
		s.log.Error("ticket creation failed", "error", err)
		errs = append(errs, fmt.Sprintf("tracker: %v", err))
	} else {
		ticket = &t
		s.log.Info("ticket created", "key", t.Key, "url", t.URL)
	}

	// 4. Create the document-database entry, cross-referencing the ticket
	// when one exists.
	var document *domain.DocumentRecord
	ticketKey := ""
	if ticket != nil {
		ticketKey = ticket.Key
	}
	if d, err := s.ports.Documents.CreateDocument(ctx, receipt, verification, ticketKey); err != nil {
		s.log.Error("document creation failed", "error", err)
		errs = append(errs, fmt.Sprintf("ledger: %v", err))
	} else {
		document = &d
		s.log.Info("document created", "id", d.ID, "url", d.URL)
	}

	// 5. Post the confirmation. Without a destination channel or a ticket
	// this is an explicit skip, not an error.
	channel := s.confirmationChannel(opts)
	if channel != "" && ticket != nil {
		documentURL := ""
		if document != nil {
			documentURL = document.URL
		}
		if err := s.ports.Notifier.PostConfirmation(ctx, channel, receipt, ticket.Key, documentURL, threadTS); err != nil {
			s.log.Error("confirmation failed", "error", err)
			errs = append(errs, fmt.Sprintf("chat: %v", err))
		} else {
			s.log.Info("confirmation posted", "channel", channel)
		}
	} else {
		s.log.Warn("skipping confirmation", "channel", channel, "ticket", ticketKey)
	}

	return &domain.RunResult{
		Receipt:      &receipt,
		Verification: &verification,
		Ticket:       ticket,
		Document:     document,
		Success:      len(errs) == 0,
		Errors:       errs,
	}
}

// acquireReceipt resolves step 1. The returned thread timestamp is non-empty
// only when the receipt came from a channel message, so the confirmation can
// be threaded under it.
func (s *ProcessService) acquireReceipt(ctx context.Context, opts RunOptions) (domain.Receipt, string, error) {
	if opts.Fixture != nil {
		return *opts.Fixture, "", nil
	}

	channel := opts.Channel
	if channel == "" {
		channel = s.cfg.ChatChannelID
	}
	if channel == "" {
		return domain.Receipt{}, "", fmt.Errorf("no source channel configured and no fixture receipt provided")
	}

	messages, err := s.ports.Source.LatestMessages(ctx, channel, messageScanLimit)
	if err != nil {
		return domain.Receipt{}, "", fmt.Errorf("reading channel messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Text == "" {
			continue
		}
		if receipt, ok := domain.ParseReceipt(msg.Text); ok {
			// A receipt found inside a thread confirms under the thread
			// parent, not under the reply itself.
			threadTS := msg.TS
			if msg.ThreadTS != "" {
				threadTS = msg.ThreadTS
			}
			return receipt, threadTS, nil
		}
	}

	return domain.Receipt{}, "", fmt.Errorf("no payment receipt found in the last %d channel messages", messageScanLimit)
}

func (s *ProcessService) confirmationChannel(opts RunOptions) string {
	if opts.Channel != "" {
		return opts.Channel
	}
	return s.cfg.ChatChannelID
}
