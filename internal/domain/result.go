package domain

// RunResult is the terminal artifact of one pipeline run.
//
// Receipt and Verification are nil only when acquisition failed before they
// could be computed. Ticket and Document stay nil when their step failed or
// was skipped; the failure text, if any, is collected in Errors in step order.
// Success is true iff Errors is empty at completion; an unverified payment
// alone does not fail the run.
type RunResult struct {
	Receipt      *Receipt            `json:"receipt,omitempty"`
	Verification *VerificationResult `json:"verification,omitempty"`
	Ticket       *TicketRecord       `json:"ticket,omitempty"`
	Document     *DocumentRecord     `json:"document,omitempty"`
	Success      bool                `json:"success"`
	Errors       []string            `json:"errors"`
}
