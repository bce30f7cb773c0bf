package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paylane/paylane/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderRunSummary formats a complete pipeline run for terminal output.
func RenderRunSummary(res *domain.RunResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("paylane")
	subtitle := dimStyle.Render("Payment Notification Workflow")
	var verdict string
	if res.Success {
		verdict = passStyle.Bold(true).Render("SUCCESS")
	} else {
		verdict = failStyle.Bold(true).Render("FAILED")
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	// ── Receipt ──
	if res.Receipt != nil {
		b.WriteString(RenderReceipt(*res.Receipt))
		b.WriteString("\n")
	}

	// ── Verification ──
	if res.Verification != nil {
		b.WriteString(RenderVerification(*res.Verification))
		b.WriteString("\n")
	}

	// ── Downstream records ──
	b.WriteString("  " + titleStyle.Render("Records") + "\n")
	if res.Ticket != nil {
		fmt.Fprintf(&b, "    %s %s %s\n",
			passStyle.Render("●"),
			padRight("Ticket", 16),
			dimStyle.Render(res.Ticket.Key+"  "+res.Ticket.URL))
	} else {
		fmt.Fprintf(&b, "    %s %s %s\n",
			failStyle.Render("●"), padRight("Ticket", 16), dimStyle.Render("not created"))
	}
	if res.Document != nil {
		fmt.Fprintf(&b, "    %s %s %s\n",
			passStyle.Render("●"),
			padRight("Ledger record", 16),
			dimStyle.Render(res.Document.URL))
	} else {
		fmt.Fprintf(&b, "    %s %s %s\n",
			failStyle.Render("●"), padRight("Ledger record", 16), dimStyle.Render("not created"))
	}
	if confirmationPosted(res) {
		fmt.Fprintf(&b, "    %s %s %s\n",
			passStyle.Render("●"), padRight("Confirmation", 16), dimStyle.Render("posted"))
	} else {
		fmt.Fprintf(&b, "    %s %s %s\n",
			warnStyle.Render("○"), padRight("Confirmation", 16), dimStyle.Render("not posted"))
	}

	// ── Errors ──
	if len(res.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString("  " + failStyle.Bold(true).Render(fmt.Sprintf("%d errors", len(res.Errors))) + "\n")
		for _, e := range res.Errors {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("✗"), dimStyle.Render(e))
		}
	}

	b.WriteString("\n")
	return b.String()
}

// RenderReceipt formats the parsed receipt block.
func RenderReceipt(r domain.Receipt) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Receipt") + "\n")
	fmt.Fprintf(&b, "    %s %s\n", padLabel("Order"), r.OrderID)
	fmt.Fprintf(&b, "    %s $%s %s\n", padLabel("Amount"), r.Amount.StringFixed(2), r.Currency)
	fmt.Fprintf(&b, "    %s %s\n", padLabel("Payer"), r.Payer)
	fmt.Fprintf(&b, "    %s %s\n", padLabel("Source"), string(r.Source))
	return b.String()
}

// RenderVerification formats the processor verification block.
func RenderVerification(v domain.VerificationResult) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Verification") + "\n")

	var status string
	switch v.Status {
	case domain.StatusSuccess:
		status = passStyle.Render(strings.ToUpper(string(v.Status)))
	case domain.StatusPending:
		status = warnStyle.Render(strings.ToUpper(string(v.Status)))
	default:
		status = failStyle.Render(strings.ToUpper(string(v.Status)))
	}
	fmt.Fprintf(&b, "    %s %s\n", padLabel("Status"), status)
	if v.TransactionID != "" {
		fmt.Fprintf(&b, "    %s %s\n", padLabel("Transaction"), dimStyle.Render(v.TransactionID))
	}
	if v.Message != "" {
		fmt.Fprintf(&b, "    %s %s\n", padLabel("Message"), faintStyle.Render(v.Message))
	}
	return b.String()
}

// confirmationPosted reports whether the confirmation step ran clean. The
// pipeline only posts when a ticket exists and no chat error was recorded.
func confirmationPosted(res *domain.RunResult) bool {
	if res.Ticket == nil {
		return false
	}
	for _, e := range res.Errors {
		if strings.HasPrefix(e, "chat: ") {
			return false
		}
	}
	return true
}

func padLabel(s string) string {
	return dimStyle.Render(padRight(s, 14))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
