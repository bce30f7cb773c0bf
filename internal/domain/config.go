package domain

// Config is the process-wide configuration, loaded once at startup and
// treated as read-only for the process lifetime. Missing optional credentials
// degrade the corresponding integration to its mock counterpart.
type Config struct {
	// Chat
	ChatBotToken  string
	ChatChannelID string

	// Tracking system
	TrackerBaseURL    string
	TrackerEmail      string
	TrackerAPIToken   string
	TrackerProjectKey string

	// Document database
	LedgerToken string
	LedgerDBID  string

	// Payment processor
	PaymentAccessToken string
	PaymentAPIURL      string

	// When true every integration uses its deterministic in-process stand-in.
	MockMode bool

	// Paths to the helper subprocess bundles backing the live integrations.
	MCPChatPath    string
	MCPTrackerPath string
	MCPLedgerPath  string

	// HTTP front door
	Port string
}

// ChatConfigured reports whether live chat credentials are present.
func (c Config) ChatConfigured() bool { return c.ChatBotToken != "" }

// TrackerConfigured reports whether live tracker credentials are present.
func (c Config) TrackerConfigured() bool {
	return c.TrackerBaseURL != "" && c.TrackerEmail != "" && c.TrackerAPIToken != ""
}

// LedgerConfigured reports whether live document-database credentials are present.
func (c Config) LedgerConfigured() bool { return c.LedgerToken != "" }

// PaymentsConfigured reports whether a live payment-processor token is present.
func (c Config) PaymentsConfigured() bool { return c.PaymentAccessToken != "" }
