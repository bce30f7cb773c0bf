// Package config loads the process-wide configuration from the environment.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/paylane/paylane/internal/domain"
)

// EnvLoader builds a domain.Config from environment variables, reading a
// .env file first when one exists in the working directory.
type EnvLoader struct{}

// New creates an EnvLoader.
func New() *EnvLoader { return &EnvLoader{} }

// Load reads the environment into an immutable Config. Absent optional
// credentials are left empty; the wiring layer falls back to mocks for them.
func (l *EnvLoader) Load() (domain.Config, error) {
	// Missing .env is fine, the environment alone is enough.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("TRACKER_PROJECT_KEY", "EXP")
	v.SetDefault("PAYMENT_API_URL", "https://connect.squareupsandbox.com")
	v.SetDefault("MOCK_MODE", true)
	v.SetDefault("MCP_CHAT_PATH", "./mcp-servers/chat")
	v.SetDefault("MCP_TRACKER_PATH", "./mcp-servers/tracker")
	v.SetDefault("MCP_LEDGER_PATH", "./mcp-servers/ledger")
	v.SetDefault("PORT", "3000")

	cfg := domain.Config{
		ChatBotToken:  v.GetString("CHAT_BOT_TOKEN"),
		ChatChannelID: v.GetString("CHAT_CHANNEL_ID"),

		TrackerBaseURL:    v.GetString("TRACKER_BASE_URL"),
		TrackerEmail:      v.GetString("TRACKER_EMAIL"),
		TrackerAPIToken:   v.GetString("TRACKER_API_TOKEN"),
		TrackerProjectKey: v.GetString("TRACKER_PROJECT_KEY"),

		LedgerToken: v.GetString("LEDGER_TOKEN"),
		LedgerDBID:  v.GetString("LEDGER_DB_ID"),

		PaymentAccessToken: v.GetString("PAYMENT_ACCESS_TOKEN"),
		PaymentAPIURL:      v.GetString("PAYMENT_API_URL"),

		MockMode: v.GetBool("MOCK_MODE"),

		MCPChatPath:    v.GetString("MCP_CHAT_PATH"),
		MCPTrackerPath: v.GetString("MCP_TRACKER_PATH"),
		MCPLedgerPath:  v.GetString("MCP_LEDGER_PATH"),

		Port: v.GetString("PORT"),
	}

	return cfg, nil
}
