package cli_test

import (
	"bytes"
	"testing"

	"github.com/paylane/paylane/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEnv pins the configuration every command test depends on, regardless of
// what the surrounding environment carries.
func mockEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MOCK_MODE", "true")
	t.Setenv("CHAT_CHANNEL_ID", "")
	t.Setenv("TRACKER_PROJECT_KEY", "EXP")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunCommand_ReceiptFile(t *testing.T) {
	mockEnv(t)
	t.Setenv("CHAT_CHANNEL_ID", "C123")
	out, err := execute(t, "run", "-m", "testdata/receipt.json")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "ORD-2024-042")
	assert.Contains(t, out, "EXP-1000")
	assert.Contains(t, out, "posted")
}

func TestRunCommand_DryRun(t *testing.T) {
	mockEnv(t)
	out, err := execute(t, "run", "-m", "testdata/receipt.json", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "not created")
}

func TestRunCommand_ChannelOverride(t *testing.T) {
	mockEnv(t)
	out, err := execute(t, "run", "--channel", "C123")
	require.NoError(t, err)
	assert.Contains(t, out, "ORD-2024-001")
	assert.Contains(t, out, "$150.00 USD")
}

func TestRunCommand_ConfiguredChannel(t *testing.T) {
	mockEnv(t)
	t.Setenv("CHAT_CHANNEL_ID", "C999")
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS")
}

func TestRunCommand_NoChannelFails(t *testing.T) {
	mockEnv(t)
	out, err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "no source channel configured")
}

func TestRunCommand_MissingReceiptFile(t *testing.T) {
	mockEnv(t)
	_, err := execute(t, "run", "-m", "testdata/does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading receipt file")
}

func TestRunCommand_InvalidReceiptFile(t *testing.T) {
	mockEnv(t)
	_, err := execute(t, "run", "-m", "testdata/invalid-receipt.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid receipt")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "paylane dev")
}
