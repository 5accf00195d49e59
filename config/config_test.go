package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPC.Endpoint)
	assert.Equal(t, "confirmed", cfg.RPC.Commitment)
	assert.Equal(t, 90*time.Second, cfg.RPC.Timeout)
	assert.Equal(t, time.Second, cfg.RPC.PollInterval)

	assert.Equal(t, DefaultProgramID, cfg.Program.ID)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
rpc:
  endpoint: "http://localhost:8899"
  commitment: "finalized"
  timeout: "30s"
  poll_interval: "250ms"
program:
  id: "TestProgram1111111111111111111111111111111"
log:
  level: "debug"
  pretty: false
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8899", cfg.RPC.Endpoint)
	assert.Equal(t, "finalized", cfg.RPC.Commitment)
	assert.Equal(t, 30*time.Second, cfg.RPC.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.RPC.PollInterval)
	assert.Equal(t, "TestProgram1111111111111111111111111111111", cfg.Program.ID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ESCROW_RPC_ENDPOINT", "http://validator.internal:8899")
	t.Setenv("ESCROW_PROGRAM_ID", "EnvProgram11111111111111111111111111111111")
	t.Setenv("ESCROW_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://validator.internal:8899", cfg.RPC.Endpoint)
	assert.Equal(t, "EnvProgram11111111111111111111111111111111", cfg.Program.ID)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load("/non/existent/path/config.yaml")
	assert.Error(t, err)
}
