package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	for _, envVar := range RequiredEnvVars {
		if envVar != "ENV_SCHEMA_VERSION" {
			t.Setenv(envVar, "test_value")
		}
	}
	t.Setenv("ACCESS_NFT_TOKEN_ID", "0.0.1001")
	t.Setenv("GAME_TOKEN_ID", "0.0.1002")
	t.Setenv("REWARD_NFT_TOKEN_ID", "")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("GAME_TOKEN_ID", "")
	t.Setenv("DB_HOST", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "GAME_TOKEN_ID")
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PASSWORD", exampleDBPassword)
	t.Setenv("API_KEY", exampleAPIKey)
	t.Setenv("TREASURY_TOKEN", exampleTreasuryToken)
	t.Setenv("TREASURY_URL", "https://signer.internal")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "TREASURY_TOKEN")
}

func TestValidateEnvWithWarnings_DryRun(t *testing.T) {
	setRequired(t)
	t.Setenv("API_KEY", "a-real-key")
	t.Setenv("TREASURY_URL", "")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "dry-run")
}

func TestValidateEnv_MalformedLedgerIDs(t *testing.T) {
	setRequired(t)
	t.Setenv("GAME_TOKEN_ID", "game-token")
	t.Setenv("REWARD_NFT_TOKEN_ID", "0.0")
	t.Setenv("DB_NAME", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), `GAME_TOKEN_ID must look like shard.realm.num, got "game-token"`)
	assert.Contains(t, err.Error(), "REWARD_NFT_TOKEN_ID")
}

func TestValidateEnvWithWarnings_NoAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("API_KEY", "")
	t.Setenv("TREASURY_URL", "https://signer.internal")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unauthenticated")
}
