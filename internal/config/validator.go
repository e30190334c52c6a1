package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty before the server starts
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"ACCESS_NFT_TOKEN_ID",
	"GAME_TOKEN_ID",
}

// ledger entity ids look like shard.realm.num
var ledgerIDPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ledgerIDVars are checked for shape when set
var ledgerIDVars = []string{"ACCESS_NFT_TOKEN_ID", "GAME_TOKEN_ID", "REWARD_NFT_TOKEN_ID"}

// envWarning flags a value that works but is probably a mistake
type envWarning struct {
	applies func() bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func() bool { return os.Getenv("DB_PASSWORD") == exampleDBPassword },
		message: "DB_PASSWORD appears to be using the example value - please use a secure password",
	},
	{
		applies: func() bool { return os.Getenv("API_KEY") == exampleAPIKey },
		message: "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32",
	},
	{
		applies: func() bool { return os.Getenv("API_KEY") == "" },
		message: "API_KEY is not set - claim, buy and sell endpoints accept unauthenticated requests",
	},
	{
		applies: func() bool { return os.Getenv("TREASURY_TOKEN") == exampleTreasuryToken },
		message: "TREASURY_TOKEN appears to be using the example value - rewards will be rejected by the signer",
	},
	{
		applies: func() bool { return os.Getenv("TREASURY_URL") == "" },
		message: "TREASURY_URL is not set - rewards will be issued in dry-run mode",
	},
}

// ValidateEnv checks the schema version, required variables and ledger id
// shapes. All problems are reported together.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	switch {
	case schemaVersion == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	case schemaVersion != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var errs []error
	var missing []string
	for _, name := range RequiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	for _, name := range ledgerIDVars {
		if v := os.Getenv(name); v != "" && !ledgerIDPattern.MatchString(v) {
			errs = append(errs, fmt.Errorf("%s must look like shard.realm.num, got %q", name, v))
		}
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and then lists settings that are
// legal but likely unintended.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
