package config

const (
	// Configuration file paths
	ConfigPathMarketplaceCatalog = "configs/marketplace.json"

	// Example values shipped in .env.example
	exampleDBPassword    = "change_this_secure_password"
	exampleAPIKey        = "generate_with_openssl_rand_hex_32"
	exampleTreasuryToken = "replace_with_treasury_token"
)
