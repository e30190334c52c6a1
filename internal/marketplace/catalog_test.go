package marketplace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/validation"
)

var testTokens = CollectionTokens{AccessNFTTokenID: "0.0.100", RewardNFTTokenID: "0.0.300"}

func TestLoadCatalog_ShippedFile(t *testing.T) {
	listings, err := LoadCatalog(filepath.Join("..", "..", "configs", "marketplace.json"), testTokens)
	require.NoError(t, err)
	require.Len(t, listings, 3)

	tests := []struct {
		name    string
		price   int64
		seller  string
		tokenID string
	}{
		{"Game Access Pass", 50, "0.0.1234", "0.0.100"},
		{"Legendary Sword", 200, "0.0.5678", "0.0.300"},
		{"Dragon Armor Set", 500, "0.0.9012", "0.0.300"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, listings[i].Name)
			assert.Equal(t, tt.price, listings[i].Price)
			assert.Equal(t, tt.seller, listings[i].Seller)
			assert.Equal(t, tt.tokenID, listings[i].TokenID)
			assert.Equal(t, domain.ListingStatusActive, listings[i].Status)
		})
	}
	assert.Len(t, listings[1].Metadata.Attributes, 3)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"), testTokens)
	assert.ErrorContains(t, err, "failed to read marketplace catalog")
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"malformed", `{`, "failed to parse"},
		{"wrong version", `{"version":"2.0","listings":[]}`, "unsupported marketplace catalog version"},
		{"unknown collection", `{"version":"1.0","listings":[{"id":1,"collection":"weapons","name":"x","price":1,"seller":"0.0.1"}]}`, "unknown collection"},
		{"zero price", `{"version":"1.0","listings":[{"id":1,"token_id":"0.0.5","name":"x","price":0,"seller":"0.0.1"}]}`, "price must be positive"},
		{"bad seller", `{"version":"1.0","listings":[{"id":1,"token_id":"0.0.5","name":"x","price":1,"seller":"alice"}]}`, "invalid"},
		{"duplicate id", `{"version":"1.0","listings":[{"id":1,"token_id":"0.0.5","name":"x","price":1,"seller":"0.0.1"},{"id":1,"token_id":"0.0.5","name":"y","price":1,"seller":"0.0.1"}]}`, "duplicate id"},
		{"missing name", `{"version":"1.0","listings":[{"id":1,"token_id":"0.0.5","price":1,"seller":"0.0.1"}]}`, "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.json), testTokens)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseCatalog_ExplicitTokenID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","listings":[{"id":7,"token_id":"0.0.777","serial":3,"name":"Shield","price":10,"seller":"0.0.1"}]}`), 0o600))

	listings, err := LoadCatalog(path, testTokens)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "0.0.777", listings[0].TokenID)
	assert.Equal(t, int64(3), listings[0].Serial)
}

func TestLoadCatalog_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","listings":[{"id":0,"token_id":"0.0.5","name":"x","price":1,"seller":"0.0.1"}]}`), 0o600))

	_, err := LoadCatalog(path, testTokens)
	require.ErrorIs(t, err, validation.ErrSchemaViolation)
	assert.ErrorContains(t, err, "/listings/0/id")
}
