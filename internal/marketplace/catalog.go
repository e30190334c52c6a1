package marketplace

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/validation"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// Catalog is the on-disk seed for the in-memory marketplace
type Catalog struct {
	Version  string         `json:"version"`
	Listings []CatalogEntry `json:"listings"`
}

// CatalogEntry is one seeded listing. Either TokenID or Collection must be set;
// Collection is resolved against the configured token ids.
type CatalogEntry struct {
	ID          int64              `json:"id"`
	Collection  string             `json:"collection,omitempty"`
	TokenID     string             `json:"token_id,omitempty"`
	Serial      int64              `json:"serial"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       int64              `json:"price"`
	Seller      string             `json:"seller"`
	Metadata    domain.NFTMetadata `json:"metadata"`
}

// CollectionTokens maps catalog collections to ledger token ids
type CollectionTokens struct {
	AccessNFTTokenID string
	RewardNFTTokenID string
}

var catalogSchema = validation.NewSchemaValidator()

// LoadCatalog reads a catalog file, checks it against CatalogSchemaPath and resolves it
func LoadCatalog(path string, tokens CollectionTokens) ([]domain.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read marketplace catalog: %w", err)
	}
	if err := catalogSchema.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf("marketplace catalog %s: %w", path, err)
	}
	return ParseCatalog(data, tokens)
}

// ParseCatalog decodes catalog JSON into active listings
func ParseCatalog(data []byte, tokens CollectionTokens) ([]domain.Listing, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse marketplace catalog: %w", err)
	}
	if catalog.Version != CatalogSchemaVersion {
		return nil, fmt.Errorf("unsupported marketplace catalog version %q (want %q)", catalog.Version, CatalogSchemaVersion)
	}

	now := time.Now().UTC()
	seen := make(map[int64]struct{}, len(catalog.Listings))
	listings := make([]domain.Listing, 0, len(catalog.Listings))
	for i, entry := range catalog.Listings {
		listing, err := entry.resolve(tokens, now)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := seen[listing.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %d", i, listing.ID)
		}
		seen[listing.ID] = struct{}{}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (e CatalogEntry) resolve(tokens CollectionTokens, now time.Time) (domain.Listing, error) {
	tokenID := e.TokenID
	switch e.Collection {
	case "":
	case CollectionAccess:
		tokenID = tokens.AccessNFTTokenID
	case CollectionReward:
		tokenID = tokens.RewardNFTTokenID
	default:
		return domain.Listing{}, fmt.Errorf("unknown collection %q", e.Collection)
	}

	if e.ID <= 0 {
		return domain.Listing{}, fmt.Errorf("id must be positive, got %d", e.ID)
	}
	if e.Name == "" {
		return domain.Listing{}, fmt.Errorf("name is required")
	}
	if e.Price <= 0 {
		return domain.Listing{}, fmt.Errorf("price must be positive, got %d", e.Price)
	}
	seller, err := wallet.Parse(e.Seller)
	if err != nil {
		return domain.Listing{}, err
	}

	return domain.Listing{
		ID:          e.ID,
		TokenID:     tokenID,
		Serial:      e.Serial,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Seller:      seller.String(),
		Metadata:    e.Metadata,
		Status:      domain.ListingStatusActive,
		CreatedAt:   now,
	}, nil
}
