package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketplaceSchema = "configs/schemas/marketplace.schema.json"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "wallet.schema.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"address": {"type": "string"},
			"score": {"type": "integer", "minimum": 0}
		},
		"required": ["address"]
	}`)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", `{"address": "0.0.1234", "score": 30}`, ""},
		{"optional field omitted", `{"address": "0.0.1234"}`, ""},
		{"missing required", `{"score": 25}`, "required"},
		{"wrong type", `{"address": "0.0.1", "score": "thirty"}`, "/score"},
		{"negative score", `{"address": "0.0.1", "score": -5}`, "minimum"},
		{"malformed JSON", `{"address": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, t.TempDir(), "data.json", tt.data)
			err := v.ValidateFile(dataPath, schemaPath)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSchemaValidator_ViolationIsTyped(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "s.json", `{"type": "array", "items": {"type": "integer"}}`)

	err := v.ValidateBytes([]byte(`[1, "two"]`), schemaPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), "/1")

	err = v.ValidateBytes([]byte(`[1,`), schemaPath)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	dataPath := writeFile(t, dir, "data.json", `{}`)
	schemaPath := writeFile(t, dir, "s.json", `{"type": "object"}`)

	err := v.ValidateFile(dataPath, "nonexistent.schema.json")
	assert.ErrorContains(t, err, "failed to load schema")

	err = v.ValidateFile(filepath.Join(dir, "nope.json"), schemaPath)
	assert.ErrorContains(t, err, "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*schemaValidator)
	schemaPath := writeFile(t, t.TempDir(), "s.json", `{"type": "object"}`)

	for i := 0; i < 3; i++ {
		require.NoError(t, v.ValidateBytes([]byte(`{"k": "v"}`), schemaPath))
	}
	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "s.json", `{"type": "object", "required": ["id"]}`)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes([]byte(`{"id": 1}`), schemaPath))
		}()
	}
	wg.Wait()
}

func TestMarketplaceSchema(t *testing.T) {
	v := NewSchemaValidator()

	t.Run("shipped catalog", func(t *testing.T) {
		assert.NoError(t, v.ValidateFile(filepath.Join("..", "..", "configs", "marketplace.json"), marketplaceSchema))
	})

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"no listings key", `{"version": "1.0"}`, "required"},
		{"unknown collection", `{"version": "1.0", "listings": [{"id": 1, "collection": "weapons", "name": "x", "price": 1, "seller": "0.0.1"}]}`, "enum"},
		{"neither collection nor token", `{"version": "1.0", "listings": [{"id": 1, "name": "x", "price": 1, "seller": "0.0.1"}]}`, "/listings/0"},
		{"zero price", `{"version": "1.0", "listings": [{"id": 1, "token_id": "0.0.5", "name": "x", "price": 0, "seller": "0.0.1"}]}`, "minimum"},
		{"bad token id", `{"version": "1.0", "listings": [{"id": 1, "token_id": "abc", "name": "x", "price": 1, "seller": "0.0.1"}]}`, "pattern"},
		{"extra field", `{"version": "1.0", "listings": [], "owner": "me"}`, "additionalProperties"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), marketplaceSchema)
			require.ErrorIs(t, err, ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
