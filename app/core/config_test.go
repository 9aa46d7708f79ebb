package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

func TestSetupConfigFromEnv(t *testing.T) {
	addr := "localhost:11111"
	os.Setenv("POSTPILOT_API_SERVICE_ADDRESS", addr)

	cfg := LoadBaseConfigFromENV()

	assert.Equal(t, cfg.Addr, addr)
}

func TestRetrievalDefaults(t *testing.T) {
	var cfg RetrievalConfig
	cfg.ApplyDefaults()

	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, 1200, cfg.MaxContextTokens)
	assert.Equal(t, []CategoryPriority{
		{Category: types.CHUNK_CATEGORY_POST_TYPE, MaxChunks: 1},
		{Category: types.CHUNK_CATEGORY_STYLE, MaxChunks: 1},
		{Category: types.CHUNK_CATEGORY_HOOK, MaxChunks: 1},
	}, cfg.Priorities)
}

func TestRetrievalDefaultsKeepExplicitValues(t *testing.T) {
	cfg := RetrievalConfig{
		TopK: 8,
		Priorities: []CategoryPriority{
			{Category: types.CHUNK_CATEGORY_EXAMPLE, MaxChunks: 2},
		},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 8, cfg.TopK)
	assert.Equal(t, 1, len(cfg.Priorities))
	assert.Equal(t, types.CHUNK_CATEGORY_EXAMPLE, cfg.Priorities[0].Category)
}
