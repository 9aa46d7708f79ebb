package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

func TestJSONCodecKeywords(t *testing.T) {
	codec := jsonCodec{}

	raw := codec.FlattenKeywords([]string{"automation", "real estate"})
	assert.Equal(t, `["automation","real estate"]`, raw)
	assert.Equal(t, []string{"automation", "real estate"}, codec.ExpandKeywords(raw))

	assert.Equal(t, "[]", codec.FlattenKeywords(nil))
	assert.Empty(t, codec.ExpandKeywords("[]"))
	assert.Nil(t, codec.ExpandKeywords(""))
	assert.Nil(t, codec.ExpandKeywords("not json"))
}

func TestModelToMetadata(t *testing.T) {
	model := types.KnowledgeChunkModel{
		ID:          "post-generation-knowledge-hook-formulas",
		Source:      string(types.CHUNK_SOURCE_POST_GENERATION),
		Category:    string(types.CHUNK_CATEGORY_HOOK),
		Subcategory: "formula",
		PostType:    string(types.POST_TYPE_QUICK_TIP),
		Keywords:    `["automation"]`,
		Importance:  string(types.CHUNK_IMPORTANCE_HIGH),
	}

	meta := modelToMetadata(model, jsonCodec{})

	assert.Equal(t, types.CHUNK_SOURCE_POST_GENERATION, meta.Source)
	assert.Equal(t, types.CHUNK_CATEGORY_HOOK, meta.Category)
	assert.Equal(t, "formula", meta.Subcategory)
	assert.Equal(t, string(types.POST_TYPE_QUICK_TIP), meta.PostType)
	assert.Equal(t, []string{"automation"}, meta.Keywords)
	assert.Equal(t, types.CHUNK_IMPORTANCE_HIGH, meta.Importance)
}
