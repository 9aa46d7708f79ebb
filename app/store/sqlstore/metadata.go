package sqlstore

import (
	"encoding/json"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

// MetadataCodec flattens chunk metadata into provider-compatible primitive
// columns and back. Kept behind an interface so a store with native array
// metadata filtering can swap the serialization without touching callers.
type MetadataCodec interface {
	FlattenKeywords(keywords []string) string
	ExpandKeywords(raw string) []string
}

// jsonCodec serializes keyword arrays to a single JSON string column.
type jsonCodec struct{}

func (jsonCodec) FlattenKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(keywords)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func (jsonCodec) ExpandKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return nil
	}
	return keywords
}

func modelToMetadata(m types.KnowledgeChunkModel, codec MetadataCodec) types.ChunkMetadata {
	return types.ChunkMetadata{
		Source:      types.ChunkSource(m.Source),
		Category:    types.ChunkCategory(m.Category),
		Subcategory: m.Subcategory,
		Pillar:      m.Pillar,
		PostType:    m.PostType,
		Keywords:    codec.ExpandKeywords(m.Keywords),
		Importance:  types.ChunkImportance(m.Importance),
	}
}
