package types

import (
	"github.com/pgvector/pgvector-go"
)

// ChunkCategory governs retrieval grouping and prompt placement priority.
type ChunkCategory string

const (
	CHUNK_CATEGORY_PILLAR    ChunkCategory = "pillar"
	CHUNK_CATEGORY_POST_TYPE ChunkCategory = "postType"
	CHUNK_CATEGORY_STYLE     ChunkCategory = "style"
	CHUNK_CATEGORY_FRAMEWORK ChunkCategory = "framework"
	CHUNK_CATEGORY_EXAMPLE   ChunkCategory = "example"
	CHUNK_CATEGORY_HOOK      ChunkCategory = "hook"
	CHUNK_CATEGORY_PROFILE   ChunkCategory = "profile"
	CHUNK_CATEGORY_TECHNICAL ChunkCategory = "technical"
)

func (c ChunkCategory) Valid() bool {
	switch c {
	case CHUNK_CATEGORY_PILLAR, CHUNK_CATEGORY_POST_TYPE, CHUNK_CATEGORY_STYLE,
		CHUNK_CATEGORY_FRAMEWORK, CHUNK_CATEGORY_EXAMPLE, CHUNK_CATEGORY_HOOK,
		CHUNK_CATEGORY_PROFILE, CHUNK_CATEGORY_TECHNICAL:
		return true
	}
	return false
}

// ChunkSource identifies the markdown document a chunk was extracted from.
type ChunkSource string

const (
	CHUNK_SOURCE_PROFILE_CONTEXT  ChunkSource = "profile-context"
	CHUNK_SOURCE_POST_GENERATION  ChunkSource = "post-generation-knowledge"
	CHUNK_SOURCE_DESIRE_FRAMEWORK ChunkSource = "desire-framework"
)

type ChunkImportance string

const (
	CHUNK_IMPORTANCE_CRITICAL ChunkImportance = "critical"
	CHUNK_IMPORTANCE_HIGH     ChunkImportance = "high"
	CHUNK_IMPORTANCE_MEDIUM   ChunkImportance = "medium"
	CHUNK_IMPORTANCE_LOW      ChunkImportance = "low"
)

// ChunkMetadata carries the labels used for retrieval filtering and
// prompt section ordering.
type ChunkMetadata struct {
	Source      ChunkSource     `json:"source"`
	Category    ChunkCategory   `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Pillar      string          `json:"pillar,omitempty"`
	PostType    string          `json:"post_type,omitempty"`
	Keywords    []string        `json:"keywords,omitempty"`
	Importance  ChunkImportance `json:"importance"`
}

// KnowledgeChunk is one retrievable unit of the writing knowledge corpus.
// Embedding is nil on a freshly parsed chunk and is populated exactly once
// before the chunk is written to the vector store.
type KnowledgeChunk struct {
	ID        string           `json:"id"`
	Content   string           `json:"content"`
	Metadata  ChunkMetadata    `json:"metadata"`
	Embedding *pgvector.Vector `json:"-"`
}

// KnowledgeChunkModel 表的结构体
type KnowledgeChunkModel struct {
	ID          string          `json:"id" db:"id"`
	Content     string          `json:"content" db:"content"`
	Source      string          `json:"source" db:"source"`
	Category    string          `json:"category" db:"category"`
	Subcategory string          `json:"subcategory" db:"subcategory"`
	Pillar      string          `json:"pillar" db:"pillar"`
	PostType    string          `json:"post_type" db:"post_type"`
	Keywords    string          `json:"keywords" db:"keywords"` // serialized via metadata codec
	Importance  string          `json:"importance" db:"importance"`
	Embedding   pgvector.Vector `json:"-" db:"embedding"`
	CreatedAt   int64           `json:"created_at" db:"created_at"`
}

// RAGSearchResult is a single retrieval hit. Ephemeral, never persisted.
type RAGSearchResult struct {
	ID       string        `json:"id"`
	Score    float32       `json:"score"`
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}

// GetChunksOptions carries optional exact-match filters for similarity queries.
type GetChunksOptions struct {
	Category ChunkCategory
	PostType string
	Pillar   string
}
