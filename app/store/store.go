package store

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

// KnowledgeChunkStore persists embedded chunks and answers top-K cosine
// similarity queries. The corpus is read-only outside the offline reindex
// job; reindexing always wipes and rebuilds, never diffs.
type KnowledgeChunkStore interface {
	BatchCreate(ctx context.Context, chunks []types.KnowledgeChunk) error
	Query(ctx context.Context, vector pgvector.Vector, topK uint64, opts types.GetChunksOptions) ([]types.RAGSearchResult, error)
	DeleteAll(ctx context.Context) error
	Total(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}
