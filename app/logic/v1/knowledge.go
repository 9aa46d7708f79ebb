package v1

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pgvector/pgvector-go"
	"github.com/samber/lo"

	"github.com/postpilot-ai/postpilot/app/core"
	"github.com/postpilot-ai/postpilot/pkg/errors"
	"github.com/postpilot-ai/postpilot/pkg/i18n"
	"github.com/postpilot-ai/postpilot/pkg/knowledge"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

// KnowledgeLogic drives the offline corpus lifecycle. Reindex is destructive
// and rebuilds the whole table; there is no incremental path.
type KnowledgeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewKnowledgeLogic(ctx context.Context, core *core.Core) *KnowledgeLogic {
	return &KnowledgeLogic{
		ctx:  ctx,
		core: core,
	}
}

type KnowledgeStats struct {
	TotalChunks int64            `json:"total_chunks"`
	ByCategory  map[string]int64 `json:"by_category,omitempty"`
}

type ReindexResult struct {
	Processed int    `json:"processed"`
	Indexed   int64  `json:"indexed"`
	Model     string `json:"model"`
}

// Reindex parses the source documents, embeds every chunk, wipes the store
// and writes the fresh corpus. Any stage failing aborts the run before the
// destructive delete wherever possible.
func (l *KnowledgeLogic) Reindex() (*ReindexResult, error) {
	cfg := l.core.Cfg().Knowledge

	chunks, err := knowledge.NewProcessor(cfg.Dir, cfg.Strict).ProcessAll()
	if err != nil {
		return nil, errors.New("KnowledgeLogic.Reindex.ProcessAll", i18n.ERROR_INTERNAL, err)
	}
	if len(chunks) == 0 {
		return nil, errors.New("KnowledgeLogic.Reindex.Empty", i18n.ERROR_INTERNAL, knowledge.ErrSourceMissing)
	}

	contents := lo.Map(chunks, func(c types.KnowledgeChunk, _ int) string {
		return c.Content
	})

	result, err := l.core.Srv().AI().EmbeddingForDocument(l.ctx, contents)
	if err != nil {
		return nil, errors.New("KnowledgeLogic.Reindex.EmbeddingForDocument", i18n.ERROR_INTERNAL, err)
	}
	if len(result.Data) != len(chunks) {
		return nil, errors.New("KnowledgeLogic.Reindex.EmbeddingCount", i18n.ERROR_INTERNAL,
			fmt.Errorf("embedding count %d does not match chunk count %d", len(result.Data), len(chunks)))
	}

	for i := range chunks {
		vec := pgvector.NewVector(result.Data[i])
		chunks[i].Embedding = &vec
	}

	store := l.core.Store().KnowledgeChunkStore()
	if err := store.DeleteAll(l.ctx); err != nil {
		return nil, errors.New("KnowledgeLogic.Reindex.DeleteAll", i18n.ERROR_INTERNAL, err)
	}
	if err := store.BatchCreate(l.ctx, chunks); err != nil {
		return nil, errors.New("KnowledgeLogic.Reindex.BatchCreate", i18n.ERROR_INTERNAL, err)
	}

	total, err := store.Total(l.ctx)
	if err != nil {
		return nil, errors.New("KnowledgeLogic.Reindex.Total", i18n.ERROR_INTERNAL, err)
	}

	slog.Info("knowledge reindex finished",
		slog.Int("processed", len(chunks)), slog.Int64("indexed", total), slog.String("model", result.Model))

	return &ReindexResult{
		Processed: len(chunks),
		Indexed:   total,
		Model:     result.Model,
	}, nil
}

func (l *KnowledgeLogic) Stats() (*KnowledgeStats, error) {
	store := l.core.Store().KnowledgeChunkStore()

	total, err := store.Total(l.ctx)
	if err != nil {
		return nil, errors.New("KnowledgeLogic.Stats.Total", i18n.ERROR_INTERNAL, err)
	}

	byCategory, err := store.CountByCategory(l.ctx)
	if err != nil {
		return nil, errors.New("KnowledgeLogic.Stats.CountByCategory", i18n.ERROR_INTERNAL, err)
	}
	if len(byCategory) == 0 {
		byCategory = nil
	}

	return &KnowledgeStats{
		TotalChunks: total,
		ByCategory:  byCategory,
	}, nil
}
