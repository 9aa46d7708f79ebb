package sqlstore

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"

	"github.com/postpilot-ai/postpilot/pkg/ai"
	"github.com/postpilot-ai/postpilot/pkg/register"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.KnowledgeChunkStore = NewKnowledgeChunkStore(provider)
	})
}

const (
	embeddingDimension = ai.EmbeddingDimension

	upsertBatchMax   = 100
	upsertBatchDelay = 100 * time.Millisecond
)

type KnowledgeChunkStore struct {
	CommonFields
	codec MetadataCodec
}

func NewKnowledgeChunkStore(provider SqlProviderAchieve) *KnowledgeChunkStore {
	repo := &KnowledgeChunkStore{codec: jsonCodec{}}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_KNOWLEDGE_CHUNKS)
	repo.SetAllColumns("id", "content", "source", "category", "subcategory", "pillar", "post_type", "keywords", "importance", "embedding", "created_at")
	return repo
}

// BatchCreate upserts embedded chunks in batches. Every chunk must already
// carry an embedding; a nil embedding is a precondition violation, not a
// recoverable state.
func (s *KnowledgeChunkStore) BatchCreate(ctx context.Context, chunks []types.KnowledgeChunk) error {
	for _, chunk := range chunks {
		if chunk.Embedding == nil {
			return fmt.Errorf("chunk %s has no embedding, refusing to index", chunk.ID)
		}
	}

	now := time.Now().Unix()
	for start := 0; start < len(chunks); start += upsertBatchMax {
		if start > 0 {
			time.Sleep(upsertBatchDelay)
		}

		end := start + upsertBatchMax
		if end > len(chunks) {
			end = len(chunks)
		}

		query := sq.Insert(s.GetTable()).
			Columns(s.GetAllColumns()...)
		for _, chunk := range chunks[start:end] {
			query = query.Values(chunk.ID, chunk.Content,
				string(chunk.Metadata.Source), string(chunk.Metadata.Category),
				chunk.Metadata.Subcategory, chunk.Metadata.Pillar, chunk.Metadata.PostType,
				s.codec.FlattenKeywords(chunk.Metadata.Keywords), string(chunk.Metadata.Importance),
				*chunk.Embedding, now)
		}
		query = query.Suffix(`ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			source = EXCLUDED.source,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			pillar = EXCLUDED.pillar,
			post_type = EXCLUDED.post_type,
			keywords = EXCLUDED.keywords,
			importance = EXCLUDED.importance,
			embedding = EXCLUDED.embedding`)

		queryString, args, err := query.ToSql()
		if err != nil {
			return ErrorSqlBuild(err)
		}

		if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
			return err
		}
	}
	return nil
}

type chunkQueryRow struct {
	types.KnowledgeChunkModel
	Score float32 `db:"score"`
}

// Query returns at most topK chunks ordered by descending cosine similarity.
// An empty corpus returns an empty slice, not an error.
func (s *KnowledgeChunkStore) Query(ctx context.Context, vector pgvector.Vector, topK uint64, opts types.GetChunksOptions) ([]types.RAGSearchResult, error) {
	// pgvector: <=> is cosine distance, similarity = 1 - distance.
	scoreColumn, vectorArgs, _ := sq.Expr("1 - (embedding <=> ?) as score", vector).ToSql()
	query := sq.Select("id", "content", "source", "category", "subcategory", "pillar", "post_type", "keywords", "importance", "created_at", scoreColumn).
		From(s.GetTable()).
		OrderBy("score DESC").
		Limit(topK)

	if opts.Category != "" {
		query = query.Where(sq.Eq{"category": string(opts.Category)})
	}
	if opts.PostType != "" {
		query = query.Where(sq.Eq{"post_type": opts.PostType})
	}
	if opts.Pillar != "" {
		query = query.Where(sq.Eq{"pillar": opts.Pillar})
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	args = append(vectorArgs, args...)

	var rows []chunkQueryRow
	if err = s.GetReplica(ctx).Select(&rows, queryString, args...); err != nil {
		return nil, err
	}

	results := make([]types.RAGSearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, types.RAGSearchResult{
			ID:       row.ID,
			Score:    row.Score,
			Content:  row.Content,
			Metadata: modelToMetadata(row.KnowledgeChunkModel, s.codec),
		})
	}
	return results, nil
}

// DeleteAll wipes the corpus. Reindexing is always delete-all plus rebuild.
func (s *KnowledgeChunkStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *KnowledgeChunkStore) Total(ctx context.Context) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}

type categoryCountRow struct {
	Category string `db:"category"`
	Total    int64  `db:"total"`
}

func (s *KnowledgeChunkStore) CountByCategory(ctx context.Context) (map[string]int64, error) {
	query := sq.Select("category", "COUNT(*) as total").
		From(s.GetTable()).
		GroupBy("category")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var rows []categoryCountRow
	if err = s.GetReplica(ctx).Select(&rows, queryString, args...); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}
