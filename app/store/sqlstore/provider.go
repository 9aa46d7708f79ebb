package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/postpilot-ai/postpilot/app/store"
	"github.com/postpilot-ai/postpilot/pkg/register"
	"github.com/postpilot-ai/postpilot/pkg/sqlstore"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ErrIndexNotReady is returned when the vector index did not report ready
// within the bounded readiness poll. Fatal for the indexing job.
var ErrIndexNotReady = errors.New("vector index not ready after bounded retries")

const (
	indexReadyAttempts = 30
	indexReadyInterval = 2 * time.Second
)

var provider = &Provider{
	stores: &Stores{},
}

func GetProvider() *Provider {
	return provider
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.KnowledgeChunkStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m, s...)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

func (p *Provider) KnowledgeChunkStore() store.KnowledgeChunkStore {
	return p.stores.KnowledgeChunkStore
}

// Install makes the schema exist: pgvector extension, chunk table and the
// cosine ANN index. Idempotent, providers provision asynchronously so index
// creation is followed by a bounded readiness poll.
func (p *Provider) Install(ctx context.Context) error {
	master := p.GetMaster()

	if _, err := master.ExecContext(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("failed to enable pgvector extension, %w", err)
	}

	table := types.TABLE_KNOWLEDGE_CHUNKS.Name()
	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id VARCHAR(128) PRIMARY KEY,
		content TEXT NOT NULL,
		source VARCHAR(64) NOT NULL,
		category VARCHAR(32) NOT NULL,
		subcategory VARCHAR(64) NOT NULL DEFAULT '',
		pillar VARCHAR(64) NOT NULL DEFAULT '',
		post_type VARCHAR(64) NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '[]',
		importance VARCHAR(16) NOT NULL DEFAULT 'medium',
		embedding vector(%d) NOT NULL,
		created_at BIGINT NOT NULL
	)`, table, embeddingDimension)
	if _, err := master.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create table %s, %w", table, err)
	}

	// Cosine over length-varying chunk and query text; embeddings are not
	// pre-normalized by the provider.
	indexName := fmt.Sprintf("idx_%s_embedding", table)
	createIndex := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s ON %s USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)",
		indexName, table)
	if _, err := master.ExecContext(ctx, createIndex); err != nil {
		return fmt.Errorf("failed to create vector index, %w", err)
	}

	return p.waitIndexReady(ctx, indexName)
}

func (p *Provider) waitIndexReady(ctx context.Context, indexName string) error {
	for i := 0; i < indexReadyAttempts; i++ {
		var ready bool
		err := p.GetMaster().GetContext(ctx, &ready,
			"SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = $1)", indexName)
		if err == nil && ready {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(indexReadyInterval)
	}
	return ErrIndexNotReady
}
