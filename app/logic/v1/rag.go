package v1

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pgvector/pgvector-go"

	"github.com/postpilot-ai/postpilot/app/core"
	"github.com/postpilot-ai/postpilot/pkg/ai"
	"github.com/postpilot-ai/postpilot/pkg/errors"
	"github.com/postpilot-ai/postpilot/pkg/i18n"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

// RAGLogic turns a generation request into a compact, prioritized knowledge
// block. Request-scoped, no state survives the call.
type RAGLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewRAGLogic(ctx context.Context, core *core.Core) *RAGLogic {
	return &RAGLogic{
		ctx:  ctx,
		core: core,
	}
}

// BuildQuery phrases the retrieval query as a request for style and structure
// guidance, not for subject matter. Retrieval tells the model HOW to write
// this kind of post; the subject stays with the model.
func BuildQuery(postType types.PostType, genCtx types.GenerationContext) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Style and structure guidance for writing a %s post", postType.DisplayName()))

	if genCtx.Topic != "" {
		b.WriteString(" about " + genCtx.Topic)
	}
	if genCtx.TrendingTopic != "" {
		b.WriteString(", tied to the trending topic " + genCtx.TrendingTopic)
	}
	if genCtx.TechnicalConcept != "" {
		b.WriteString(", explaining " + genCtx.TechnicalConcept)
	}

	b.WriteString(". Hook formulas, authentic voice patterns and structural templates.")
	return b.String()
}

// RetrieveContext embeds the query, fetches top-K similar chunks and
// compresses them into a token-bounded context block. Zero hits are expected
// and produce the fallback instruction; only infrastructure failures are
// errors.
func (l *RAGLogic) RetrieveContext(postType types.PostType, genCtx types.GenerationContext) (string, error) {
	timer := l.core.Metrics().RetrievalTimer()
	defer timer.ObserveDuration()

	query := BuildQuery(postType, genCtx)

	vector, err := l.core.Srv().AI().EmbeddingForQuery(l.ctx, []string{query})
	if err != nil || len(vector.Data) == 0 {
		return "", errors.New("RAGLogic.RetrieveContext.AI.EmbeddingForQuery", i18n.ERROR_INTERNAL, err)
	}

	topK := l.core.Cfg().Retrieval.TopK
	refs, err := l.core.Store().KnowledgeChunkStore().Query(l.ctx, pgvector.NewVector(vector.Data[0]), uint64(topK), types.GetChunksOptions{})
	if err != nil {
		return "", errors.New("RAGLogic.RetrieveContext.KnowledgeChunkStore.Query", i18n.ERROR_INTERNAL, err)
	}

	slog.Debug("rag retrieval", slog.String("query", query), slog.Int("hits", len(refs)))

	return l.CompressContext(refs), nil
}

func (l *RAGLogic) CompressContext(refs []types.RAGSearchResult) string {
	return CompressContext(l.core.Cfg().Retrieval, l.core.Cfg().AI.Model.ChatModel, refs)
}

// CompressContext keeps at most the configured number of chunks per
// high-value category, in the fixed priority order, then appends the static
// diversity instruction. Output length is bounded regardless of how many raw
// chunks matched.
func CompressContext(cfg core.RetrievalConfig, chatModel string, refs []types.RAGSearchResult) string {
	diversity := cfg.DiversityInstruction
	if diversity == "" {
		diversity = ai.PROMPT_DIVERSITY_INSTRUCTION
	}

	if len(refs) == 0 {
		return ai.PROMPT_CONTEXT_FALLBACK
	}

	// Group by category. Store results come back score-descending, so the
	// first chunk seen per category is its best representative.
	grouped := make(map[types.ChunkCategory][]types.RAGSearchResult)
	for _, ref := range refs {
		grouped[ref.Metadata.Category] = append(grouped[ref.Metadata.Category], ref)
	}

	var (
		blocks      []string
		totalTokens int
	)
	for _, priority := range cfg.Priorities {
		chunks := grouped[priority.Category]
		if len(chunks) > priority.MaxChunks {
			chunks = chunks[:priority.MaxChunks]
		}
		for _, chunk := range chunks {
			tokens, err := ai.NumTokens(chunk.Content, chatModel)
			if err != nil {
				// Token counting is a guardrail; fall back to a rough
				// character estimate rather than failing retrieval.
				tokens = len(chunk.Content) / 4
			}
			if totalTokens+tokens > cfg.MaxContextTokens {
				continue
			}
			totalTokens += tokens
			blocks = append(blocks, chunk.Content)
		}
	}

	if len(blocks) == 0 {
		return ai.PROMPT_CONTEXT_FALLBACK
	}

	blocks = append(blocks, diversity)
	return strings.Join(blocks, "\n\n")
}
