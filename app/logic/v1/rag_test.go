package v1_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postpilot-ai/postpilot/app/core"
	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/pkg/ai"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

func TestBuildQuery(t *testing.T) {
	query := v1.BuildQuery(types.POST_TYPE_CASE_STUDY, types.GenerationContext{
		Topic:         "automating invoice chasing",
		TrendingTopic: "agents",
	})

	assert.Contains(t, query, "Case Study")
	assert.Contains(t, query, "automating invoice chasing")
	assert.Contains(t, query, "agents")
	assert.Contains(t, query, "Hook formulas")

	// Minimal query without caller context.
	bare := v1.BuildQuery(types.POST_TYPE_QUICK_TIP, types.GenerationContext{})
	assert.Contains(t, bare, "Quick Tip")
	assert.NotContains(t, bare, "about")
}

func retrievalConfig() core.RetrievalConfig {
	cfg := core.RetrievalConfig{}
	cfg.ApplyDefaults()
	return cfg
}

func hit(id string, category types.ChunkCategory, content string) types.RAGSearchResult {
	return types.RAGSearchResult{
		ID:      id,
		Content: content,
		Metadata: types.ChunkMetadata{
			Category: category,
		},
	}
}

func TestCompressContextEmpty(t *testing.T) {
	out := v1.CompressContext(retrievalConfig(), "gpt-4o-mini", nil)
	assert.Equal(t, ai.PROMPT_CONTEXT_FALLBACK, out)
}

func TestCompressContextPriorityOrder(t *testing.T) {
	refs := []types.RAGSearchResult{
		hit("hook-formulas", types.CHUNK_CATEGORY_HOOK, "hook guidance"),
		hit("voice", types.CHUNK_CATEGORY_STYLE, "voice guidance"),
		hit("structure", types.CHUNK_CATEGORY_POST_TYPE, "structure guidance"),
	}

	out := v1.CompressContext(retrievalConfig(), "gpt-4o-mini", refs)

	// Default priority table: postType, style, hook. Retrieval order does not
	// leak into the output.
	structureIdx := strings.Index(out, "structure guidance")
	voiceIdx := strings.Index(out, "voice guidance")
	hookIdx := strings.Index(out, "hook guidance")
	assert.GreaterOrEqual(t, structureIdx, 0)
	assert.Less(t, structureIdx, voiceIdx)
	assert.Less(t, voiceIdx, hookIdx)

	assert.True(t, strings.HasSuffix(out, ai.PROMPT_DIVERSITY_INSTRUCTION))
}

func TestCompressContextPerCategoryCap(t *testing.T) {
	refs := []types.RAGSearchResult{
		hit("s1", types.CHUNK_CATEGORY_STYLE, "best style chunk"),
		hit("s2", types.CHUNK_CATEGORY_STYLE, "second style chunk"),
		hit("s3", types.CHUNK_CATEGORY_STYLE, "third style chunk"),
	}

	out := v1.CompressContext(retrievalConfig(), "gpt-4o-mini", refs)

	// Results arrive score-descending, so the cap keeps the best chunk.
	assert.Contains(t, out, "best style chunk")
	assert.NotContains(t, out, "second style chunk")
	assert.NotContains(t, out, "third style chunk")
}

func TestCompressContextKeepsBestScoredPerCategory(t *testing.T) {
	scored := func(id string, category types.ChunkCategory, content string, score float32) types.RAGSearchResult {
		r := hit(id, category, content)
		r.Score = score
		return r
	}

	// Store queries return results score-descending; compression keeps the
	// first, i.e. highest-scoring, chunk per capped category.
	refs := []types.RAGSearchResult{
		scored("s1", types.CHUNK_CATEGORY_STYLE, "top style chunk", 0.91),
		scored("h1", types.CHUNK_CATEGORY_HOOK, "top hook chunk", 0.88),
		scored("s2", types.CHUNK_CATEGORY_STYLE, "runner-up style chunk", 0.74),
		scored("h2", types.CHUNK_CATEGORY_HOOK, "runner-up hook chunk", 0.62),
	}

	out := v1.CompressContext(retrievalConfig(), "gpt-4o-mini", refs)

	assert.Contains(t, out, "top style chunk")
	assert.Contains(t, out, "top hook chunk")
	assert.NotContains(t, out, "runner-up style chunk")
	assert.NotContains(t, out, "runner-up hook chunk")
}

func TestCompressContextDropsUnlistedCategories(t *testing.T) {
	refs := []types.RAGSearchResult{
		hit("profile", types.CHUNK_CATEGORY_PROFILE, "profile chunk"),
	}

	out := v1.CompressContext(retrievalConfig(), "gpt-4o-mini", refs)
	assert.Equal(t, ai.PROMPT_CONTEXT_FALLBACK, out)
}

func TestCompressContextTokenBudget(t *testing.T) {
	cfg := retrievalConfig()
	cfg.MaxContextTokens = 1

	refs := []types.RAGSearchResult{
		hit("structure", types.CHUNK_CATEGORY_POST_TYPE, strings.Repeat("structure guidance ", 50)),
	}

	out := v1.CompressContext(cfg, "gpt-4o-mini", refs)
	assert.Equal(t, ai.PROMPT_CONTEXT_FALLBACK, out)
}

func TestCompressContextCustomDiversityInstruction(t *testing.T) {
	cfg := retrievalConfig()
	cfg.DiversityInstruction = "rotate pillars"

	refs := []types.RAGSearchResult{
		hit("structure", types.CHUNK_CATEGORY_POST_TYPE, "structure guidance"),
	}

	out := v1.CompressContext(cfg, "gpt-4o-mini", refs)
	assert.True(t, strings.HasSuffix(out, "rotate pillars"))
}
