package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

func TestBuildPromptDeterministic(t *testing.T) {
	req := types.GenerationContext{Topic: "automating client onboarding"}
	ragContext := "## Hook Formulas\nOpen with a number."

	first := BuildPrompt(types.POST_TYPE_VALUE_BOMB_THREAD, types.PLATFORM_X, ragContext, req)
	second := BuildPrompt(types.POST_TYPE_VALUE_BOMB_THREAD, types.PLATFORM_X, ragContext, req)

	assert.Equal(t, first, second)
}

func TestBuildPromptVarLikeChunkContent(t *testing.T) {
	// Chunk text may legitimately contain ${...} tokens; they must survive
	// interpolation verbatim, on every call.
	ragContext := "chunk mentioning the literal ${platform} token"

	first := BuildPrompt(types.POST_TYPE_QUICK_TIP, types.PLATFORM_X, ragContext, types.GenerationContext{})
	assert.Contains(t, first.SystemPrompt, ragContext)

	for i := 0; i < 64; i++ {
		again := BuildPrompt(types.POST_TYPE_QUICK_TIP, types.PLATFORM_X, ragContext, types.GenerationContext{})
		assert.Equal(t, first, again)
	}
}

func TestBuildPromptSystem(t *testing.T) {
	ragContext := "## Authentic Voice Patterns\nShort sentences, concrete numbers."

	prompts := BuildPrompt(types.POST_TYPE_QUICK_TIP, types.PLATFORM_LINKEDIN, ragContext, types.GenerationContext{})

	assert.Contains(t, prompts.SystemPrompt, ragContext)
	assert.Contains(t, prompts.SystemPrompt, "LinkedIn")
	assert.False(t, strings.Contains(prompts.SystemPrompt, PROMPT_VAR_RAG_CONTEXT))
	assert.False(t, strings.Contains(prompts.SystemPrompt, PROMPT_VAR_PLATFORM))
}

func TestBuildPromptUser(t *testing.T) {
	genCtx := types.GenerationContext{
		Topic:            "lead scoring",
		TrendingTopic:    "agents replacing SDRs",
		TechnicalConcept: "vector search",
	}

	prompts := BuildPrompt(types.POST_TYPE_VALUE_BOMB_THREAD, types.PLATFORM_X, "ctx", genCtx)

	assert.Contains(t, prompts.UserPrompt, "Value Bomb Thread")
	assert.Contains(t, prompts.UserPrompt, "Topic: lead scoring")
	assert.Contains(t, prompts.UserPrompt, "agents replacing SDRs")
	assert.Contains(t, prompts.UserPrompt, "vector search")
	assert.Contains(t, prompts.UserPrompt, PostTypeGuidance(types.POST_TYPE_VALUE_BOMB_THREAD))
	assert.NotContains(t, prompts.UserPrompt, PROMPT_CHOOSE_OWN_TOPIC)

	// Context lines keep a fixed order: topic, trending, technical.
	topicIdx := strings.Index(prompts.UserPrompt, "Topic: lead scoring")
	trendingIdx := strings.Index(prompts.UserPrompt, "agents replacing SDRs")
	technicalIdx := strings.Index(prompts.UserPrompt, "vector search")
	assert.Less(t, topicIdx, trendingIdx)
	assert.Less(t, trendingIdx, technicalIdx)
}

func TestBuildPromptEmptyContext(t *testing.T) {
	prompts := BuildPrompt(types.POST_TYPE_CONTRARIAN_TAKE, types.PLATFORM_X, "ctx", types.GenerationContext{})

	assert.Contains(t, prompts.UserPrompt, PROMPT_CHOOSE_OWN_TOPIC)
}

func TestBuildPromptFallback(t *testing.T) {
	prompts := BuildPrompt(types.POST_TYPE_QUICK_TIP, types.PLATFORM_X, "", types.GenerationContext{})

	assert.Equal(t, PROMPT_CONTEXT_FALLBACK, prompts.RAGContext)
	assert.Contains(t, prompts.SystemPrompt, PROMPT_CONTEXT_FALLBACK)
}

func TestPostTypeGuidanceCoversAllTypes(t *testing.T) {
	for _, postType := range types.AllPostTypes {
		assert.NotEmpty(t, PostTypeGuidance(postType), "missing guidance for %s", postType)
	}
}

func TestReplaceVars(t *testing.T) {
	out := ReplaceVars("a ${x} b ${y}", map[string]string{"${x}": "1", "${y}": "2"})
	assert.Equal(t, "a 1 b 2", out)
}
