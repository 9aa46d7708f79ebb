package ai

import (
	"strings"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

// BuildPrompt composes the final system and user prompts from the static
// persona scaffold, the retrieved context block and the request parameters.
// Pure and deterministic: identical inputs always produce identical prompts.
func BuildPrompt(postType types.PostType, platform types.Platform, ragContext string, genCtx types.GenerationContext) types.GenerationPrompts {
	if ragContext == "" {
		ragContext = PROMPT_CONTEXT_FALLBACK
	}

	// Retrieved content is interpolated last and never re-scanned, so chunk
	// text containing ${...} tokens passes through verbatim.
	systemPrompt := strings.ReplaceAll(GENERATE_POST_SYSTEM_TPL, PROMPT_VAR_PLATFORM, string(platform))
	systemPrompt = strings.ReplaceAll(systemPrompt, PROMPT_VAR_RAG_CONTEXT, ragContext)

	var user strings.Builder
	user.WriteString(ReplaceVars(GENERATE_POST_USER_TPL, map[string]string{
		"${post_type}":      postType.DisplayName(),
		PROMPT_VAR_PLATFORM: string(platform),
	}))

	if genCtx.Topic != "" {
		user.WriteString("\n\nTopic: " + genCtx.Topic)
	}
	if genCtx.TrendingTopic != "" {
		user.WriteString("\n\nTie it to this trending topic: " + genCtx.TrendingTopic)
	}
	if genCtx.TechnicalConcept != "" {
		user.WriteString("\n\nExplain or apply this technical concept: " + genCtx.TechnicalConcept)
	}

	if guidance := PostTypeGuidance(postType); guidance != "" {
		user.WriteString("\n\n" + guidance)
	}

	if genCtx.Empty() {
		user.WriteString("\n\n" + PROMPT_CHOOSE_OWN_TOPIC)
	}

	return types.GenerationPrompts{
		SystemPrompt: systemPrompt,
		UserPrompt:   user.String(),
		RAGContext:   ragContext,
	}
}
