package v1

import (
	"strings"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

// pillarKeywords scores which brand pillar the content leans toward.
var pillarKeywords = map[string][]string{
	"ai-automation":         {"automation", "automated", "workflow", "agent", "bot", "ai "},
	"business-growth":       {"revenue", "clients", "leads", "sales", "growth", "mrr"},
	"build-in-public":       {"built", "launched", "shipped", "learned", "failed", "experiment"},
	"technical-credibility": {"api", "code", "architecture", "stack", "integration", "deploy"},
}

const defaultPillar = "ai-automation"

// ExtractMetadata classifies generated content. Pure function of the text,
// no external calls.
func ExtractMetadata(content string, postType types.PostType, platform types.Platform) types.PostMetadata {
	meta := types.PostMetadata{
		PostType:       postType,
		Platform:       platform,
		Pillar:         classifyPillar(content),
		CharacterCount: len([]rune(content)),
		HookType:       classifyHook(content),
	}

	sections := splitSections(content)
	if postType == types.POST_TYPE_VALUE_BOMB_THREAD {
		meta.TweetCount = len(sections)
	}

	meta.EstimatedEngagement = estimateEngagement(postType, meta.HookType)
	return meta
}

func classifyPillar(content string) string {
	lowered := strings.ToLower(content)

	best, bestScore := defaultPillar, 0
	// Stable iteration so identical content always classifies identically.
	for _, pillar := range []string{"ai-automation", "business-growth", "build-in-public", "technical-credibility"} {
		score := 0
		for _, kw := range pillarKeywords[pillar] {
			score += strings.Count(lowered, kw)
		}
		if score > bestScore {
			best, bestScore = pillar, score
		}
	}
	return best
}

// classifyHook reads the shape of the first line only.
func classifyHook(content string) types.HookType {
	firstLine := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)

	switch {
	case strings.HasSuffix(firstLine, "?"):
		return types.HOOK_TYPE_QUESTION
	case metricPattern.MatchString(firstLine):
		return types.HOOK_TYPE_STATISTIC
	case strings.HasPrefix(firstLine, "I ") || strings.HasPrefix(firstLine, "Last ") || strings.HasPrefix(firstLine, "When "):
		return types.HOOK_TYPE_STORY
	default:
		return types.HOOK_TYPE_BOLD_STATEMENT
	}
}

func estimateEngagement(postType types.PostType, hook types.HookType) string {
	if postType == types.POST_TYPE_VALUE_BOMB_THREAD || postType == types.POST_TYPE_CONTRARIAN_TAKE {
		return "high"
	}
	if hook == types.HOOK_TYPE_QUESTION || hook == types.HOOK_TYPE_STATISTIC {
		return "high"
	}
	return "medium"
}
