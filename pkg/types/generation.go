package types

// PostType is one of the seven content archetypes the product knows how to
// structure. Values are the wire representation used by the extension and
// the dashboard.
type PostType string

const (
	POST_TYPE_VALUE_BOMB_THREAD   PostType = "value-bomb-thread"
	POST_TYPE_CONTRARIAN_TAKE     PostType = "contrarian-take"
	POST_TYPE_CASE_STUDY          PostType = "case-study"
	POST_TYPE_PERSONAL_STORY      PostType = "personal-story"
	POST_TYPE_QUICK_TIP           PostType = "quick-tip"
	POST_TYPE_INDUSTRY_INSIGHT    PostType = "industry-insight"
	POST_TYPE_ENGAGEMENT_QUESTION PostType = "engagement-question"
)

var AllPostTypes = []PostType{
	POST_TYPE_VALUE_BOMB_THREAD,
	POST_TYPE_CONTRARIAN_TAKE,
	POST_TYPE_CASE_STUDY,
	POST_TYPE_PERSONAL_STORY,
	POST_TYPE_QUICK_TIP,
	POST_TYPE_INDUSTRY_INSIGHT,
	POST_TYPE_ENGAGEMENT_QUESTION,
}

func (p PostType) Valid() bool {
	for _, v := range AllPostTypes {
		if v == p {
			return true
		}
	}
	return false
}

// DisplayName converts the wire value to the human form used inside prompts,
// e.g. "value-bomb-thread" -> "Value Bomb Thread".
func (p PostType) DisplayName() string {
	return postTypeDisplayNames[p]
}

var postTypeDisplayNames = map[PostType]string{
	POST_TYPE_VALUE_BOMB_THREAD:   "Value Bomb Thread",
	POST_TYPE_CONTRARIAN_TAKE:     "Contrarian Take",
	POST_TYPE_CASE_STUDY:          "Case Study",
	POST_TYPE_PERSONAL_STORY:      "Personal Story",
	POST_TYPE_QUICK_TIP:           "Quick Tip",
	POST_TYPE_INDUSTRY_INSIGHT:    "Industry Insight",
	POST_TYPE_ENGAGEMENT_QUESTION: "Engagement Question",
}

type Platform string

const (
	PLATFORM_X        Platform = "X"
	PLATFORM_LINKEDIN Platform = "LinkedIn"
)

func (p Platform) Valid() bool {
	return p == PLATFORM_X || p == PLATFORM_LINKEDIN
}

// GenerationContext is optional caller-supplied subject matter.
type GenerationContext struct {
	Topic            string `json:"topic,omitempty"`
	TrendingTopic    string `json:"trending_topic,omitempty"`
	TechnicalConcept string `json:"technical_concept,omitempty"`
}

func (c GenerationContext) Empty() bool {
	return c.Topic == "" && c.TrendingTopic == "" && c.TechnicalConcept == ""
}

// PostGenerationRequest is the request shape exposed at the HTTP boundary.
// One instance per generation call, discarded afterwards.
type PostGenerationRequest struct {
	PostType PostType          `json:"post_type"`
	Platform Platform          `json:"platform"`
	Context  GenerationContext `json:"context,omitempty"`
}

// GenerationPrompts is the output of the prepare stage: everything the LLM
// call needs, with no LLM call made yet.
type GenerationPrompts struct {
	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`
	RAGContext   string `json:"rag_context"`
}

type HookType string

const (
	HOOK_TYPE_QUESTION       HookType = "question"
	HOOK_TYPE_STATISTIC      HookType = "statistic"
	HOOK_TYPE_BOLD_STATEMENT HookType = "bold-statement"
	HOOK_TYPE_STORY          HookType = "story"
)

// PostMetadata is the heuristic classification attached to generated content.
type PostMetadata struct {
	PostType            PostType `json:"post_type"`
	Pillar              string   `json:"pillar"`
	Platform            Platform `json:"platform"`
	CharacterCount      int      `json:"character_count"`
	TweetCount          int      `json:"tweet_count,omitempty"`
	EstimatedEngagement string   `json:"estimated_engagement"`
	HookType            HookType `json:"hook_type"`
}

// ValidationResult collects advisory content-quality issues. Issues never
// block delivery of the generated content.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Issues  []string `json:"issues"`
}

// GeneratedPost is the response shape of a full generation call.
type GeneratedPost struct {
	Content          string       `json:"content"`
	Metadata         PostMetadata `json:"metadata"`
	ValidationIssues []string     `json:"validation_issues,omitempty"`
}
