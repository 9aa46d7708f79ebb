package knowledge

import (
	"github.com/postpilot-ai/postpilot/pkg/types"
)

// SectionSpec locates one named section inside a source document by its
// literal start heading and the heading of the next sibling section. An empty
// End means the section runs to the end of the document. Chunk ids derive
// from the start heading.
type SectionSpec struct {
	Start        string
	End          string
	Metadata     types.ChunkMetadata
	SplitNumbers bool // split into one chunk per numbered list item
}

// DocumentSpec describes one markdown knowledge source and the sections the
// processor expects to find in it.
type DocumentSpec struct {
	Source   types.ChunkSource
	Filename string
	Optional bool
	Sections []SectionSpec
}

// Heading matching is literal, including the markdown level markers. Renaming
// a heading in the source document silently drops the chunk unless strict
// mode is enabled.
var documentSpecs = []DocumentSpec{
	{
		Source:   types.CHUNK_SOURCE_PROFILE_CONTEXT,
		Filename: "profile-context.md",
		Optional: true,
		Sections: []SectionSpec{
			{
				Start: "## Who I Am",
				End:   "## Content Pillars",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_PROFILE_CONTEXT,
					Category:   types.CHUNK_CATEGORY_PROFILE,
					Importance: types.CHUNK_IMPORTANCE_CRITICAL,
				},
			},
			{
				Start: "## Content Pillars",
				End:   "## Technical Stack",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_PROFILE_CONTEXT,
					Category:   types.CHUNK_CATEGORY_PILLAR,
					Importance: types.CHUNK_IMPORTANCE_CRITICAL,
				},
			},
			{
				Start: "## Technical Stack",
				End:   "",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_PROFILE_CONTEXT,
					Category:   types.CHUNK_CATEGORY_TECHNICAL,
					Importance: types.CHUNK_IMPORTANCE_MEDIUM,
				},
			},
		},
	},
	{
		Source:   types.CHUNK_SOURCE_POST_GENERATION,
		Filename: "post-generation-knowledge.md",
		Sections: []SectionSpec{
			{
				Start: "## Value Bomb Thread Structure",
				End:   "## Contrarian Take Structure",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_POST_TYPE,
					PostType:   string(types.POST_TYPE_VALUE_BOMB_THREAD),
					Importance: types.CHUNK_IMPORTANCE_CRITICAL,
				},
			},
			{
				Start: "## Contrarian Take Structure",
				End:   "## Case Study Structure",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_POST_TYPE,
					PostType:   string(types.POST_TYPE_CONTRARIAN_TAKE),
					Importance: types.CHUNK_IMPORTANCE_CRITICAL,
				},
			},
			{
				Start: "## Case Study Structure",
				End:   "## Personal Story Structure",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_POST_TYPE,
					PostType:   string(types.POST_TYPE_CASE_STUDY),
					Importance: types.CHUNK_IMPORTANCE_CRITICAL,
				},
			},
			{
				Start: "## Personal Story Structure",
				End:   "## Quick Tip Structure",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_POST_TYPE,
					PostType:   string(types.POST_TYPE_PERSONAL_STORY),
					Importance: types.CHUNK_IMPORTANCE_HIGH,
				},
			},
			{
				Start: "## Quick Tip Structure",
				End:   "## Industry Insight Structure",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_POST_TYPE,
					PostType:   string(types.POST_TYPE_QUICK_TIP),
					Importance: types.CHUNK_IMPORTANCE_HIGH,
				},
			},
			{
				Start: "## Industry Insight Structure",
				End:   "## Engagement Question Structure",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_POST_TYPE,
					PostType:   string(types.POST_TYPE_INDUSTRY_INSIGHT),
					Importance: types.CHUNK_IMPORTANCE_HIGH,
				},
			},
			{
				Start: "## Engagement Question Structure",
				End:   "## Authentic Voice Patterns",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_POST_TYPE,
					PostType:   string(types.POST_TYPE_ENGAGEMENT_QUESTION),
					Importance: types.CHUNK_IMPORTANCE_MEDIUM,
				},
			},
			{
				Start: "## Authentic Voice Patterns",
				End:   "## Hook Formulas",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_STYLE,
					Importance: types.CHUNK_IMPORTANCE_CRITICAL,
				},
			},
			{
				Start: "## Hook Formulas",
				End:   "## Client Results",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_POST_GENERATION,
					Category:   types.CHUNK_CATEGORY_HOOK,
					Importance: types.CHUNK_IMPORTANCE_HIGH,
				},
			},
			{
				Start: "## Client Results",
				End:   "",
				Metadata: types.ChunkMetadata{
					Source:      types.CHUNK_SOURCE_POST_GENERATION,
					Category:    types.CHUNK_CATEGORY_EXAMPLE,
					Subcategory: "client-result",
					Importance:  types.CHUNK_IMPORTANCE_MEDIUM,
				},
				SplitNumbers: true,
			},
		},
	},
	{
		Source:   types.CHUNK_SOURCE_DESIRE_FRAMEWORK,
		Filename: "desire-framework.md",
		Sections: []SectionSpec{
			{
				Start: "## The Desire Framework",
				End:   "## Desire Triggers",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_DESIRE_FRAMEWORK,
					Category:   types.CHUNK_CATEGORY_FRAMEWORK,
					Importance: types.CHUNK_IMPORTANCE_CRITICAL,
				},
			},
			{
				Start: "## Desire Triggers",
				End:   "## Applying Desire To Posts",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_DESIRE_FRAMEWORK,
					Category:   types.CHUNK_CATEGORY_FRAMEWORK,
					Importance: types.CHUNK_IMPORTANCE_HIGH,
				},
			},
			{
				Start: "## Applying Desire To Posts",
				End:   "",
				Metadata: types.ChunkMetadata{
					Source:     types.CHUNK_SOURCE_DESIRE_FRAMEWORK,
					Category:   types.CHUNK_CATEGORY_FRAMEWORK,
					Importance: types.CHUNK_IMPORTANCE_MEDIUM,
				},
			},
		},
	},
}

// Keyword vocabularies. Membership testing is best effort, retrieval works
// without keywords.
var (
	technicalTerms = []string{
		"ai", "automation", "llm", "rag", "agent", "chatbot", "workflow",
		"api", "integration", "embedding", "no-code", "saas",
	}
	businessTerms = []string{
		"revenue", "clients", "leads", "growth", "sales", "pricing",
		"retention", "conversion", "funnel", "launch", "mrr",
	}
	verticalTerms = []string{
		"agency", "ecommerce", "real estate", "coaching", "local business",
		"b2b", "startup", "creator",
	}
)
