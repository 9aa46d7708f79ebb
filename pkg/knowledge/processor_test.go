package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

const postGenerationDoc = `# Post Generation Knowledge

## Value Bomb Thread Structure
Tweet 1 hooks with a concrete promise. Tweets 2-7 each deliver one self-contained automation lesson. The last tweet recaps and invites a follow.

## Contrarian Take Structure
Name the popular belief, say it is wrong, argue from client work.

## Case Study Structure
Situation, build, numbers. Close with the transferable lesson.

## Personal Story Structure
Start inside the moment. One turning point, one lesson.

## Quick Tip Structure
One actionable workflow tip with exact steps and the payoff.

## Industry Insight Structure
Lead with the data point, explain the driver, project the impact.

## Engagement Question Structure
Short setup from experience, then one specific question.

## Authentic Voice Patterns
First person, short sentences, concrete numbers. No hype words, no emojis, teach from real client work.

## Hook Formulas
Open with a number, a contrarian claim, or a question the reader already asks themselves.

## Client Results
1. Saved a real estate agency 300 hours a year by automating their Monday reporting workflow.
2. Cut a coaching business's lead response time from 4 hours to 90 seconds with one chatbot.
3. Too short.
4. Built an ecommerce returns agent that handles 80% of tickets without a human touching them.
`

const desireFrameworkDoc = `# Desire Framework

## The Desire Framework
Every post sells a transformation. Name the current pain, show the after state, let the mechanism stay concrete.

## Desire Triggers
Time back, money earned, status gained, risk removed. Pick exactly one per post.

## Applying Desire To Posts
Map the trigger to the hook, keep the proof in the body, land the after state in the close.
`

func writeKnowledgeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "post-generation-knowledge.md"), []byte(postGenerationDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "desire-framework.md"), []byte(desireFrameworkDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestProcessAll(t *testing.T) {
	dir := writeKnowledgeDir(t)

	chunks, err := NewProcessor(dir, false).ProcessAll()
	if err != nil {
		t.Fatal(err)
	}

	// 7 structures + voice + hooks + 3 client results (one item is below the
	// length floor) + 3 framework sections.
	assert.Equal(t, 15, len(chunks))

	seen := make(map[string]bool)
	for _, chunk := range chunks {
		assert.False(t, seen[chunk.ID], "duplicate chunk id %s", chunk.ID)
		seen[chunk.ID] = true

		assert.True(t, chunk.Metadata.Category.Valid(), "chunk %s has invalid category %s", chunk.ID, chunk.Metadata.Category)
		assert.NotEmpty(t, chunk.Content)
		assert.Nil(t, chunk.Embedding)
	}

	// Chunk ids derive from the section headings.
	assert.True(t, seen["post-generation-knowledge-hook-formulas"])
	assert.True(t, seen["post-generation-knowledge-authentic-voice-patterns"])
	assert.True(t, seen["post-generation-knowledge-client-results-1"])
	assert.True(t, seen["desire-framework-the-desire-framework"])

	// Optional profile document is absent, so no profile chunks.
	for _, chunk := range chunks {
		assert.NotEqual(t, types.CHUNK_SOURCE_PROFILE_CONTEXT, chunk.Metadata.Source)
	}
}

func TestProcessAllDeterministic(t *testing.T) {
	dir := writeKnowledgeDir(t)
	p := NewProcessor(dir, false)

	first, err := p.ProcessAll()
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.ProcessAll()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, first, second)
}

func TestProcessAllMissingRequiredDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "desire-framework.md"), []byte(desireFrameworkDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewProcessor(dir, false).ProcessAll()
	assert.True(t, errors.Is(err, ErrSourceMissing))
}

func TestExtractSection(t *testing.T) {
	doc := "intro\n## A\ncontent a\n## B\ncontent b"

	tests := []struct {
		name  string
		start string
		end   string
		want  string
		ok    bool
	}{
		{
			name:  "bounded section",
			start: "## A",
			end:   "## B",
			want:  "## A\ncontent a",
			ok:    true,
		},
		{
			name:  "missing end takes remainder",
			start: "## B",
			end:   "## C",
			want:  "## B\ncontent b",
			ok:    true,
		},
		{
			name:  "empty end takes remainder",
			start: "## B",
			end:   "",
			want:  "## B\ncontent b",
			ok:    true,
		},
		{
			name:  "missing start",
			start: "## Z",
			end:   "## B",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSection(doc, tt.start, tt.end)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSplitNumberedItems(t *testing.T) {
	text := "## Client Results\n1. " + strings.Repeat("a", 60) + "\n2. short\n3. " + strings.Repeat("b", 60)

	items := SplitNumberedItems(text, minFragmentLength)
	assert.Equal(t, 2, len(items))
	assert.True(t, strings.HasPrefix(items[0], "1. "))
	assert.True(t, strings.HasPrefix(items[1], "3. "))

	// No numbered delimiters: the whole text is one fragment when long enough.
	whole := SplitNumberedItems(strings.Repeat("c", 80), minFragmentLength)
	assert.Equal(t, 1, len(whole))

	assert.Nil(t, SplitNumberedItems("tiny", minFragmentLength))
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("We built an AI automation workflow for a real estate agency to grow revenue.")

	assert.Contains(t, keywords, "automation")
	assert.Contains(t, keywords, "workflow")
	assert.Contains(t, keywords, "real estate")
	assert.Contains(t, keywords, "revenue")
	assert.NotContains(t, keywords, "chatbot")

	assert.Empty(t, ExtractKeywords("nothing relevant here"))
}
