package knowledge

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/postpilot-ai/postpilot/pkg/types"
	"github.com/postpilot-ai/postpilot/pkg/utils"
)

// ErrSourceMissing marks a required knowledge document that is absent on
// disk. Fatal for the offline processing job.
var ErrSourceMissing = errors.New("knowledge source document missing")

// minFragmentLength drops headers-only noise produced by numbered-list
// splitting.
const minFragmentLength = 50

var numberedItemPattern = regexp.MustCompile(`(?m)^\d+\.\s`)

type Processor struct {
	dir    string
	strict bool
}

// NewProcessor reads knowledge documents from dir. With strict enabled a
// document that yields fewer chunks than its section table expects fails the
// job instead of silently degrading.
func NewProcessor(dir string, strict bool) *Processor {
	return &Processor{dir: dir, strict: strict}
}

// ProcessAll parses every configured source document into labeled chunks.
// Chunks come back without embeddings.
func (p *Processor) ProcessAll() ([]types.KnowledgeChunk, error) {
	var all []types.KnowledgeChunk
	for _, doc := range documentSpecs {
		chunks, err := p.processDocument(doc)
		if err != nil {
			return nil, err
		}
		all = append(all, chunks...)
	}

	slog.Info("knowledge processing finished", slog.Int("chunks", len(all)))
	return all, nil
}

func (p *Processor) processDocument(doc DocumentSpec) ([]types.KnowledgeChunk, error) {
	path := filepath.Join(p.dir, doc.Filename)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if doc.Optional {
				slog.Warn("optional knowledge document not found, skipping",
					slog.String("source", string(doc.Source)), slog.String("path", path))
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %s at %s", ErrSourceMissing, doc.Source, path)
		}
		return nil, fmt.Errorf("failed to read knowledge document %s, %w", path, err)
	}

	text := string(raw)
	var chunks []types.KnowledgeChunk
	for _, section := range doc.Sections {
		content, ok := ExtractSection(text, section.Start, section.End)
		if !ok {
			// Missing sections are optional. Renamed headings land here too,
			// which is why strict mode exists.
			slog.Warn("knowledge section not found",
				slog.String("source", string(doc.Source)), slog.String("heading", section.Start))
			continue
		}

		sectionID := utils.SlugifySectionID(section.Start)

		if section.SplitNumbers {
			for i, fragment := range SplitNumberedItems(content, minFragmentLength) {
				chunks = append(chunks, newChunk(
					fmt.Sprintf("%s-%s-%d", doc.Source, sectionID, i+1),
					fragment, section.Metadata))
			}
			continue
		}

		chunks = append(chunks, newChunk(
			fmt.Sprintf("%s-%s", doc.Source, sectionID),
			content, section.Metadata))
	}

	if p.strict && len(chunks) < len(doc.Sections) {
		return nil, fmt.Errorf("document %s produced %d chunks, section table expects at least %d",
			doc.Filename, len(chunks), len(doc.Sections))
	}

	return chunks, nil
}

func newChunk(id, content string, meta types.ChunkMetadata) types.KnowledgeChunk {
	meta.Keywords = ExtractKeywords(content)
	return types.KnowledgeChunk{
		ID:       id,
		Content:  content,
		Metadata: meta,
	}
}

// ExtractSection returns the trimmed substring between the first occurrence
// of start and the first occurrence of end after it, including the start
// heading line. A missing start heading yields ok=false; a missing end
// heading takes the remainder of the document.
func ExtractSection(document, start, end string) (string, bool) {
	startIdx := strings.Index(document, start)
	if startIdx < 0 {
		return "", false
	}

	rest := document[startIdx:]
	if end == "" {
		return strings.TrimSpace(rest), true
	}

	endIdx := strings.Index(rest[len(start):], end)
	if endIdx < 0 {
		return strings.TrimSpace(rest), true
	}

	return strings.TrimSpace(rest[:len(start)+endIdx]), true
}

// SplitNumberedItems breaks a section on numbered-list delimiters, dropping
// fragments shorter than minLen.
func SplitNumberedItems(text string, minLen int) []string {
	indexes := numberedItemPattern.FindAllStringIndex(text, -1)
	if len(indexes) == 0 {
		if len(strings.TrimSpace(text)) >= minLen {
			return []string{strings.TrimSpace(text)}
		}
		return nil
	}

	var items []string
	for i, loc := range indexes {
		endPos := len(text)
		if i+1 < len(indexes) {
			endPos = indexes[i+1][0]
		}
		fragment := strings.TrimSpace(text[loc[0]:endPos])
		if len(fragment) >= minLen {
			items = append(items, fragment)
		}
	}
	return items
}

// ExtractKeywords lowercases the text and collects every vocabulary term it
// contains, deduplicated.
func ExtractKeywords(content string) []string {
	lowered := strings.ToLower(content)

	seen := make(map[string]struct{})
	var keywords []string
	for _, vocab := range [][]string{technicalTerms, businessTerms, verticalTerms} {
		for _, term := range vocab {
			if _, ok := seen[term]; ok {
				continue
			}
			if strings.Contains(lowered, term) {
				seen[term] = struct{}{}
				keywords = append(keywords, term)
			}
		}
	}
	return keywords
}
