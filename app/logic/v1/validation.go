package v1

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/postpilot-ai/postpilot/pkg/types"
)

// Content-quality vocabularies. All advisory: issues annotate the response,
// they never block it.
var (
	corporateSpeakTerms = []string{
		"leverage", "synergy", "circle back", "move the needle", "paradigm",
		"streamline", "best-in-class", "low-hanging fruit", "value-add",
		"touch base",
	}

	aiClichePhrases = []string{
		"game-changer", "in today's fast-paced world", "unlock the power",
		"delve into", "it's important to note", "revolutionize", "seamless",
		"elevate your", "take it to the next level", "in conclusion",
	}

	metricPattern = regexp.MustCompile(`\d`)
)

// metricRequiredTypes must contain at least one concrete number.
var metricRequiredTypes = map[types.PostType]bool{
	types.POST_TYPE_CASE_STUDY:       true,
	types.POST_TYPE_INDUSTRY_INSIGHT: true,
}

const threadMinSections = 3

// ValidateContent lints generated text against the content-quality rules.
func ValidateContent(content string, postType types.PostType) types.ValidationResult {
	var issues []string
	lowered := strings.ToLower(content)

	if containsEmoji(content) {
		issues = append(issues, "content contains emoji characters")
	}

	for _, term := range corporateSpeakTerms {
		if strings.Contains(lowered, term) {
			issues = append(issues, fmt.Sprintf("corporate speak: %q", term))
		}
	}

	for _, phrase := range aiClichePhrases {
		if strings.Contains(lowered, phrase) {
			issues = append(issues, fmt.Sprintf("AI cliche phrase: %q", phrase))
		}
	}

	if metricRequiredTypes[postType] && !metricPattern.MatchString(content) {
		issues = append(issues, "no concrete number or metric found")
	}

	if postType == types.POST_TYPE_VALUE_BOMB_THREAD {
		if n := len(splitSections(content)); n < threadMinSections {
			issues = append(issues, fmt.Sprintf("thread has %d sections, expected at least %d", n, threadMinSections))
		}
	}

	return types.ValidationResult{
		IsValid: len(issues) == 0,
		Issues:  issues,
	}
}

func containsEmoji(content string) bool {
	for _, r := range content {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF, // symbols, pictographs, supplemental
			r >= 0x2600 && r <= 0x27BF, // misc symbols, dingbats
			r >= 0x1F1E6 && r <= 0x1F1FF, // regional indicators
			r == 0xFE0F: // variation selector
			return true
		}
	}
	return false
}

func splitSections(content string) []string {
	var sections []string
	for _, part := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(part) != "" {
			sections = append(sections, strings.TrimSpace(part))
		}
	}
	return sections
}
