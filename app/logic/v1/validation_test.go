package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

func TestValidateContentClean(t *testing.T) {
	content := "Spent 6 hours automating a report a client did manually every Monday.\n\nIt now runs in 40 seconds.\n\nThat is 300 hours a year back."

	result := v1.ValidateContent(content, types.POST_TYPE_VALUE_BOMB_THREAD)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Issues)
}

func TestValidateContentEmoji(t *testing.T) {
	result := v1.ValidateContent("Automation is the way 🚀", types.POST_TYPE_QUICK_TIP)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "content contains emoji characters")
}

func TestValidateContentCorporateSpeak(t *testing.T) {
	result := v1.ValidateContent("We need to leverage automation and circle back next week.", types.POST_TYPE_QUICK_TIP)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, `corporate speak: "leverage"`)
	assert.Contains(t, result.Issues, `corporate speak: "circle back"`)
}

func TestValidateContentAICliche(t *testing.T) {
	result := v1.ValidateContent("This tool is a game-changer for seamless onboarding.", types.POST_TYPE_QUICK_TIP)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, `AI cliche phrase: "game-changer"`)
	assert.Contains(t, result.Issues, `AI cliche phrase: "seamless"`)
}

func TestValidateContentMetricRequirement(t *testing.T) {
	noMetrics := "A client asked us to automate their reporting. We did, and it worked well."

	result := v1.ValidateContent(noMetrics, types.POST_TYPE_CASE_STUDY)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "no concrete number or metric found")

	// Same content passes for a type that does not demand metrics.
	result = v1.ValidateContent(noMetrics, types.POST_TYPE_PERSONAL_STORY)
	assert.True(t, result.IsValid)

	result = v1.ValidateContent("Automated reporting saved the client 300 hours a year.", types.POST_TYPE_CASE_STUDY)
	assert.True(t, result.IsValid)
}

func TestValidateContentThreadSections(t *testing.T) {
	result := v1.ValidateContent("Just one section here, 300 hours saved.", types.POST_TYPE_VALUE_BOMB_THREAD)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "thread has 1 sections, expected at least 3")
}
