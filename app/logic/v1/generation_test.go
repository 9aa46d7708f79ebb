package v1_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postpilot-ai/postpilot/app/core"
	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/pkg/ai"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

// fakeDriver returns canned embeddings and content so pipeline tests run
// without a provider account.
type fakeDriver struct {
	content string
}

func (d *fakeDriver) embed(content []string) ai.EmbeddingResult {
	var r ai.EmbeddingResult
	for range content {
		vec := make([]float32, ai.EmbeddingDimension)
		vec[0] = 1
		r.Data = append(r.Data, vec)
	}
	r.Model = "fake-embedding"
	return r
}

func (d *fakeDriver) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return d.embed(content), nil
}

func (d *fakeDriver) EmbeddingForDocument(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return d.embed(content), nil
}

func (d *fakeDriver) Generate(ctx context.Context, systemPrompt, userPrompt string) (ai.GenerateResponse, error) {
	return ai.GenerateResponse{Content: d.content, Model: "fake-chat"}, nil
}

func newTestCore(t *testing.T) *core.Core {
	t.Helper()
	path := os.Getenv("TEST_CONFIG_PATH")
	if path == "" {
		t.Skip("TEST_CONFIG_PATH not set, skipping pipeline test")
	}
	app := core.MustSetupCore(core.MustLoadBaseConfig(path))
	if err := app.Install(context.Background()); err != nil {
		t.Fatal(err)
	}
	return app
}

func TestPipelinePrepareGeneration(t *testing.T) {
	app := newTestCore(t)
	app.Srv().SetAI(&fakeDriver{})

	if _, err := v1.NewKnowledgeLogic(context.Background(), app).Reindex(); err != nil {
		t.Fatal(err)
	}

	logic := v1.NewGenerationLogic(context.Background(), app)
	prompts, err := logic.PrepareGeneration(types.PostGenerationRequest{
		PostType: types.POST_TYPE_VALUE_BOMB_THREAD,
		Platform: types.PLATFORM_X,
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Contains(t, prompts.UserPrompt, "Value Bomb Thread")
	assert.NotEmpty(t, prompts.SystemPrompt)
	assert.True(t, strings.Contains(prompts.SystemPrompt, prompts.RAGContext))
}

func TestPipelineGenerate(t *testing.T) {
	app := newTestCore(t)
	content := "Spent 6 hours automating a client report.\n\nIt now runs in 40 seconds.\n\n300 hours a year back."
	app.Srv().SetAI(&fakeDriver{content: content})

	logic := v1.NewGenerationLogic(context.Background(), app)
	post, err := logic.Generate(types.PostGenerationRequest{
		PostType: types.POST_TYPE_VALUE_BOMB_THREAD,
		Platform: types.PLATFORM_X,
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, content, post.Content)
	assert.Empty(t, post.ValidationIssues)
	assert.Equal(t, 3, post.Metadata.TweetCount)
}

func TestGenerateRejectsBadArguments(t *testing.T) {
	logic := v1.NewGenerationLogic(context.Background(), nil)

	_, err := logic.PrepareGeneration(types.PostGenerationRequest{
		PostType: "unknown-type",
		Platform: types.PLATFORM_X,
	})
	assert.Error(t, err)

	_, err = logic.PrepareGeneration(types.PostGenerationRequest{
		PostType: types.POST_TYPE_QUICK_TIP,
		Platform: "Mastodon",
	})
	assert.Error(t, err)
}
