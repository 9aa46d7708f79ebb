package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/postpilot-ai/postpilot/pkg/ai"
)

const (
	NAME = "openai"

	// Provider batch-size limit for embedding calls.
	embeddingBatchMax = 96
	// Pause between batches so long indexing runs stay under provider rate
	// limits.
	embeddingBatchDelay = 200 * time.Millisecond
)

type Driver struct {
	client *openai.Client
	model  ai.ModelName
}

func New(token, proxy string, model ai.ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}
	if model.EmbeddingModel == "" {
		model.EmbeddingModel = string(openai.LargeEmbedding3)
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// inputPrefix biases the vector for the retrieval side the text belongs to.
// Asymmetric embedding models key off this prefix; symmetric models just see
// consistent framing on both sides.
func inputPrefix(inputType ai.EmbeddingInputType) string {
	if inputType == ai.EMBEDDING_INPUT_QUERY {
		return "query: "
	}
	return "passage: "
}

func (s *Driver) embedding(ctx context.Context, inputType ai.EmbeddingInputType, content []string) (ai.EmbeddingResult, error) {
	slog.Debug("Embedding", slog.String("driver", NAME), slog.String("input_type", string(inputType)), slog.Int("texts", len(content)))

	var groups [][]string
	for i, v := range content {
		if i%embeddingBatchMax == 0 {
			groups = append(groups, []string{})
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], inputPrefix(inputType)+v)
	}

	r := ai.EmbeddingResult{
		Usage: &openai.Usage{},
	}
	for i, group := range groups {
		if i > 0 {
			time.Sleep(embeddingBatchDelay)
		}

		resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model:      openai.EmbeddingModel(s.model.EmbeddingModel),
			Dimensions: ai.EmbeddingDimension,
			Input:      group,
		})
		if err != nil {
			return r, fmt.Errorf("Error creating embedding: %w", err)
		}

		for _, v := range resp.Data {
			if len(v.Embedding) == 0 {
				return r, fmt.Errorf("%w: model %s", ai.ErrEmptyEmbedding, s.model.EmbeddingModel)
			}
			if len(v.Embedding) != ai.EmbeddingDimension {
				return r, fmt.Errorf("unexpected embedding dimension %d, want %d", len(v.Embedding), ai.EmbeddingDimension)
			}
			r.Data = append(r.Data, v.Embedding)
		}

		r.Usage.PromptTokens += resp.Usage.PromptTokens
		r.Usage.TotalTokens += resp.Usage.TotalTokens
		r.Model = string(resp.Model)
	}

	return r, nil
}

func (s *Driver) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, ai.EMBEDDING_INPUT_QUERY, content)
}

func (s *Driver) EmbeddingForDocument(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, ai.EMBEDDING_INPUT_DOCUMENT, content)
}

func (s *Driver) Generate(ctx context.Context, systemPrompt, userPrompt string) (ai.GenerateResponse, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}

	var result ai.GenerateResponse
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return result, fmt.Errorf("Completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("Completion error: empty choices")
	}

	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	result.Content = resp.Choices[0].Message.Content
	result.Model = resp.Model
	result.Usage = &resp.Usage
	return result, nil
}
