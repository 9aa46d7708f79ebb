package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"
)

// EmbeddingDimension is fixed by the configured embedding model. Every vector
// entering the store has exactly this length.
const EmbeddingDimension = 1024

// EmbeddingInputType tells the provider which side of the retrieval asymmetry
// a text belongs to.
type EmbeddingInputType string

const (
	EMBEDDING_INPUT_DOCUMENT EmbeddingInputType = "document"
	EMBEDDING_INPUT_QUERY    EmbeddingInputType = "query"
)

// ErrEmptyEmbedding marks a provider response with a missing or empty vector.
// Zero vectors must never reach the store, they poison similarity search
// silently.
var ErrEmptyEmbedding = errors.New("provider returned an empty embedding")

type ModelName struct {
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

type EmbeddingResult struct {
	Data  [][]float32
	Model string
	Usage *openai.Usage
}

type GenerateResponse struct {
	Content string
	Model   string
	Usage   *openai.Usage
}

// Embedder maps text to vectors in two asymmetric modes. Batch embedding
// preserves input order and aborts entirely on the first failed batch.
type Embedder interface {
	EmbeddingForQuery(ctx context.Context, content []string) (EmbeddingResult, error)
	EmbeddingForDocument(ctx context.Context, content []string) (EmbeddingResult, error)
}

// Generator is the chat-completion boundary consumed by the generation logic.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (GenerateResponse, error)
}

// Driver is a full provider implementation.
type Driver interface {
	Embedder
	Generator
}

// NumTokens counts prompt tokens for the given model, falling back to
// cl100k_base for models tiktoken does not know.
func NumTokens(text string, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		if tkm, err = tiktoken.GetEncoding("cl100k_base"); err != nil {
			return 0, fmt.Errorf("failed to load token encoding, %w", err)
		}
	}
	return len(tkm.Encode(text, nil, nil)), nil
}
