package srv

import (
	"os"

	"github.com/postpilot-ai/postpilot/pkg/ai"
	"github.com/postpilot-ai/postpilot/pkg/ai/openai"
)

type AIConfig struct {
	Token    string       `toml:"token"`
	Endpoint string       `toml:"endpoint"`
	Model    ai.ModelName `toml:"model"`
}

func (c *AIConfig) FromENV() {
	c.Token = os.Getenv("POSTPILOT_API_AI_TOKEN")
	c.Endpoint = os.Getenv("POSTPILOT_API_AI_ENDPOINT")
	c.Model.ChatModel = os.Getenv("POSTPILOT_API_AI_CHAT_MODEL")
	c.Model.EmbeddingModel = os.Getenv("POSTPILOT_API_AI_EMBEDDING_MODEL")
}

// ApplyAI wires the provider driver. Any OpenAI-compatible endpoint with a
// batch embedding API and chat completions satisfies the driver contract.
func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		s.ai = openai.New(cfg.Token, cfg.Endpoint, cfg.Model)
	}
}
