package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/postpilot-ai/postpilot/app/core"
	"github.com/postpilot-ai/postpilot/pkg/ai"
	"github.com/postpilot-ai/postpilot/pkg/errors"
	"github.com/postpilot-ai/postpilot/pkg/i18n"
	"github.com/postpilot-ai/postpilot/pkg/types"
)

// GenerationLogic sequences retrieval, prompt building and the LLM call, then
// annotates the output with advisory validation issues and metadata.
type GenerationLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewGenerationLogic(ctx context.Context, core *core.Core) *GenerationLogic {
	return &GenerationLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *GenerationLogic) validateRequest(req types.PostGenerationRequest) error {
	if !req.PostType.Valid() {
		return errors.New("GenerationLogic.validateRequest.PostType", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	if !req.Platform.Valid() {
		return errors.New("GenerationLogic.validateRequest.Platform", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	return nil
}

// PrepareGeneration runs retrieval and prompt composition without calling the
// LLM. Callers that bring their own model use this directly.
func (l *GenerationLogic) PrepareGeneration(req types.PostGenerationRequest) (types.GenerationPrompts, error) {
	if err := l.validateRequest(req); err != nil {
		return types.GenerationPrompts{}, err
	}

	ragContext, err := NewRAGLogic(l.ctx, l.core).RetrieveContext(req.PostType, req.Context)
	if err != nil {
		return types.GenerationPrompts{}, errors.Trace("GenerationLogic.PrepareGeneration", err)
	}

	return ai.BuildPrompt(req.PostType, req.Platform, ragContext, req.Context), nil
}

// Generate runs the full pipeline including the LLM call. Validation issues
// never suppress delivery of the content.
func (l *GenerationLogic) Generate(req types.PostGenerationRequest) (*types.GeneratedPost, error) {
	prompts, err := l.PrepareGeneration(req)
	if err != nil {
		return nil, err
	}

	timer := l.core.Metrics().LLMRequestTimer("generate")
	resp, err := l.core.Srv().AI().Generate(l.ctx, prompts.SystemPrompt, prompts.UserPrompt)
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().LLMErrorInc("generate")
		return nil, errors.New("GenerationLogic.Generate.AI.Generate", i18n.ERROR_GENERATION_FAILED, err)
	}

	validation := ValidateContent(resp.Content, req.PostType)
	if !validation.IsValid {
		slog.Info("generated content has validation issues",
			slog.String("post_type", string(req.PostType)), slog.Any("issues", validation.Issues))
	}

	l.core.Metrics().GenerationInc(string(req.PostType), string(req.Platform))

	return &types.GeneratedPost{
		Content:          resp.Content,
		Metadata:         ExtractMetadata(resp.Content, req.PostType, req.Platform),
		ValidationIssues: validation.Issues,
	}, nil
}
