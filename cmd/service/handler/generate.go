package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/app/response"
	"github.com/postpilot-ai/postpilot/pkg/types"
	"github.com/postpilot-ai/postpilot/pkg/utils"
)

type GeneratePostRequest struct {
	PostType types.PostType          `json:"post_type" form:"post_type" binding:"required"`
	Platform types.Platform          `json:"platform" form:"platform" binding:"required"`
	Context  types.GenerationContext `json:"context" form:"context"`
}

func (r GeneratePostRequest) toRequest() types.PostGenerationRequest {
	return types.PostGenerationRequest{
		PostType: r.PostType,
		Platform: r.Platform,
		Context:  r.Context,
	}
}

// GeneratePost runs the full pipeline and returns the finished post.
func (s *HttpSrv) GeneratePost(c *gin.Context) {
	var (
		err error
		req GeneratePostRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	timer := s.Core.Metrics().ApiResponseTimer("generate")
	defer timer.ObserveDuration()

	post, err := v1.NewGenerationLogic(c, s.Core).Generate(req.toRequest())
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, post)
}

// PrepareGeneration returns the assembled prompts without calling the model.
// The extension uses this when the user brings their own LLM session.
func (s *HttpSrv) PrepareGeneration(c *gin.Context) {
	var (
		err error
		req GeneratePostRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	prompts, err := v1.NewGenerationLogic(c, s.Core).PrepareGeneration(req.toRequest())
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, prompts)
}

type ValidatePostRequest struct {
	Content  string         `json:"content" form:"content" binding:"required"`
	PostType types.PostType `json:"post_type" form:"post_type" binding:"required"`
	Platform types.Platform `json:"platform" form:"platform"`
}

// ValidatePost lints caller-supplied content, for drafts written or edited by
// hand in the dashboard.
func (s *HttpSrv) ValidatePost(c *gin.Context) {
	var (
		err error
		req ValidatePostRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result := v1.ValidateContent(req.Content, req.PostType)

	platform := req.Platform
	if platform == "" {
		platform = types.PLATFORM_X
	}

	response.APISuccess(c, gin.H{
		"validation": result,
		"metadata":   v1.ExtractMetadata(req.Content, req.PostType, platform),
	})
}
