package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/app/response"
	"github.com/postpilot-ai/postpilot/pkg/safe"
)

// ReindexKnowledge wipes and rebuilds the vector corpus from the markdown
// sources. Destructive, admin only. Async mode returns immediately and logs
// the outcome, embedding a large corpus can outlive the request timeout.
func (s *HttpSrv) ReindexKnowledge(c *gin.Context) {
	if c.Query("async") == "true" {
		go safe.Run(func() {
			if _, err := v1.NewKnowledgeLogic(context.Background(), s.Core).Reindex(); err != nil {
				slog.Error("async reindex failed", slog.String("error", err.Error()))
			}
		})
		response.APISuccess(c, gin.H{"status": "started"})
		return
	}

	result, err := v1.NewKnowledgeLogic(c, s.Core).Reindex()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}

func (s *HttpSrv) KnowledgeStats(c *gin.Context) {
	stats, err := v1.NewKnowledgeLogic(c, s.Core).Stats()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, stats)
}
