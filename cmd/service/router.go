package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postpilot-ai/postpilot/app/core"
	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/app/response"
	"github.com/postpilot-ai/postpilot/cmd/service/handler"
	"github.com/postpilot-ai/postpilot/cmd/service/middleware"
	"github.com/postpilot-ai/postpilot/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetUserLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			if token.User != "" {
				return key + ":" + token.User
			}
			return key + ":" + c.ClientIP()
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(func(c *gin.Context) {
		c.Next()
		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			s.Core.Metrics().ApiErrorInc(c.Request.Method, c.FullPath(), status)
		}
	})

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		post := authed.Group("/post")
		{
			post.POST("/generate", middleware.PaymentRequired, userLimit("generate"), s.GeneratePost)
			post.POST("/prepare", middleware.PaymentRequired, userLimit("generate"), s.PrepareGeneration)
			post.POST("/validate", s.ValidatePost)
		}

		knowledge := authed.Group("/knowledge")
		knowledge.Use(middleware.AdminRequired)
		{
			knowledge.POST("/reindex", s.ReindexKnowledge)
			knowledge.GET("/stats", s.KnowledgeStats)
		}
	}
}
