package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postpilot-ai/postpilot/app/core"
	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/app/response"
	"github.com/postpilot-ai/postpilot/pkg/errors"
	"github.com/postpilot-ai/postpilot/pkg/i18n"
	"github.com/postpilot-ai/postpilot/pkg/security"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

const (
	AUTH_TOKEN_HEADER_KEY = "Authorization"
)

// Authorization validates the bearer token issued by the dashboard. An empty
// configured secret disables auth, which only makes sense for self-hosted
// single-user deployments.
func Authorization(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := core.Cfg().Security.JWTSecret
		if secret == "" {
			return
		}

		tokenValue := strings.TrimPrefix(c.GetHeader(AUTH_TOKEN_HEADER_KEY), "Bearer ")
		if tokenValue == "" {
			response.APIError(c, errors.New("middleware.Authorization.nil", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			return
		}

		claims, err := security.VerifyToken(tokenValue, []byte(secret))
		if err != nil {
			response.APIError(c, errors.New("middleware.Authorization.VerifyToken", i18n.ERROR_UNAUTHORIZED, err).Code(http.StatusUnauthorized))
			return
		}

		c.Set("user", claims.User)
		c.Set(v1.TOKEN_CONTEXT_KEY, *claims)
	}
}

// PaymentRequired gates generation endpoints on an active plan claim.
func PaymentRequired(c *gin.Context) {
	tokenClaim, exist := c.Get(v1.TOKEN_CONTEXT_KEY)
	if !exist {
		// Auth disabled, nothing to gate on.
		return
	}

	tc, ok := tokenClaim.(security.TokenClaims)
	if !ok {
		response.APIError(c, errors.New("middleware.PaymentRequired.TokenClaims", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
		return
	}

	if tc.PlanID() == "" {
		response.APIError(c, errors.New("middleware.PaymentRequired.Check.Plan", i18n.ERROR_PAYMENT_REQUIRED, nil).Code(http.StatusPaymentRequired))
		return
	}
}

// AdminRequired gates maintenance endpoints on the admin role claim.
func AdminRequired(c *gin.Context) {
	tokenClaim, exist := c.Get(v1.TOKEN_CONTEXT_KEY)
	if !exist {
		// Auth disabled, nothing to gate on.
		return
	}

	tc, ok := tokenClaim.(security.TokenClaims)
	if !ok {
		response.APIError(c, errors.New("middleware.AdminRequired.TokenClaims", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
		return
	}

	if tc.Role() != security.ROLE_ADMIN {
		response.APIError(c, errors.New("middleware.AdminRequired.Check.Role", i18n.ERROR_FORBIDDEN, nil).Code(http.StatusForbidden))
		return
	}
}

type LimiterFunc func(key string) gin.HandlerFunc

// UseLimit counts requests per key in a fixed one-minute window. Without a
// cache backend the limiter is a no-op.
func UseLimit(appCore *core.Core, operation string, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cache := appCore.Cache()
		if cache == nil {
			return
		}

		key := fmt.Sprintf("limit:%s:%s:%d", operation, genKeyFunc(c), time.Now().Unix()/60)
		count, err := cache.Incr(c, key)
		if err != nil {
			// The limiter is protective, not load-bearing. Let traffic through
			// when redis is down.
			return
		}
		if count == 1 {
			cache.Expire(c, key, time.Minute)
		}

		if count > int64(appCore.Cfg().Limits.GeneratePerMinute) {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}
