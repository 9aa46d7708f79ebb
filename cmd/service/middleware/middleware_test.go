package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
	"github.com/postpilot-ai/postpilot/app/response"
	"github.com/postpilot-ai/postpilot/pkg/i18n"
	"github.com/postpilot-ai/postpilot/pkg/security"
)

func newGateTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/knowledge/stats", nil)
	c.Set("i18n", i18n.NewLocalizer("en"))
	c.Set(response.ResponseKey, &response.Response{})
	return c, w
}

func TestAdminRequiredNoClaims(t *testing.T) {
	// Auth disabled deployments carry no claims and are not gated.
	c, _ := newGateTestContext(t)

	AdminRequired(c)

	assert.False(t, c.IsAborted())
}

func TestAdminRequiredAdminRole(t *testing.T) {
	c, _ := newGateTestContext(t)
	claims := security.NewTokenClaims("user-1", "pro", security.ROLE_ADMIN, 0)
	c.Set(v1.TOKEN_CONTEXT_KEY, claims)

	AdminRequired(c)

	assert.False(t, c.IsAborted())
}

func TestAdminRequiredMemberRole(t *testing.T) {
	c, w := newGateTestContext(t)
	claims := security.NewTokenClaims("user-1", "pro", "", 0)
	c.Set(v1.TOKEN_CONTEXT_KEY, claims)

	AdminRequired(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPaymentRequiredNoPlan(t *testing.T) {
	c, w := newGateTestContext(t)
	claims := security.NewTokenClaims("user-1", "", "", 0)
	c.Set(v1.TOKEN_CONTEXT_KEY, claims)

	PaymentRequired(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}
