package v1

import (
	"context"

	"github.com/postpilot-ai/postpilot/pkg/security"
)

const (
	TOKEN_CONTEXT_KEY = "__postpilot.access_token"
)

// InjectTokenClaim get user token claims from context
func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return val, ok
}
