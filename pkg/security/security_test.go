package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("postpilot-test-secret")

func TestJWTRoundTrip(t *testing.T) {
	claims := NewTokenClaims("user-1", "pro", ROLE_ADMIN, time.Now().Add(time.Hour).Unix())

	token, err := GenerateJWT(claims, testSecret)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "user-1", parsed.User)
	assert.Equal(t, "pro", parsed.PlanID())
	assert.Equal(t, ROLE_ADMIN, parsed.Role())
}

func TestVerifyTokenExpired(t *testing.T) {
	claims := NewTokenClaims("user-1", "pro", "", time.Now().Add(-time.Hour).Unix())

	token, err := GenerateJWT(claims, testSecret)
	if err != nil {
		t.Fatal(err)
	}

	// The jwt library rejects the expired claim during parsing already.
	_, err = VerifyToken(token, testSecret)
	assert.Error(t, err)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	claims := NewTokenClaims("user-1", "pro", "", time.Now().Add(time.Hour).Unix())

	token, err := GenerateJWT(claims, testSecret)
	if err != nil {
		t.Fatal(err)
	}

	_, err = VerifyToken(token, []byte("other-secret"))
	assert.Error(t, err)
}
