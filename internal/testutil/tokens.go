package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inspection-hub/go-backend/internal/auth"
)

// TokenSecret is the shared secret used by test servers.
const TokenSecret = "test-secret"

// SignToken returns an HS256 token for subject valid for an hour from issuedAt.
func SignToken(t testing.TB, subject string, issuedAt time.Time) string {
	t.Helper()
	token, err := auth.Sign(TokenSecret, "HS256", subject, issuedAt, time.Hour)
	require.NoError(t, err)
	return token
}
