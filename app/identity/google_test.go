package identity

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(t *testing.T, payload map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	require.NoError(t, err)
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(body) + "." + enc.EncodeToString([]byte("unchecked"))
}

func TestDecodeCredentialReadsPayloadWithoutVerification(t *testing.T) {
	cred := token(t, map[string]any{
		"email":   "carlos@gmail.com",
		"name":    "Carlos Lima",
		"picture": "https://example.com/p.jpg",
		"iss":     "https://accounts.google.com",
	})

	claims, err := DecodeCredential(cred)
	require.NoError(t, err)
	assert.Equal(t, "carlos@gmail.com", claims.Email)
	assert.Equal(t, "Carlos Lima", claims.Name)
	assert.Equal(t, "https://example.com/p.jpg", claims.Picture)
}

func TestDecodeCredentialToleratesMissingOptionalClaims(t *testing.T) {
	claims, err := DecodeCredential(token(t, map[string]any{"email": "x@y.com"}))
	require.NoError(t, err)
	assert.Equal(t, "x@y.com", claims.Email)
	assert.Empty(t, claims.Name)
	assert.Empty(t, claims.Picture)
}

func TestDecodeCredentialRejectsGarbage(t *testing.T) {
	_, err := DecodeCredential("definitely.not.a.token")
	assert.Error(t, err)

	_, err = DecodeCredential("no-dots-at-all")
	assert.Error(t, err)
}

func TestDecodeCredentialRequiresEmail(t *testing.T) {
	_, err := DecodeCredential(token(t, map[string]any{"name": "No Email"}))
	assert.Error(t, err)
}
