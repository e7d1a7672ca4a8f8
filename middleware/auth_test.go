package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("KEY", "test-signing-key")

	token, err := MintSessionToken("ABC123", "player-uuid-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", claims.RoomCode)
	assert.Equal(t, "player-uuid-1", claims.PlayerID)
}

func TestParseSessionTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("KEY", "test-signing-key")
	token, err := MintSessionToken("ABC123", "player-uuid-1")
	require.NoError(t, err)

	t.Setenv("KEY", "another-key")
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("KEY", "test-signing-key")
	_, err := ParseSessionToken("not.a.token")
	assert.Error(t, err)
}
