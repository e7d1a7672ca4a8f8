package game_flow

import (
	redis_models "Yatzler/models/redis"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	name, err := validateName("  Ana  ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)

	_, err = validateName("   ")
	assert.Equal(t, ErrInvalidName, err)

	_, err = validateName(strings.Repeat("x", 21))
	assert.Equal(t, ErrInvalidName, err)

	name, err = validateName(strings.Repeat("x", 20))
	require.NoError(t, err)
	assert.Len(t, name, 20)

	// The limit counts characters, not bytes
	name, err = validateName(strings.Repeat("ñ", 20))
	require.NoError(t, err)
	assert.Equal(t, 20, utf8.RuneCountInString(name))
}

func TestDedupName(t *testing.T) {
	room := testRoom(2)
	room.Players[0].Name = "Ana"
	room.Players[1].Name = "Ana (2)"

	assert.Equal(t, "Bea", dedupName(room, "Bea"))
	assert.Equal(t, "Ana (3)", dedupName(room, "Ana"))
}

func TestDedupNameKeepsLengthLimit(t *testing.T) {
	room := testRoom(2)
	long := strings.Repeat("x", 20)
	room.Players[0].Name = long

	got := dedupName(room, long)
	assert.Equal(t, strings.Repeat("x", 16)+" (2)", got)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 20)

	room.Players[1].Name = got
	assert.Equal(t, strings.Repeat("x", 16)+" (3)", dedupName(room, long))
}

func TestLowestFreeIndex(t *testing.T) {
	room := testRoom(3)
	assert.Equal(t, 3, lowestFreeIndex(room))

	// A freed middle seat is reused first
	room.Players = []*redis_models.RoomPlayer{room.Players[0], room.Players[2]}
	assert.Equal(t, 1, lowestFreeIndex(room))
}

func TestTurnOrderSkipsDeparted(t *testing.T) {
	room := testRoom(3)
	room.Players[1].HasLeft = true
	assert.Equal(t, []int{0, 2}, turnOrder(room))
}
