package game_flow

import (
	game_constants "Yatzler/constants/game"
	redis_models "Yatzler/models/redis"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisconnectCurrentPlayerArmsTimer(t *testing.T) {
	room := testRoom(2)
	before := room.Version

	deadline, armed := disconnectLocked(room, room.Players[0])
	require.True(t, armed)
	assert.False(t, room.Players[0].IsConnected)
	assert.Equal(t, deadline, room.TurnTimeout)
	assert.WithinDuration(t, time.Now().Add(game_constants.TurnGracePeriod), deadline, time.Second)
	assert.Greater(t, room.Version, before)
}

func TestDisconnectOtherPlayerDoesNotArmTimer(t *testing.T) {
	room := testRoom(2)

	_, armed := disconnectLocked(room, room.Players[1])
	assert.False(t, armed)
	assert.False(t, room.Players[1].IsConnected)
	assert.True(t, room.TurnTimeout.IsZero())
}

func TestDisconnectInLobbyDoesNotArmTimer(t *testing.T) {
	room := testRoom(2)
	room.Status = redis_models.StatusLobby

	_, armed := disconnectLocked(room, room.Players[0])
	assert.False(t, armed)
	assert.True(t, room.TurnTimeout.IsZero())
}

func TestReconnectDisarmsOwnTimer(t *testing.T) {
	room := testRoom(2)
	_, armed := disconnectLocked(room, room.Players[0])
	require.True(t, armed)

	reconnectLocked(room, room.Players[0])
	assert.True(t, room.Players[0].IsConnected)
	assert.True(t, room.TurnTimeout.IsZero())
}

func TestReconnectOfBystanderKeepsTimer(t *testing.T) {
	room := testRoom(3)
	deadline, armed := disconnectLocked(room, room.Players[0])
	require.True(t, armed)

	room.Players[1].IsConnected = false
	reconnectLocked(room, room.Players[1])
	assert.True(t, room.Players[1].IsConnected)
	assert.Equal(t, deadline, room.TurnTimeout)
}

func TestTurnTimeoutDue(t *testing.T) {
	room := testRoom(2)
	deadline, armed := disconnectLocked(room, room.Players[0])
	require.True(t, armed)

	assert.True(t, turnTimeoutDue(room, "player-0", deadline))
}

func TestTurnTimeoutNotDueAfterReconnect(t *testing.T) {
	room := testRoom(2)
	deadline, _ := disconnectLocked(room, room.Players[0])

	reconnectLocked(room, room.Players[0])
	assert.False(t, turnTimeoutDue(room, "player-0", deadline))
}

func TestTurnTimeoutNotDueWithStaleDeadline(t *testing.T) {
	room := testRoom(2)
	stale, _ := disconnectLocked(room, room.Players[0])

	// A newer disconnect re-armed the timer; the first watcher must yield
	room.TurnTimeout = stale.Add(10 * time.Second)
	assert.False(t, turnTimeoutDue(room, "player-0", stale))
}

func TestTurnTimeoutNotDueAfterTurnAdvanced(t *testing.T) {
	room := testRoom(2)
	deadline, _ := disconnectLocked(room, room.Players[0])

	advanceTurnLocked(room)
	// Even with the deadline still recorded, the turn holder changed
	room.TurnTimeout = deadline
	assert.False(t, turnTimeoutDue(room, "player-0", deadline))
}

func TestTurnTimeoutNotDueWhenGameOver(t *testing.T) {
	room := testRoom(2)
	deadline, _ := disconnectLocked(room, room.Players[0])

	room.Status = redis_models.StatusFinished
	assert.False(t, turnTimeoutDue(room, "player-0", deadline))
}

func TestTurnTimeoutNotDueWhenPlayerQuit(t *testing.T) {
	room := testRoom(2)
	deadline, _ := disconnectLocked(room, room.Players[0])

	room.Players[0].HasLeft = true
	assert.False(t, turnTimeoutDue(room, "player-0", deadline))
}
