package redis

import (
	redis_models "Yatzler/models/redis"
	"Yatzler/services/yahtzee"
	"testing"
	"time"
)

func TestRedisRoomOperations(t *testing.T) {
	rc, err := InitRedis("localhost:6379", 0)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer CloseRedis(rc)

	cleanupRedis := func() {
		if err := rc.CleanupKeys([]string{"room:TESTRM:state"}); err != nil {
			t.Fatalf("Failed to cleanup Redis keys: %v", err)
		}
	}

	t.Run("GameRoom Operations", func(t *testing.T) {
		cleanupRedis()
		room := &redis_models.GameRoom{
			Code:         "TESTRM",
			HostPlayerID: "host-1",
			Status:       redis_models.StatusPlaying,
			MaxPlayers:   4,
			CurrentRound: 7,
			Version:      42,
			CreatedAt:    time.Now(),
			Players: []*redis_models.RoomPlayer{
				{
					ID:          "host-1",
					Name:        "Ana",
					IsConnected: true,
					Scorecard:   yahtzee.Scorecard{yahtzee.Fives: 20},
				},
			},
		}

		if err := rc.SaveGameRoom(room); err != nil {
			t.Errorf("Failed to save room: %v", err)
		}

		retrieved, err := rc.GetGameRoom("TESTRM")
		if err != nil {
			t.Errorf("Failed to get room: %v", err)
		}

		if room.Code != retrieved.Code ||
			room.Status != retrieved.Status ||
			room.CurrentRound != retrieved.CurrentRound ||
			room.Version != retrieved.Version {
			t.Errorf("Room data mismatch.")
		}
		if len(retrieved.Players) != 1 || retrieved.Players[0].Scorecard[yahtzee.Fives] != 20 {
			t.Errorf("Player scorecard mismatch.")
		}
	})

	t.Run("RoomExists", func(t *testing.T) {
		exists, err := rc.RoomExists("TESTRM")
		if err != nil {
			t.Errorf("Failed to check room existence: %v", err)
		}
		if !exists {
			t.Errorf("Expected room to exist")
		}

		exists, err = rc.RoomExists("NOROOM")
		if err != nil {
			t.Errorf("Failed to check room existence: %v", err)
		}
		if exists {
			t.Errorf("Expected room to be absent")
		}
	})

	t.Run("DeleteGameRoom", func(t *testing.T) {
		if err := rc.DeleteGameRoom("TESTRM"); err != nil {
			t.Errorf("Failed to delete room: %v", err)
		}
		if _, err := rc.GetGameRoom("TESTRM"); err == nil {
			t.Errorf("Expected deleted room to be gone")
		}
	})
}
