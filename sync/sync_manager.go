package sync

import (
	models "Yatzler/models/postgres"
	"Yatzler/services/yahtzee"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerResult is the final outcome of one player, computed once from the
// authoritative in-memory state when the game finishes.
type PlayerResult struct {
	PlayerID    string            `json:"-"`
	PlayerIndex int               `json:"player_index"`
	Name        string            `json:"name"`
	Totals      yahtzee.Totals    `json:"totals"`
	Winner      bool              `json:"winner"`
	Scorecard   yahtzee.Scorecard `json:"scorecard"`
}

type SyncManager struct {
	db *gorm.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(db *gorm.DB) *SyncManager {
	return &SyncManager{db: db}
}

// PersistGameResult writes the room's final state to PostgreSQL: the room row
// flips to finished and one GameScore row per player is inserted exactly
// once. Conflicting inserts are ignored so a retried write stays idempotent.
func (sm *SyncManager) PersistGameResult(roomCode string, finishedAt time.Time, results []PlayerResult) error {
	return sm.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GameRoom{}).
			Where("code = ?", roomCode).
			Updates(map[string]interface{}{
				"status":      "finished",
				"finished_at": finishedAt,
			}).Error; err != nil {
			return fmt.Errorf("error updating room row: %v", err)
		}

		for _, r := range results {
			snapshot, err := json.Marshal(r.Scorecard)
			if err != nil {
				return fmt.Errorf("error marshaling scorecard snapshot: %v", err)
			}
			score := models.GameScore{
				RoomCode:    roomCode,
				PlayerID:    r.PlayerID,
				PlayerIndex: r.PlayerIndex,
				DisplayName: r.Name,
				UpperTotal:  r.Totals.UpperTotal,
				UpperBonus:  r.Totals.UpperBonus,
				LowerTotal:  r.Totals.LowerTotal,
				GrandTotal:  r.Totals.GrandTotal,
				Winner:      r.Winner,
				Scorecard:   snapshot,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&score).Error; err != nil {
				return fmt.Errorf("error inserting game score: %v", err)
			}
		}
		return nil
	})
}

// PersistGameResultWithRetry retries the write once. A persistence failure
// must never corrupt the in-memory result, so the computed results are passed
// through unchanged and only the write is repeated.
func (sm *SyncManager) PersistGameResultWithRetry(roomCode string, finishedAt time.Time, results []PlayerResult) error {
	err := sm.PersistGameResult(roomCode, finishedAt, results)
	if err == nil {
		return nil
	}
	log.Printf("[SYNC-ERROR] First persistence attempt for room %s failed: %v, retrying", roomCode, err)
	return sm.PersistGameResult(roomCode, finishedAt, results)
}
