package game_flow

import (
	game_constants "Yatzler/constants/game"
	postgres_models "Yatzler/models/postgres"
	"Yatzler/services/redis"
	"log"
	"time"

	"gorm.io/gorm"
)

// StartCleanupWorker sweeps expired rooms on a fixed interval until the
// stop channel closes. Score rows are kept, only the room shell and its
// player roster go.
func StartCleanupWorker(db *gorm.DB, rc *redis.RedisClient, stop <-chan struct{}) {
	ticker := time.NewTicker(game_constants.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := CleanupExpiredRooms(db, rc); err != nil {
				log.Printf("[CLEANUP-ERROR] Sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] Removed %d expired rooms", n)
			}
		case <-stop:
			return
		}
	}
}

// CleanupExpiredRooms removes every room whose expiry has passed, in redis
// and postgres both.
func CleanupExpiredRooms(db *gorm.DB, rc *redis.RedisClient) (int, error) {
	var expired []postgres_models.GameRoom
	if err := db.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
		return 0, err
	}

	removed := 0
	for _, row := range expired {
		unlock := lockRoom(row.Code)
		if err := rc.DeleteGameRoom(row.Code); err != nil {
			log.Printf("[CLEANUP-ERROR] Could not drop redis state for room %s: %v", row.Code, err)
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("room_code = ?", row.Code).
				Delete(&postgres_models.Player{}).Error; err != nil {
				return err
			}
			return tx.Delete(&postgres_models.GameRoom{}, "code = ?", row.Code).Error
		})
		unlock()
		releaseRoomLock(row.Code)
		if err != nil {
			log.Printf("[CLEANUP-ERROR] Could not delete room %s: %v", row.Code, err)
			continue
		}
		removed++
	}
	return removed, nil
}
