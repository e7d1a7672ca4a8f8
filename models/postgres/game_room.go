package postgres

import (
	"math/rand"
	"time"

	"gorm.io/gorm"
)

/*
 * 'GameRoom' is the persisted row of a Yatzler room. The ephemeral turn
 * state lives in Redis; this row carries identity and lifecycle only.
 */
type GameRoom struct {
	Code       string    `gorm:"primaryKey;size:10;not null"`
	Status     string    `gorm:"size:10;default:'lobby';index:idx_game_rooms_status"`
	MaxPlayers int       `gorm:"default:4"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	StartedAt  *time.Time
	FinishedAt *time.Time
	ExpiresAt  time.Time `gorm:"index:idx_game_rooms_expiry"`

	Players []*Player `gorm:"foreignKey:RoomCode;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Alphabet without lookalike characters (no I/O/0/1), so codes survive being
// read aloud.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateRoomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

// BeforeCreate assigns a collision-checked short join code.
func (r *GameRoom) BeforeCreate(tx *gorm.DB) (err error) {
	if r.Code != "" {
		return nil
	}
	for {
		newCode := generateRoomCode(6)
		var existing GameRoom
		if err := tx.Where("code = ?", newCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				r.Code = newCode
				return nil
			}
			return err
		}
		// Collision, try again
	}
}
