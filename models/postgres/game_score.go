package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'GameScore' is the write-once result row of one player in one finished
 * game. No FK constraint to GameRoom on purpose: results outlive the room
 * row when expired rooms are swept.
 */
type GameScore struct {
	// NOTE: composite primary key definition
	RoomCode    string         `gorm:"primaryKey;size:10;not null"`
	PlayerID    string         `gorm:"primaryKey;size:40;not null"`
	PlayerIndex int            `gorm:"not null"`
	DisplayName string         `gorm:"size:20;not null"`
	UpperTotal  int            `gorm:"default:0"`
	UpperBonus  int            `gorm:"default:0"`
	LowerTotal  int            `gorm:"default:0"`
	GrandTotal  int            `gorm:"default:0"`
	Winner      bool           `gorm:"default:false"`
	Scorecard   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
}
