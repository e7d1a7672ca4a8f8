package postgres

import "time"

/*
 * 'Player' is one seat of a room, persisted so a reconnecting client can be
 * looked up by stored identity instead of joining as a new player.
 */
type Player struct {
	ID          string    `gorm:"primaryKey;size:40;not null"`
	RoomCode    string    `gorm:"size:10;not null;index:idx_players_room"`
	DisplayName string    `gorm:"size:20;not null"`
	PlayerIndex int       `gorm:"not null"`
	IsBot       bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	GameRoom GameRoom `gorm:"foreignKey:RoomCode"`
}
