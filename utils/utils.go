package utils

import (
	"Yatzler/models/postgres"
	"fmt"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

// ErrorHandler handles global errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// Function to check if a room exists
func CheckRoomExists(db *gorm.DB, code string) (*postgres.GameRoom, error) {
	var room postgres.GameRoom
	result := db.Where("code = ?", code).First(&room)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("room not found")
		}
		return nil, result.Error
	}

	return &room, nil
}

func IsPlayerInRoom(db *gorm.DB, code string, playerID string) (bool, error) {
	var count int64
	err := db.Model(&postgres.Player{}).
		Where("room_code = ? AND id = ?", code, playerID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
