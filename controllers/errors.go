package controllers

import (
	"Yatzler/services/game_flow"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps game layer rejections to their HTTP status and a stable
// machine-readable code. Anything else is a 500.
func respondError(c *gin.Context, err error) {
	if apiErr, ok := err.(*game_flow.APIError); ok {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Code, "message": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL", "message": err.Error()})
}
