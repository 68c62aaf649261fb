package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe. Render-style hosts ping it to keep the
// instance awake.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
