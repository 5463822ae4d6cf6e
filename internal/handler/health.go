package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is a liveness probe. The ledger is in-memory, so being able to
// answer is the whole check; snapshot storage is best-effort and not part
// of liveness.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
