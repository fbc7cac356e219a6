package handlers

import (
	"net/http"

	"shiftsync/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the last health check of the backing stores.
func HealthHandler(c *gin.Context) {
	h := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": h.Redis, "mongo": h.Mongo})
}
