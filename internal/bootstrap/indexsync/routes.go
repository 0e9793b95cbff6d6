package indexsync

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-ledger-system/internal/api/rest"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/search"
)

// SetupRoutes настраивает маршруты для index sync service:
// прямые чтения индекса и его обслуживание
func SetupRoutes(router *gin.Engine, index *search.Client) {
	api := router.Group("/api/v1")
	{
		api.GET("/index/entries/:id", func(c *gin.Context) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
				return
			}

			entry, err := index.GetEntry(id)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read index"})
				return
			}
			if entry == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry is not indexed"})
				return
			}
			c.JSON(http.StatusOK, entry)
		})

		api.GET("/index/pending-count", func(c *gin.Context) {
			count, err := index.GetPendingCount()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read index"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"pending_count": count})
		})

		// Полная очистка индекса; журнал в SQLite остается нетронутым
		api.DELETE("/index", func(c *gin.Context) {
			if err := index.ClearIndex(); err != nil {
				logger.Log.Warn("failed to clear search index", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear index"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Search index cleared"})
		})
	}

	// Используем общие endpoints (health, events, stats)
	rest.SetupCommonEndpoints(router)
}
