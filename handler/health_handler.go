package handler

import (
	"context"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process health plus the state of the backing stores.
func HealthHandler(c *gin.Context) {
	status := "ok"

	mongoStatus := "connected"
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if utils.MongoClient == nil || utils.MongoClient.Ping(ctx, nil) != nil {
		mongoStatus = "unreachable"
		status = "degraded"
	}

	redisStatus := "disabled"
	if services.GlobalSessionCache != nil {
		if services.GlobalSessionCache.IsConnected() {
			redisStatus = "connected"
		} else {
			redisStatus = "unreachable"
			status = "degraded"
		}
	}

	memUsed, memTotal, memPercent := utils.GetMemoryUsage()
	pool := utils.GetMongoMetrics()

	c.JSON(200, gin.H{
		"status": status,
		"mongo":  mongoStatus,
		"redis":  redisStatus,
		"mongo_pool": gin.H{
			"active":  pool.ActiveConnections,
			"created": pool.CreatedConnections,
			"closed":  pool.ClosedConnections,
		},
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_used":    memUsed,
			"memory_total":   memTotal,
			"memory_percent": memPercent,
		},
	})
}
