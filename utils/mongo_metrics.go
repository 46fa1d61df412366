package utils

import (
	"sync/atomic"
)

// MongoMetrics is a snapshot of the driver's connection pool, fed by the
// pool monitor installed in InitMongoClient.
type MongoMetrics struct {
	ActiveConnections  int64
	CreatedConnections int64
	ClosedConnections  int64
}

var mongoMetrics MongoMetrics

func IncrementActiveConnections() {
	atomic.AddInt64(&mongoMetrics.ActiveConnections, 1)
}

func DecrementActiveConnections() {
	atomic.AddInt64(&mongoMetrics.ActiveConnections, -1)
}

func IncrementCreatedConnections() {
	atomic.AddInt64(&mongoMetrics.CreatedConnections, 1)
}

func IncrementClosedConnections() {
	atomic.AddInt64(&mongoMetrics.ClosedConnections, 1)
}

func GetMongoMetrics() MongoMetrics {
	return MongoMetrics{
		ActiveConnections:  atomic.LoadInt64(&mongoMetrics.ActiveConnections),
		CreatedConnections: atomic.LoadInt64(&mongoMetrics.CreatedConnections),
		ClosedConnections:  atomic.LoadInt64(&mongoMetrics.ClosedConnections),
	}
}
