package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/enersim/usage-alert-service/pkg/engine"
)

type RestfulServer struct {
	Server           *gin.Engine
	Engine           *engine.Engine
	RateLimiterStore *engine.RateLimiterStore
}

func (rs *RestfulServer) CheckSimulatorLimiter(simulatorID string) bool {
	return rs.RateLimiterStore.Allow(simulatorID)
}

func (rs *RestfulServer) SetLimiter(simulatorID string, simulatorRate float64, simulatorBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(simulatorID, rate.Limit(simulatorRate), simulatorBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rs.Server.GET("/status", rs.GetStatus)
	rs.Server.GET("/settings", rs.GetSettings)
	rs.Server.PUT("/settings", rs.PutSettings)

	simulators := rs.Server.Group("/simulators/:simulator_id")
	{
		simulators.POST("/readings", rs.PostReading)
		simulators.POST("/startup", rs.PostStartup)
		simulators.GET("/triggers", rs.ListTriggers)
		simulators.POST("/triggers", rs.CreateTrigger)
		simulators.GET("/history", rs.ListHistory)
		simulators.POST("/limiter", rs.PostLimiter)
	}

	rs.Server.PATCH("/triggers/:trigger_id", rs.UpdateTrigger)
	rs.Server.DELETE("/triggers/:trigger_id", rs.DeleteTrigger)
	rs.Server.POST("/history/:entry_id/retry", rs.RetryHistoryEntry)
}
