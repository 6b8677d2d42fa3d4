package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/enersim/usage-alert-service/pkg/engine"
	"github.com/enersim/usage-alert-service/pkg/metrics"
	"github.com/enersim/usage-alert-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type ReadingRequest struct {
	ActualPercentage float64 `json:"actual_percentage"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"ActualPercentage": z.Float64().Required(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	simulatorID := c.Param("simulator_id")

	if !rs.CheckSimulatorLimiter(simulatorID) {
		metrics.RateLimitedRequests.Inc()
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest

	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	results, err := rs.Engine.Evaluator.ProcessReading(c.Request.Context(), simulatorID, req.ActualPercentage)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

type StartupRequest struct {
	Mode          string `json:"mode"`
	SimulatorName string `json:"simulator_name"`
}

var startupRequestSchema = z.Struct(z.Shape{
	"Mode":          z.String().Min(1).Required(),
	"SimulatorName": z.String(),
})

func (rs *RestfulServer) PostStartup(c *gin.Context) {
	simulatorID := c.Param("simulator_id")

	if !rs.CheckSimulatorLimiter(simulatorID) {
		metrics.RateLimitedRequests.Inc()
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req StartupRequest
	if err := startupRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	results, err := rs.Engine.Dispatcher.NotifyStartup(c.Request.Context(), simulatorID, req.Mode, req.SimulatorName)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

type TriggerRequest struct {
	PhoneNumber         string  `json:"phone_number"`
	ThresholdPercentage float64 `json:"threshold_percentage"`
	IsActive            bool    `json:"is_active"`
}

var triggerRequestSchema = z.Struct(z.Shape{
	"PhoneNumber":         z.String().Min(1).Required(),
	"ThresholdPercentage": z.Float64().Required(),
	"IsActive":            z.Bool().Required(),
})

func (rs *RestfulServer) CreateTrigger(c *gin.Context) {
	simulatorID := c.Param("simulator_id")

	if !rs.CheckSimulatorLimiter(simulatorID) {
		metrics.RateLimitedRequests.Inc()
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req TriggerRequest
	if err := triggerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	trigger, err := rs.Engine.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         req.PhoneNumber,
		ThresholdPercentage: req.ThresholdPercentage,
		IsActive:            req.IsActive,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, trigger)
}

func (rs *RestfulServer) ListTriggers(c *gin.Context) {
	simulatorID := c.Param("simulator_id")

	if !rs.CheckSimulatorLimiter(simulatorID) {
		metrics.RateLimitedRequests.Inc()
		c.Status(http.StatusTooManyRequests)
		return
	}

	triggers, err := rs.Engine.Trigger.ListTriggers(simulatorID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, triggers)
}

type TriggerUpdateRequest struct {
	PhoneNumber         *string  `json:"phone_number"`
	ThresholdPercentage *float64 `json:"threshold_percentage"`
	IsActive            *bool    `json:"is_active"`
}

func (rs *RestfulServer) UpdateTrigger(c *gin.Context) {
	triggerID := c.Param("trigger_id")

	// Partial update: absent fields stay nil and keep their stored value, so
	// this one binds with gin instead of a zog schema.
	var req TriggerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trigger, err := rs.Engine.Trigger.UpdateTrigger(triggerID, &models.TriggerUpdate{
		PhoneNumber:         req.PhoneNumber,
		ThresholdPercentage: req.ThresholdPercentage,
		IsActive:            req.IsActive,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, trigger)
}

func (rs *RestfulServer) DeleteTrigger(c *gin.Context) {
	triggerID := c.Param("trigger_id")

	if err := rs.Engine.Trigger.DeleteTrigger(triggerID); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ListHistory(c *gin.Context) {
	simulatorID := c.Param("simulator_id")

	if !rs.CheckSimulatorLimiter(simulatorID) {
		metrics.RateLimitedRequests.Inc()
		c.Status(http.StatusTooManyRequests)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	var filters []engine.HistoryFilter
	if raw := c.Query("status"); raw != "" {
		success, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be a boolean"})
			return
		}
		filters = append(filters, engine.WithStatus(success))
	}
	if raw := c.Query("type"); raw != "" {
		filters = append(filters, engine.WithType(models.NotificationType(raw)))
	}
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be an RFC3339 timestamp"})
			return
		}
		filters = append(filters, engine.SentSince(since))
	}

	entries, err := rs.Engine.History.ListHistory(simulatorID, limit)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, engine.FilterHistory(entries, filters...))
}

func (rs *RestfulServer) RetryHistoryEntry(c *gin.Context) {
	entryID := c.Param("entry_id")

	result, err := rs.Engine.History.RetryHistoryEntry(c.Request.Context(), entryID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) GetSettings(c *gin.Context) {
	settings, err := rs.Engine.Settings.GetSettings()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

type SettingsRequest struct {
	EnabledGlobally       bool `json:"enabled_globally"`
	CooldownMinutes       int  `json:"cooldown_minutes"`
	MaxDailyNotifications int  `json:"max_daily_notifications"`
}

var settingsRequestSchema = z.Struct(z.Shape{
	"EnabledGlobally":       z.Bool().Required(),
	"CooldownMinutes":       z.Int().Required(),
	"MaxDailyNotifications": z.Int().Required(),
})

func (rs *RestfulServer) PutSettings(c *gin.Context) {
	var req SettingsRequest
	if err := settingsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	settings, err := rs.Engine.Settings.UpdateSettings(&models.SettingsInput{
		EnabledGlobally:       req.EnabledGlobally,
		CooldownMinutes:       req.CooldownMinutes,
		MaxDailyNotifications: req.MaxDailyNotifications,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (rs *RestfulServer) GetStatus(c *gin.Context) {
	status, err := rs.Engine.Dispatcher.SystemStatus(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	simulatorID := c.Param("simulator_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(simulatorID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func renderError(c *gin.Context, err error) {
	var validationErr *engine.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	var notFoundErr *engine.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
