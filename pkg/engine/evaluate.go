package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/metrics"
	"github.com/enersim/usage-alert-service/pkg/models"
	"go.uber.org/zap"
)

// edgeState remembers the previous reading per (simulatorId, triggerId) so a
// trigger fires on the crossing, not on every sample above threshold. The
// memory is in-process only: a restart clears it and every trigger becomes
// edge-eligible again on the next qualifying reading, which is why cooldown
// and the daily cap exist as secondary guards.
type edgeState struct {
	mu   sync.Mutex
	last map[string]float64
}

func edgeKey(simulatorID string, triggerID string) string {
	return simulatorID + "/" + triggerID
}

// observe records value as the latest reading for the pair and reports the
// reading seen before it, if any.
func (s *edgeState) observe(simulatorID string, triggerID string, value float64) (prev float64, seen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		s.last = make(map[string]float64)
	}

	key := edgeKey(simulatorID, triggerID)
	prev, seen = s.last[key]
	s.last[key] = value
	return prev, seen
}

func (e *Engine) evaluateReading(simulatorID string, actualPercentage float64) ([]models.EligibleFire, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertEvaluate),
	)

	settings, err := e.getSettings()
	if err != nil {
		return nil, err
	}
	if !settings.EnabledGlobally {
		return nil, nil
	}

	triggers, err := e.listActiveTriggers(simulatorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cooldown := time.Duration(settings.CooldownMinutes) * time.Minute
	windowStart := now.Add(-24 * time.Hour)

	var fires []models.EligibleFire
	for _, trigger := range triggers {
		prev, seen := e.edges.observe(simulatorID, trigger.ID, actualPercentage)

		if actualPercentage < trigger.ThresholdPercentage {
			continue
		}
		if seen && prev >= trigger.ThresholdPercentage {
			// still above threshold, no new crossing
			continue
		}

		last, err := e.lastSuccessTime(trigger.ID, trigger.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if last != nil && now.Sub(*last) < cooldown {
			logger.Info("Trigger in cooldown, skipping",
				zap.String("triggerId", trigger.ID),
				zap.Time("lastSuccess", *last),
			)
			continue
		}

		count, err := e.countHistorySince(trigger.ID, windowStart)
		if err != nil {
			return nil, err
		}
		if count >= int64(settings.MaxDailyNotifications) {
			logger.Info("Trigger reached daily cap, skipping",
				zap.String("triggerId", trigger.ID),
				zap.Int64("attempts", count),
			)
			continue
		}

		fire := models.EligibleFire{Trigger: trigger, ActualPercentage: actualPercentage}

		logger.Info("Eligible fire found", zap.Reflect("fire", fire))

		fires = append(fires, fire)
	}

	metrics.EligibleFires.Add(float64(len(fires)))

	return fires, nil
}

func (e *Engine) processReading(ctx context.Context, simulatorID string, actualPercentage float64) ([]models.DispatchResult, error) {
	metrics.ReadingsProcessed.Inc()

	fires, err := e.evaluateReading(simulatorID, actualPercentage)
	if err != nil {
		return nil, err
	}
	if len(fires) == 0 {
		return nil, nil
	}

	if e.Dispatcher == nil {
		return nil, fmt.Errorf("dispatch service not available")
	}

	return e.Dispatcher.Dispatch(ctx, fires, models.NotificationTypeThreshold)
}

type IEvaluatorImpl struct {
	engine *Engine
}

func (ie *IEvaluatorImpl) ProcessReading(ctx context.Context, simulatorID string, actualPercentage float64) ([]models.DispatchResult, error) {
	return ie.engine.processReading(ctx, simulatorID, actualPercentage)
}

func (ie *IEvaluatorImpl) EvaluateReading(simulatorID string, actualPercentage float64) ([]models.EligibleFire, error) {
	return ie.engine.evaluateReading(simulatorID, actualPercentage)
}

func (e *Engine) GetIEvaluator() IEvaluator {
	return &IEvaluatorImpl{engine: e}
}
