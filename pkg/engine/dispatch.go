package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/metrics"
	"github.com/enersim/usage-alert-service/pkg/models"
	"go.uber.org/zap"
)

// sendGuard hands out one mutex per phone number. Holding it across the
// cooldown re-check, the transport call and the history writes keeps two
// concurrent dispatches for the same recipient from both passing the check.
type sendGuard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (g *sendGuard) forPhone(phoneNumber string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.locks == nil {
		g.locks = make(map[string]*sync.Mutex)
	}

	lock, exists := g.locks[phoneNumber]
	if !exists {
		lock = &sync.Mutex{}
		g.locks[phoneNumber] = lock
	}
	return lock
}

type dispatchOptions struct {
	notificationType models.NotificationType
	// message overrides the composed threshold wording when non-empty.
	message string
	// skipCooldown lets operator-initiated retries through the cooldown
	// re-check; the daily cap still applies.
	skipCooldown bool
}

func composeThresholdMessage(simulatorID string, thresholdPercentage float64, actualPercentage float64) string {
	return fmt.Sprintf(
		"🚨 Energy usage alert for simulator %s: usage %.1f%% reached threshold %.1f%%",
		simulatorID, actualPercentage, thresholdPercentage,
	)
}

func composeStartupMessage(simulatorName string, mode string) string {
	return fmt.Sprintf("⚡ Simulator %s started in %s mode. Usage alerts are active.", simulatorName, mode)
}

func (e *Engine) dispatch(ctx context.Context, fires []models.EligibleFire, opts dispatchOptions) ([]models.DispatchResult, error) {
	if len(fires) == 0 {
		return nil, nil
	}

	settings, err := e.getSettings()
	if err != nil {
		return nil, err
	}

	// one send per unique phone number, however many triggers resolve to it
	groups := common.Reducer(fires, func(acc map[string][]models.EligibleFire, fire models.EligibleFire) map[string][]models.EligibleFire {
		acc[fire.Trigger.PhoneNumber] = append(acc[fire.Trigger.PhoneNumber], fire)
		return acc
	}, map[string][]models.EligibleFire{})

	phones := make([]string, 0, len(groups))
	for phone := range groups {
		phones = append(phones, phone)
	}
	sort.Strings(phones)

	var results []models.DispatchResult
	for _, phone := range phones {
		results = append(results, e.dispatchToPhone(ctx, phone, groups[phone], settings, opts)...)
	}

	return results, nil
}

// dispatchToPhone sends one message for the group and records one history
// entry per responsible trigger. Transport failures are recorded, never
// returned: a failed send is a failed attempt, not a failed dispatch.
func (e *Engine) dispatchToPhone(
	ctx context.Context,
	phone string,
	group []models.EligibleFire,
	settings *models.NotificationSettings,
	opts dispatchOptions,
) []models.DispatchResult {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertDispatch),
	)

	lock := e.sends.forPhone(phone)
	lock.Lock()
	defer lock.Unlock()

	// re-check rate limits under the lock; fires that lost the race are
	// dropped without a history entry, as if evaluation never saw them
	now := time.Now()
	cooldown := time.Duration(settings.CooldownMinutes) * time.Minute
	windowStart := now.Add(-24 * time.Hour)

	var eligible []models.EligibleFire
	for _, fire := range group {
		if !opts.skipCooldown {
			last, err := e.lastSuccessTime(fire.Trigger.ID, phone)
			if err != nil {
				logger.Error("Cooldown re-check failed, dropping fire", zap.Error(err), zap.String("triggerId", fire.Trigger.ID))
				continue
			}
			if last != nil && now.Sub(*last) < cooldown {
				continue
			}
		}

		count, err := e.countHistorySince(fire.Trigger.ID, windowStart)
		if err != nil {
			logger.Error("Daily cap re-check failed, dropping fire", zap.Error(err), zap.String("triggerId", fire.Trigger.ID))
			continue
		}
		if count >= int64(settings.MaxDailyNotifications) {
			continue
		}

		eligible = append(eligible, fire)
	}

	if len(eligible) == 0 {
		return nil
	}

	// the lowest threshold is the most specific rule, its wording wins
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].Trigger.ThresholdPercentage < eligible[j].Trigger.ThresholdPercentage
	})
	primary := eligible[0]

	message := opts.message
	if message == "" {
		message = composeThresholdMessage(primary.Trigger.SimulatorID, primary.Trigger.ThresholdPercentage, primary.ActualPercentage)
	}

	var sendErr error
	if e.Transport == nil {
		sendErr = &TransportError{Reason: "transport not configured"}
	} else {
		start := time.Now()
		var sendResult *models.SendResult
		sendResult, sendErr = e.Transport.SendMessage(ctx, phone, message)
		metrics.SendDuration.Observe(time.Since(start).Seconds())

		if sendErr == nil {
			logger.Info("Notification sent",
				zap.String("phoneNumber", phone),
				zap.String("messageId", sendResult.MessageID),
				zap.Int("triggers", len(eligible)),
			)
		}
	}

	success := sendErr == nil
	errorMessage := ""
	if sendErr != nil {
		errorMessage = sendErr.Error()
		logger.Warn("Notification send failed",
			zap.String("phoneNumber", phone),
			zap.Int("triggers", len(eligible)),
			zap.Error(sendErr),
		)
	}

	metrics.DedupSuppressed.Add(float64(len(eligible) - 1))

	statusLabel := "success"
	if !success {
		statusLabel = "failure"
	}
	metrics.NotificationsRecorded.WithLabelValues(string(opts.notificationType), statusLabel).Add(float64(len(eligible)))

	entries := common.Mapper(eligible, func(fire models.EligibleFire) models.NotificationHistoryEntry {
		return models.NotificationHistoryEntry{
			TriggerID:           fire.Trigger.ID,
			SimulatorID:         fire.Trigger.SimulatorID,
			PhoneNumber:         phone,
			ThresholdPercentage: fire.Trigger.ThresholdPercentage,
			ActualPercentage:    fire.ActualPercentage,
			Success:             success,
			ErrorMessage:        errorMessage,
			NotificationType:    opts.notificationType,
			SentAt:              now,
		}
	})

	for i := range entries {
		// the send already happened; a failed history write is logged and
		// swallowed so the remaining entries still get recorded
		if err := e.appendHistory(&entries[i]); err != nil {
			logger.Error("History entry not saved", zap.Error(err), zap.Reflect("entry", entries[i]))
		}
	}

	return common.Mapper(eligible, func(fire models.EligibleFire) models.DispatchResult {
		return models.DispatchResult{
			TriggerID:    fire.Trigger.ID,
			Success:      success,
			ErrorMessage: errorMessage,
		}
	})
}

type IDispatcherImpl struct {
	engine *Engine
}

func (id *IDispatcherImpl) Dispatch(ctx context.Context, fires []models.EligibleFire, notificationType models.NotificationType) ([]models.DispatchResult, error) {
	return id.engine.dispatch(ctx, fires, dispatchOptions{notificationType: notificationType})
}

func (id *IDispatcherImpl) NotifyStartup(ctx context.Context, simulatorID string, mode string, simulatorName string) ([]models.DispatchResult, error) {
	return id.engine.notifyStartup(ctx, simulatorID, mode, simulatorName)
}

func (id *IDispatcherImpl) SystemStatus(ctx context.Context) (*models.SystemStatus, error) {
	return id.engine.systemStatus(ctx)
}

func (e *Engine) GetIDispatcher() IDispatcher {
	return &IDispatcherImpl{engine: e}
}
