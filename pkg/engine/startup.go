package engine

import (
	"context"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/metrics"
	"github.com/enersim/usage-alert-service/pkg/models"
	"go.uber.org/zap"
)

// notifyStartup tells every active trigger's recipient that the simulator's
// reading stream came up. No threshold comparison and no edge detection, but
// cooldown, daily cap and phone dedup apply exactly as for threshold fires.
func (e *Engine) notifyStartup(ctx context.Context, simulatorID string, mode string, simulatorName string) ([]models.DispatchResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertStartup),
	)

	metrics.StartupNotices.Inc()

	settings, err := e.getSettings()
	if err != nil {
		return nil, err
	}
	if !settings.EnabledGlobally {
		logger.Info("Notifications disabled globally, skipping startup notice", zap.String("simulatorId", simulatorID))
		return nil, nil
	}

	triggers, err := e.listActiveTriggers(simulatorID)
	if err != nil {
		return nil, err
	}
	if len(triggers) == 0 {
		return nil, nil
	}

	name := simulatorName
	if name == "" {
		name = simulatorID
	}

	logger.Info("Simulator stream started, notifying recipients",
		zap.String("simulatorId", simulatorID),
		zap.String("mode", mode),
		zap.Int("triggers", len(triggers)),
	)

	fires := common.Mapper(triggers, func(trigger models.Trigger) models.EligibleFire {
		return models.EligibleFire{Trigger: trigger}
	})

	return e.dispatch(ctx, fires, dispatchOptions{
		notificationType: models.NotificationTypeStartup,
		message:          composeStartupMessage(name, mode),
	})
}
