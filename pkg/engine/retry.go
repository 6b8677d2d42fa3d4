package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// retryHistoryEntry re-dispatches one recorded attempt as a fresh
// single-trigger batch. Retries are operator-initiated corrective action, so
// they are exempt from cooldown; the daily cap still applies and a capped
// retry is reported back without writing a history entry.
func (e *Engine) retryHistoryEntry(ctx context.Context, entryID string) (*models.DispatchResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertDispatch),
	)

	entry, err := e.getHistoryEntry(entryID)
	if err != nil {
		return nil, err
	}

	// prefer the live trigger so edits since the original attempt take
	// effect; fall back to the entry's snapshot when it was deleted
	trigger := models.Trigger{
		ID:                  entry.TriggerID,
		SimulatorID:         entry.SimulatorID,
		PhoneNumber:         entry.PhoneNumber,
		ThresholdPercentage: entry.ThresholdPercentage,
		IsActive:            true,
	}

	var live models.Trigger
	if err := e.Db.Conn.First(&live, "id = ?", entry.TriggerID).Error; err == nil {
		trigger = live
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StorageError{Op: "load trigger", Err: err}
	}

	logger.Info("Retrying notification",
		zap.String("entryId", entry.ID),
		zap.String("triggerId", trigger.ID),
		zap.String("phoneNumber", trigger.PhoneNumber),
	)

	var message string
	switch entry.NotificationType {
	case models.NotificationTypeStartup:
		message = fmt.Sprintf("⚡ Simulator %s is running. Usage alerts are active.", entry.SimulatorID)
	default:
		message = composeThresholdMessage(entry.SimulatorID, trigger.ThresholdPercentage, entry.ActualPercentage)
	}

	fire := models.EligibleFire{Trigger: trigger, ActualPercentage: entry.ActualPercentage}

	results, err := e.dispatch(ctx, []models.EligibleFire{fire}, dispatchOptions{
		notificationType: entry.NotificationType,
		message:          message,
		skipCooldown:     true,
	})
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return &models.DispatchResult{
			TriggerID:    trigger.ID,
			Success:      false,
			ErrorMessage: "daily notification cap reached",
		}, nil
	}

	return &results[0], nil
}
