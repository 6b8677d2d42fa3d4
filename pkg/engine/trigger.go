package engine

import (
	"errors"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (e *Engine) createTrigger(simulatorID string, input *models.TriggerInput) (*models.Trigger, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertTrigger),
	)

	if err := validatePhoneNumber(input.PhoneNumber); err != nil {
		return nil, err
	}
	if err := validateThreshold(input.ThresholdPercentage); err != nil {
		return nil, err
	}

	trigger := models.Trigger{
		ID:                  uuid.NewString(),
		SimulatorID:         simulatorID,
		PhoneNumber:         input.PhoneNumber,
		ThresholdPercentage: input.ThresholdPercentage,
		IsActive:            input.IsActive,
	}

	logger.Info("Received trigger for simulator", zap.Reflect("trigger", trigger))

	if err := e.Db.Conn.Create(&trigger).Error; err != nil {
		return nil, &StorageError{Op: "create trigger", Err: err}
	}

	logger.Info("Trigger saved", zap.Reflect("trigger", trigger))

	return &trigger, nil
}

func (e *Engine) listTriggers(simulatorID string) ([]models.Trigger, error) {
	var triggers []models.Trigger
	err := e.Db.Conn.
		Where("simulator_id = ?", simulatorID).
		Order("created_at asc").
		Find(&triggers).Error
	if err != nil {
		return nil, &StorageError{Op: "list triggers", Err: err}
	}
	return triggers, nil
}

func (e *Engine) listActiveTriggers(simulatorID string) ([]models.Trigger, error) {
	var triggers []models.Trigger
	err := e.Db.Conn.
		Where("simulator_id = ? AND is_active = ?", simulatorID, true).
		Order("created_at asc").
		Find(&triggers).Error
	if err != nil {
		return nil, &StorageError{Op: "list active triggers", Err: err}
	}
	return triggers, nil
}

func (e *Engine) updateTrigger(triggerID string, update *models.TriggerUpdate) (*models.Trigger, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertTrigger),
	)

	var trigger models.Trigger
	if err := e.Db.Conn.First(&trigger, "id = ?", triggerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "trigger", ID: triggerID}
		}
		return nil, &StorageError{Op: "load trigger", Err: err}
	}

	if update.PhoneNumber != nil {
		if err := validatePhoneNumber(*update.PhoneNumber); err != nil {
			return nil, err
		}
		trigger.PhoneNumber = *update.PhoneNumber
	}
	if update.ThresholdPercentage != nil {
		if err := validateThreshold(*update.ThresholdPercentage); err != nil {
			return nil, err
		}
		trigger.ThresholdPercentage = *update.ThresholdPercentage
	}
	if update.IsActive != nil {
		trigger.IsActive = *update.IsActive
	}

	if err := e.Db.Conn.Save(&trigger).Error; err != nil {
		return nil, &StorageError{Op: "update trigger", Err: err}
	}

	logger.Info("Trigger updated", zap.Reflect("trigger", trigger))

	return &trigger, nil
}

func (e *Engine) deleteTrigger(triggerID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertTrigger),
	)

	res := e.Db.Conn.Where("id = ?", triggerID).Delete(&models.Trigger{})
	if res.Error != nil {
		return &StorageError{Op: "delete trigger", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Kind: "trigger", ID: triggerID}
	}

	logger.Info("Trigger deleted", zap.String("triggerId", triggerID))

	return nil
}

type ITriggerImpl struct {
	engine *Engine
}

func (it *ITriggerImpl) CreateTrigger(simulatorID string, input *models.TriggerInput) (*models.Trigger, error) {
	return it.engine.createTrigger(simulatorID, input)
}

func (it *ITriggerImpl) ListTriggers(simulatorID string) ([]models.Trigger, error) {
	return it.engine.listTriggers(simulatorID)
}

func (it *ITriggerImpl) ListActiveTriggers(simulatorID string) ([]models.Trigger, error) {
	return it.engine.listActiveTriggers(simulatorID)
}

func (it *ITriggerImpl) UpdateTrigger(triggerID string, update *models.TriggerUpdate) (*models.Trigger, error) {
	return it.engine.updateTrigger(triggerID, update)
}

func (it *ITriggerImpl) DeleteTrigger(triggerID string) error {
	return it.engine.deleteTrigger(triggerID)
}

func (e *Engine) GetITrigger() ITrigger {
	return &ITriggerImpl{engine: e}
}
