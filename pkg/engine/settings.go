package engine

import (
	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// Settings live in a single row; every evaluation reads it, only the
// settings-update operation writes it.
const settingsRowID uint = 1

const (
	defaultCooldownMinutes       = 60
	defaultMaxDailyNotifications = 10
)

func (e *Engine) getSettings() (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := e.Db.Conn.
		Where(&models.NotificationSettings{ID: settingsRowID}).
		Attrs(&models.NotificationSettings{
			EnabledGlobally:       true,
			CooldownMinutes:       defaultCooldownMinutes,
			MaxDailyNotifications: defaultMaxDailyNotifications,
		}).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, &StorageError{Op: "load settings", Err: err}
	}
	return &settings, nil
}

func (e *Engine) updateSettings(input *models.SettingsInput) (*models.NotificationSettings, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertSettings),
	)

	if err := validateSettingsInput(input); err != nil {
		return nil, err
	}

	settings := models.NotificationSettings{
		ID:                    settingsRowID,
		EnabledGlobally:       input.EnabledGlobally,
		CooldownMinutes:       input.CooldownMinutes,
		MaxDailyNotifications: input.MaxDailyNotifications,
	}

	logger.Info("Received settings update", zap.Reflect("settings", settings))

	err := e.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&settings).Error
	if err != nil {
		return nil, &StorageError{Op: "save settings", Err: err}
	}

	logger.Info("Upserted notification settings", zap.Reflect("settings", settings))

	return &settings, nil
}

type ISettingsImpl struct {
	engine *Engine
}

func (is *ISettingsImpl) GetSettings() (*models.NotificationSettings, error) {
	return is.engine.getSettings()
}

func (is *ISettingsImpl) UpdateSettings(input *models.SettingsInput) (*models.NotificationSettings, error) {
	return is.engine.updateSettings(input)
}

func (e *Engine) GetISettings() ISettings {
	return &ISettingsImpl{engine: e}
}
