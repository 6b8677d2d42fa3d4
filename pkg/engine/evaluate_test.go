package engine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/models"
	_ "github.com/enersim/usage-alert-service/pkg/testing"
)

func setOpenSettings(t *testing.T, engineObj *Engine) {
	t.Helper()
	_, err := engineObj.Settings.UpdateSettings(&models.SettingsInput{
		EnabledGlobally:       true,
		CooldownMinutes:       0,
		MaxDailyNotifications: 100,
	})
	require.NoError(t, err)
}

func TestEvaluateReading_BelowThresholdNeverFires(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	simulatorID := uuid.NewString()
	_, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	for _, reading := range []float64{0, 10, 50, 79.9} {
		fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, reading)
		require.NoError(t, err)
		assert.Len(t, fires, 0)
	}
}

func TestEvaluateReading_EdgeProperty(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	simulatorID := uuid.NewString()
	_, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// below, above, above, below, above: only the two crossings fire
	readings := []float64{50, 85, 90, 40, 95}
	var fireCounts []int
	for _, reading := range readings {
		fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, reading)
		require.NoError(t, err)
		fireCounts = append(fireCounts, len(fires))
	}
	assert.Equal(t, []int{0, 1, 0, 0, 1}, fireCounts)
}

func TestEvaluateReading_FirstReadingAboveThresholdFires(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	simulatorID := uuid.NewString()
	trigger, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// no previous reading in this process lifetime, an at-threshold reading
	// fires immediately
	fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, 80)
	require.NoError(t, err)
	require.Len(t, fires, 1)
	assert.Equal(t, trigger.ID, fires[0].Trigger.ID)
	assert.Equal(t, 80.0, fires[0].ActualPercentage)
}

func TestEvaluateReading_DisabledGlobally(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	_, err := engineObj.Settings.UpdateSettings(&models.SettingsInput{
		EnabledGlobally:       false,
		CooldownMinutes:       0,
		MaxDailyNotifications: 100,
	})
	require.NoError(t, err)

	simulatorID := uuid.NewString()
	_, err = engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, 99)
	require.NoError(t, err)
	assert.Len(t, fires, 0)
}

func TestEvaluateReading_InactiveTriggerNeverFires(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	simulatorID := uuid.NewString()
	_, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            false,
	})
	require.NoError(t, err)

	fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, 99)
	require.NoError(t, err)
	assert.Len(t, fires, 0)
}

func TestEvaluateReading_CooldownProperty(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	_, err := engineObj.Settings.UpdateSettings(&models.SettingsInput{
		EnabledGlobally:       true,
		CooldownMinutes:       60,
		MaxDailyNotifications: 100,
	})
	require.NoError(t, err)

	simulatorID := uuid.NewString()
	trigger, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// a successful send 10 minutes ago is inside the 60 minute window
	require.NoError(t, engineObj.appendHistory(&models.NotificationHistoryEntry{
		TriggerID:        trigger.ID,
		SimulatorID:      simulatorID,
		PhoneNumber:      trigger.PhoneNumber,
		Success:          true,
		NotificationType: models.NotificationTypeThreshold,
		SentAt:           time.Now().Add(-10 * time.Minute),
	}))

	fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, 95)
	require.NoError(t, err)
	assert.Len(t, fires, 0)

	// a success outside the window no longer blocks; re-arm the edge first
	err = engineObj.Db.Conn.Model(&models.NotificationHistoryEntry{}).
		Where("trigger_id = ?", trigger.ID).
		Update("sent_at", time.Now().Add(-2*time.Hour)).Error
	require.NoError(t, err)

	_, err = engineObj.Evaluator.EvaluateReading(simulatorID, 40)
	require.NoError(t, err)

	fires, err = engineObj.Evaluator.EvaluateReading(simulatorID, 95)
	require.NoError(t, err)
	assert.Len(t, fires, 1)
}

func TestEvaluateReading_DailyCapProperty(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	_, err := engineObj.Settings.UpdateSettings(&models.SettingsInput{
		EnabledGlobally:       true,
		CooldownMinutes:       0,
		MaxDailyNotifications: 2,
	})
	require.NoError(t, err)

	simulatorID := uuid.NewString()
	trigger, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// two attempts in the window, one of them failed: both count
	now := time.Now()
	for _, entry := range []models.NotificationHistoryEntry{
		{TriggerID: trigger.ID, SimulatorID: simulatorID, PhoneNumber: trigger.PhoneNumber, Success: true, NotificationType: models.NotificationTypeThreshold, SentAt: now.Add(-2 * time.Hour)},
		{TriggerID: trigger.ID, SimulatorID: simulatorID, PhoneNumber: trigger.PhoneNumber, Success: false, ErrorMessage: "boom", NotificationType: models.NotificationTypeThreshold, SentAt: now.Add(-time.Hour)},
	} {
		e := entry
		require.NoError(t, engineObj.appendHistory(&e))
	}

	fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, 95)
	require.NoError(t, err)
	assert.Len(t, fires, 0)

	// the oldest attempt aging out of the rolling window frees one slot
	err = engineObj.Db.Conn.Model(&models.NotificationHistoryEntry{}).
		Where("trigger_id = ? AND success = ?", trigger.ID, true).
		Update("sent_at", now.Add(-25*time.Hour)).Error
	require.NoError(t, err)

	_, err = engineObj.Evaluator.EvaluateReading(simulatorID, 40)
	require.NoError(t, err)

	fires, err = engineObj.Evaluator.EvaluateReading(simulatorID, 95)
	require.NoError(t, err)
	assert.Len(t, fires, 1)
}

func TestProcessReading_CallsDispatcher(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, mockIDispatcher := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, true)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	simulatorID := uuid.NewString()
	trigger, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	mockIDispatcher.
		EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Eq(models.NotificationTypeThreshold)).
		DoAndReturn(func(_ context.Context, fires []models.EligibleFire, _ models.NotificationType) ([]models.DispatchResult, error) {
			require.Len(t, fires, 1)
			assert.Equal(t, trigger.ID, fires[0].Trigger.ID)
			return []models.DispatchResult{{TriggerID: trigger.ID, Success: true}}, nil
		}).
		Times(1)

	results, err := engineObj.Evaluator.ProcessReading(context.Background(), simulatorID, 92)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

func TestProcessReading_NoFiresNoDispatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, true)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	// no triggers for this simulator, the dispatcher must not be called
	results, err := engineObj.Evaluator.ProcessReading(context.Background(), uuid.NewString(), 92)
	require.NoError(t, err)
	assert.Len(t, results, 0)
}

func TestProcessReading_NilDispatcher(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	simulatorID := uuid.NewString()
	_, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// force the dispatch service to be nil to cause dispatch not available
	engineObj.Dispatcher = nil

	_, err = engineObj.Evaluator.ProcessReading(context.Background(), simulatorID, 92)
	require.Error(t, err, "dispatch service not available")
}

func TestEvaluateReading_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	simulatorID := uuid.NewString()
	trigger, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	fires, err := engineObj.Evaluator.EvaluateReading(simulatorID, 95)
	require.NoError(t, err)
	require.Len(t, fires, 1)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "evaluate" &&
			lobj["logger"] == "alert_engine" &&
			lobj["msg"] == "Eligible fire found" &&
			lobj["fire"].(map[string]any)["ActualPercentage"] == 95.0 &&
			lobj["fire"].(map[string]any)["Trigger"].(map[string]any)["ID"] == trigger.ID {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}
