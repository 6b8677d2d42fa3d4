package engine

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/engine/mocks"
	"github.com/enersim/usage-alert-service/pkg/models"
	_ "github.com/enersim/usage-alert-service/pkg/testing"
)

func TestDispatch_DedupProperty(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	mockTransport := mocks.NewMockTransport(ctrl)
	engineObj.Transport = mockTransport

	simulatorID := uuid.NewString()

	low, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 70,
		IsActive:            true,
	})
	require.NoError(t, err)

	high, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// one message for the shared phone number, worded by the lowest threshold
	mockTransport.
		EXPECT().
		SendMessage(gomock.Any(), gomock.Eq("60123456789"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message string) (*models.SendResult, error) {
			assert.True(t, strings.Contains(message, "70.0%"), "expected lowest threshold wording, got: %s", message)
			return &models.SendResult{MessageID: uuid.NewString()}, nil
		}).
		Times(1)

	fires := []models.EligibleFire{
		{Trigger: *high, ActualPercentage: 92},
		{Trigger: *low, ActualPercentage: 92},
	}

	results, err := engineObj.Dispatcher.Dispatch(context.Background(), fires, models.NotificationTypeThreshold)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.Success)
		assert.Empty(t, result.ErrorMessage)
	}

	// both responsible triggers got their own history entry
	entries, err := engineObj.History.ListHistory(simulatorID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entryTriggers := map[string]bool{}
	for _, entry := range entries {
		entryTriggers[entry.TriggerID] = true
		assert.True(t, entry.Success)
		assert.Empty(t, entry.ErrorMessage)
		assert.Equal(t, models.NotificationTypeThreshold, entry.NotificationType)
		assert.Equal(t, "60123456789", entry.PhoneNumber)
		assert.Equal(t, 92.0, entry.ActualPercentage)
	}
	assert.True(t, entryTriggers[low.ID])
	assert.True(t, entryTriggers[high.ID])
}

func TestDispatch_SeparatePhonesSeparateSends(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	mockTransport := mocks.NewMockTransport(ctrl)
	engineObj.Transport = mockTransport

	simulatorID := uuid.NewString()

	first, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	second, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60198765432",
		ThresholdPercentage: 85,
		IsActive:            true,
	})
	require.NoError(t, err)

	mockTransport.
		EXPECT().
		SendMessage(gomock.Any(), gomock.Eq("60123456789"), gomock.Any()).
		Return(&models.SendResult{MessageID: uuid.NewString()}, nil).
		Times(1)
	mockTransport.
		EXPECT().
		SendMessage(gomock.Any(), gomock.Eq("60198765432"), gomock.Any()).
		Return(&models.SendResult{MessageID: uuid.NewString()}, nil).
		Times(1)

	fires := []models.EligibleFire{
		{Trigger: *first, ActualPercentage: 91},
		{Trigger: *second, ActualPercentage: 91},
	}

	results, err := engineObj.Dispatcher.Dispatch(context.Background(), fires, models.NotificationTypeThreshold)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDispatch_TransportFailureRecorded(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()
	setOpenSettings(t, engineObj)

	mockTransport := mocks.NewMockTransport(ctrl)
	engineObj.Transport = mockTransport

	simulatorID := uuid.NewString()
	trigger, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	mockTransport.
		EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &TransportError{Reason: "gateway unreachable"}).
		Times(1)

	results, err := engineObj.Dispatcher.Dispatch(
		context.Background(),
		[]models.EligibleFire{{Trigger: *trigger, ActualPercentage: 93}},
		models.NotificationTypeThreshold,
	)
	require.NoError(t, err, "transport failures are recorded, not returned")
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].ErrorMessage, "gateway unreachable")

	entries, err := engineObj.History.ListHistory(simulatorID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Contains(t, entries[0].ErrorMessage, "gateway unreachable")
}

func TestDispatch_NoTransportConfigured(t *testing.T) {
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

	results, err := engineObj.Dispatcher.Dispatch(
		context.Background(),
		[]models.EligibleFire{{Trigger: *trigger, ActualPercentage: 93}},
		models.NotificationTypeThreshold,
	)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].ErrorMessage, "transport not configured")
}

func TestDispatch_EmptyBatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	results, err := engineObj.Dispatcher.Dispatch(context.Background(), nil, models.NotificationTypeThreshold)
	require.NoError(t, err)
	assert.Len(t, results, 0)
}

func TestDispatch_ConcurrentSameTriggerSingleSend(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	_, err := engineObj.Settings.UpdateSettings(&models.SettingsInput{
		EnabledGlobally:       true,
		CooldownMinutes:       60,
		MaxDailyNotifications: 100,
	})
	require.NoError(t, err)

	mockTransport := mocks.NewMockTransport(ctrl)
	engineObj.Transport = mockTransport

	simulatorID := uuid.NewString()
	trigger, err := engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// both dispatches race for the same phone; the re-check under the phone
	// lock must let exactly one send through
	mockTransport.
		EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string) (*models.SendResult, error) {
			time.Sleep(10 * time.Millisecond)
			return &models.SendResult{MessageID: uuid.NewString()}, nil
		}).
		Times(1)

	fire := models.EligibleFire{Trigger: *trigger, ActualPercentage: 95}

	var wg sync.WaitGroup
	resultCounts := make(chan int, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := engineObj.Dispatcher.Dispatch(context.Background(), []models.EligibleFire{fire}, models.NotificationTypeThreshold)
			assert.NoError(t, err)
			resultCounts <- len(results)
		}()
	}
	wg.Wait()
	close(resultCounts)

	total := 0
	for count := range resultCounts {
		total += count
	}
	assert.Equal(t, 1, total, "exactly one dispatch should survive the re-check")

	entries, err := engineObj.History.ListHistory(simulatorID, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScenario_FiveReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false, false)
	defer ctrl.Finish()

	_, err := engineObj.Settings.UpdateSettings(&models.SettingsInput{
		EnabledGlobally:       true,
		CooldownMinutes:       60,
		MaxDailyNotifications: 5,
	})
	require.NoError(t, err)

	mockTransport := mocks.NewMockTransport(ctrl)
	engineObj.Transport = mockTransport

	simulatorID := uuid.NewString()
	_, err = engineObj.Trigger.CreateTrigger(simulatorID, &models.TriggerInput{
		PhoneNumber:         "60123456789",
		ThresholdPercentage: 80,
		IsActive:            true,
	})
	require.NoError(t, err)

	// the gateway is down for the whole run; failed attempts never start a
	// cooldown window, so both edge crossings produce an attempt
	mockTransport.
		EXPECT().
		SendMessage(gomock.Any(), gomock.Eq("60123456789"), gomock.Any()).
		Return(nil, &TransportError{Reason: "gateway unreachable"}).
		Times(2)

	var attempts []float64
	for _, reading := range []float64{50, 85, 90, 40, 95} {
		results, err := engineObj.Evaluator.ProcessReading(context.Background(), simulatorID, reading)
		require.NoError(t, err)
		if len(results) > 0 {
			attempts = append(attempts, reading)
		}
	}
	assert.Equal(t, []float64{85, 95}, attempts)

	entries, err := engineObj.History.ListHistory(simulatorID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, models.NotificationTypeThreshold, entry.NotificationType)
		assert.False(t, entry.Success)
	}
}
