package engine

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/enersim/usage-alert-service/pkg/db"
	"github.com/enersim/usage-alert-service/pkg/engine/mocks"
	"go.uber.org/mock/gomock"
)

func GetMockEngineWithMemorySqliteDialector(t *testing.T, useMockTrigger, useMockHistory, useMockSettings, useMockEvaluator, useMockDispatcher bool) (
	*gomock.Controller,
	*Engine,
	*mocks.MockITrigger,
	*mocks.MockIHistory,
	*mocks.MockISettings,
	*mocks.MockIEvaluator,
	*mocks.MockIDispatcher,
) {
	ctrl := gomock.NewController(t)

	mockITrigger := mocks.NewMockITrigger(ctrl)
	mockIHistory := mocks.NewMockIHistory(ctrl)
	mockISettings := mocks.NewMockISettings(ctrl)
	mockIEvaluator := mocks.NewMockIEvaluator(ctrl)
	mockIDispatcher := mocks.NewMockIDispatcher(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	engineInstance := (&Engine{Db: *dbInstance})

	triggerService := engineInstance.GetITrigger()
	if useMockTrigger {
		triggerService = mockITrigger
	}

	historyService := engineInstance.GetIHistory()
	if useMockHistory {
		historyService = mockIHistory
	}

	settingsService := engineInstance.GetISettings()
	if useMockSettings {
		settingsService = mockISettings
	}

	evaluatorService := engineInstance.GetIEvaluator()
	if useMockEvaluator {
		evaluatorService = mockIEvaluator
	}

	dispatcherService := engineInstance.GetIDispatcher()
	if useMockDispatcher {
		dispatcherService = mockIDispatcher
	}

	engineInstance.WithServices(ServiceOpts{
		Trigger:    triggerService,
		History:    historyService,
		Settings:   settingsService,
		Evaluator:  evaluatorService,
		Dispatcher: dispatcherService,
	})

	return ctrl, engineInstance, mockITrigger, mockIHistory, mockISettings, mockIEvaluator, mockIDispatcher
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
