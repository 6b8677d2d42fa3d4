package engine

import (
	"context"
	"sync"

	"github.com/enersim/usage-alert-service/pkg/db"
	"github.com/enersim/usage-alert-service/pkg/models"
	"github.com/patrickmn/go-cache"
)

type ITrigger interface {
	CreateTrigger(simulatorID string, input *models.TriggerInput) (*models.Trigger, error)
	ListTriggers(simulatorID string) ([]models.Trigger, error)
	ListActiveTriggers(simulatorID string) ([]models.Trigger, error)
	UpdateTrigger(triggerID string, update *models.TriggerUpdate) (*models.Trigger, error)
	DeleteTrigger(triggerID string) error
}

type IHistory interface {
	ListHistory(simulatorID string, limit int) ([]models.NotificationHistoryEntry, error)
	GetHistoryEntry(entryID string) (*models.NotificationHistoryEntry, error)
	RetryHistoryEntry(ctx context.Context, entryID string) (*models.DispatchResult, error)
}

type ISettings interface {
	GetSettings() (*models.NotificationSettings, error)
	UpdateSettings(input *models.SettingsInput) (*models.NotificationSettings, error)
}

type IEvaluator interface {
	ProcessReading(ctx context.Context, simulatorID string, actualPercentage float64) ([]models.DispatchResult, error)
	EvaluateReading(simulatorID string, actualPercentage float64) ([]models.EligibleFire, error)
}

type IDispatcher interface {
	Dispatch(ctx context.Context, fires []models.EligibleFire, notificationType models.NotificationType) ([]models.DispatchResult, error)
	NotifyStartup(ctx context.Context, simulatorID string, mode string, simulatorName string) ([]models.DispatchResult, error)
	SystemStatus(ctx context.Context) (*models.SystemStatus, error)
}

type Engine struct {
	Db        db.DB
	Transport Transport

	Trigger    ITrigger
	History    IHistory
	Settings   ISettings
	Evaluator  IEvaluator
	Dispatcher IDispatcher

	edges edgeState
	sends sendGuard

	statusOnce  sync.Once
	statusCache *cache.Cache
}

type ServiceOpts struct {
	Trigger    ITrigger
	History    IHistory
	Settings   ISettings
	Evaluator  IEvaluator
	Dispatcher IDispatcher
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Trigger != nil {
		e.Trigger = opts.Trigger
	}
	if opts.History != nil {
		e.History = opts.History
	}
	if opts.Settings != nil {
		e.Settings = opts.Settings
	}
	if opts.Evaluator != nil {
		e.Evaluator = opts.Evaluator
	}
	if opts.Dispatcher != nil {
		e.Dispatcher = opts.Dispatcher
	}
	return e
}
