package engine

import (
	"context"
	"errors"
	"time"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

// appendHistory fills in identity and timestamp, then persists the entry.
// Entries are append-only; nothing in the engine mutates or deletes them.
func (e *Engine) appendHistory(entry *models.NotificationHistoryEntry) error {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertEngine,
		zap.String(common.LoggerFieldAlertCategory, common.LoggerCategoryAlertHistory),
	)

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now()
	}

	if err := e.Db.Conn.Create(entry).Error; err != nil {
		return &StorageError{Op: "append history", Err: err}
	}

	logger.Info("History entry saved", zap.Reflect("entry", entry))

	return nil
}

func (e *Engine) listHistory(simulatorID string, limit int) ([]models.NotificationHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var entries []models.NotificationHistoryEntry
	err := e.Db.Conn.
		Where("simulator_id = ?", simulatorID).
		Order("sent_at desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, &StorageError{Op: "list history", Err: err}
	}
	return entries, nil
}

func (e *Engine) getHistoryEntry(entryID string) (*models.NotificationHistoryEntry, error) {
	var entry models.NotificationHistoryEntry
	if err := e.Db.Conn.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "history entry", ID: entryID}
		}
		return nil, &StorageError{Op: "load history entry", Err: err}
	}
	return &entry, nil
}

// countHistorySince counts every attempt for the trigger, failures included,
// in the rolling window starting at since.
func (e *Engine) countHistorySince(triggerID string, since time.Time) (int64, error) {
	var count int64
	err := e.Db.Conn.
		Model(&models.NotificationHistoryEntry{}).
		Where("trigger_id = ? AND sent_at >= ?", triggerID, since).
		Count(&count).Error
	if err != nil {
		return 0, &StorageError{Op: "count history", Err: err}
	}
	return count, nil
}

// lastSuccessTime returns nil when the pair has no successful send yet.
func (e *Engine) lastSuccessTime(triggerID string, phoneNumber string) (*time.Time, error) {
	var entry models.NotificationHistoryEntry
	err := e.Db.Conn.
		Where("trigger_id = ? AND phone_number = ? AND success = ?", triggerID, phoneNumber, true).
		Order("sent_at desc").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &StorageError{Op: "load last success", Err: err}
	}
	return &entry.SentAt, nil
}

type IHistoryImpl struct {
	engine *Engine
}

func (ih *IHistoryImpl) ListHistory(simulatorID string, limit int) ([]models.NotificationHistoryEntry, error) {
	return ih.engine.listHistory(simulatorID, limit)
}

func (ih *IHistoryImpl) GetHistoryEntry(entryID string) (*models.NotificationHistoryEntry, error) {
	return ih.engine.getHistoryEntry(entryID)
}

func (ih *IHistoryImpl) RetryHistoryEntry(ctx context.Context, entryID string) (*models.DispatchResult, error) {
	return ih.engine.retryHistoryEntry(ctx, entryID)
}

func (e *Engine) GetIHistory() IHistory {
	return &IHistoryImpl{engine: e}
}
