package engine

import (
	"context"
	"time"

	"github.com/enersim/usage-alert-service/pkg/models"
	"github.com/patrickmn/go-cache"
)

const (
	systemStatusCacheKey = "system_status"
	systemStatusTTL      = 10 * time.Second
)

// systemStatus combines settings, trigger counts, gateway readiness and a
// recent-history count into the summary the dashboard polls. The result is
// cached briefly since the dashboard polls faster than the numbers move.
func (e *Engine) systemStatus(ctx context.Context) (*models.SystemStatus, error) {
	e.statusOnce.Do(func() {
		e.statusCache = cache.New(systemStatusTTL, time.Minute)
	})

	if cached, found := e.statusCache.Get(systemStatusCacheKey); found {
		status := cached.(models.SystemStatus)
		return &status, nil
	}

	settings, err := e.getSettings()
	if err != nil {
		return nil, err
	}

	var totalTriggers int64
	if err := e.Db.Conn.Model(&models.Trigger{}).Count(&totalTriggers).Error; err != nil {
		return nil, &StorageError{Op: "count triggers", Err: err}
	}

	var activeTriggers int64
	if err := e.Db.Conn.Model(&models.Trigger{}).Where("is_active = ?", true).Count(&activeTriggers).Error; err != nil {
		return nil, &StorageError{Op: "count active triggers", Err: err}
	}

	var recentNotifications int64
	err = e.Db.Conn.
		Model(&models.NotificationHistoryEntry{}).
		Where("sent_at >= ?", time.Now().Add(-24*time.Hour)).
		Count(&recentNotifications).Error
	if err != nil {
		return nil, &StorageError{Op: "count recent history", Err: err}
	}

	status := models.SystemStatus{
		WhatsappReady:        e.Transport != nil && e.Transport.Ready(ctx),
		TotalTriggers:        totalTriggers,
		ActiveTriggers:       activeTriggers,
		NotificationsEnabled: settings.EnabledGlobally,
		RecentNotifications:  recentNotifications,
	}

	e.statusCache.Set(systemStatusCacheKey, status, cache.DefaultExpiration)

	return &status, nil
}
