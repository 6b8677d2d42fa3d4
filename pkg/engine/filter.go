package engine

import (
	"time"

	"github.com/enersim/usage-alert-service/pkg/models"
)

// HistoryFilter is a predicate over history entries, applied in memory so
// callers can slice a listing without new store queries.
type HistoryFilter func(models.NotificationHistoryEntry) bool

func FilterHistory(entries []models.NotificationHistoryEntry, filters ...HistoryFilter) []models.NotificationHistoryEntry {
	filtered := make([]models.NotificationHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		keep := true
		for _, filter := range filters {
			if !filter(entry) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func WithStatus(success bool) HistoryFilter {
	return func(entry models.NotificationHistoryEntry) bool {
		return entry.Success == success
	}
}

func WithType(notificationType models.NotificationType) HistoryFilter {
	return func(entry models.NotificationHistoryEntry) bool {
		return entry.NotificationType == notificationType
	}
}

func SentSince(since time.Time) HistoryFilter {
	return func(entry models.NotificationHistoryEntry) bool {
		return !entry.SentAt.Before(since)
	}
}
