package models

import "time"

type NotificationType string

const (
	NotificationTypeThreshold NotificationType = "threshold"
	NotificationTypeStartup   NotificationType = "startup"
)

// Trigger binds a simulator to a phone number and a usage-percentage
// threshold. Readings at or above the threshold may fire a notification.
type Trigger struct {
	ID                  string `gorm:"primaryKey"`
	SimulatorID         string `gorm:"index"`
	PhoneNumber         string
	ThresholdPercentage float64
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NotificationHistoryEntry records one notification attempt, success or
// failure. PhoneNumber and ThresholdPercentage are snapshots taken at send
// time so the entry stays meaningful after its trigger is deleted.
type NotificationHistoryEntry struct {
	ID                  string `gorm:"primaryKey"`
	TriggerID           string `gorm:"index"`
	SimulatorID         string `gorm:"index"`
	PhoneNumber         string
	ThresholdPercentage float64
	ActualPercentage    float64
	Success             bool
	ErrorMessage        string
	NotificationType    NotificationType `gorm:"type:varchar(20);check:notification_type IN ('threshold','startup')"`
	SentAt              time.Time        `gorm:"index"`
}

// NotificationSettings is the process-wide configuration row (fixed id 1).
type NotificationSettings struct {
	ID                    uint `gorm:"primaryKey"`
	EnabledGlobally       bool
	CooldownMinutes       int
	MaxDailyNotifications int
}

// TriggerInput carries the caller-supplied fields for creating a trigger.
type TriggerInput struct {
	PhoneNumber         string
	ThresholdPercentage float64
	IsActive            bool
}

// TriggerUpdate carries a partial update; nil fields are left unchanged.
type TriggerUpdate struct {
	PhoneNumber         *string
	ThresholdPercentage *float64
	IsActive            *bool
}

// SettingsInput replaces the settings row wholesale.
type SettingsInput struct {
	EnabledGlobally       bool
	CooldownMinutes       int
	MaxDailyNotifications int
}

// EligibleFire pairs a trigger with the reading that qualified it.
type EligibleFire struct {
	Trigger          Trigger
	ActualPercentage float64
}

// DispatchResult is the observable outcome of one notification attempt.
type DispatchResult struct {
	TriggerID    string
	Success      bool
	ErrorMessage string
}

// SendResult is what the transport reports back for a delivered message.
type SendResult struct {
	MessageID string
}

// SystemStatus is the derived summary served to the dashboard.
type SystemStatus struct {
	WhatsappReady        bool
	TotalTriggers        int64
	ActiveTriggers       int64
	NotificationsEnabled bool
	RecentNotifications  int64
}
