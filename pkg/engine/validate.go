package engine

import (
	"fmt"
	"regexp"

	"github.com/enersim/usage-alert-service/pkg/models"
)

// Phone numbers are normalized international-format digit strings, no
// leading plus, no separators.
var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10,15}$`)

const maxThresholdPercentage = 200.0

func validatePhoneNumber(phoneNumber string) error {
	if !phoneNumberPattern.MatchString(phoneNumber) {
		return &ValidationError{Field: "phoneNumber", Reason: "must be 10 to 15 digits without symbols"}
	}
	return nil
}

func validateThreshold(thresholdPercentage float64) error {
	if thresholdPercentage <= 0 {
		return &ValidationError{Field: "thresholdPercentage", Reason: "must be positive"}
	}
	if thresholdPercentage > maxThresholdPercentage {
		return &ValidationError{Field: "thresholdPercentage", Reason: fmt.Sprintf("must not exceed %.0f", maxThresholdPercentage)}
	}
	return nil
}

func validateSettingsInput(input *models.SettingsInput) error {
	if input.CooldownMinutes < 0 {
		return &ValidationError{Field: "cooldownMinutes", Reason: "must not be negative"}
	}
	if input.MaxDailyNotifications < 1 {
		return &ValidationError{Field: "maxDailyNotifications", Reason: "must be at least 1"}
	}
	return nil
}
