package domain

import "time"

// StaleThresholdDays is the default number of days without a push after which a
// repository counts as stale.
const StaleThresholdDays = 90

// IsActive reports whether a repository pushed at lastPush is still active at now.
// The difference is taken in whole days; a repository with no recorded push is never active.
func IsActive(lastPush *time.Time, now time.Time, thresholdDays int) bool {
	if lastPush == nil {
		return false
	}
	days := int(now.UTC().Sub(lastPush.UTC()) / (24 * time.Hour))
	return days <= thresholdDays
}
