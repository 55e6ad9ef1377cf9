package helpers

import "time"

// DefaultString returns defaultValue when value is the empty string,
// otherwise the value itself.
func DefaultString(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// DefaultInt64 returns defaultValue when value is 0.
// Note: Not suitable for fields where 0 is a legitimate setting.
func DefaultInt64(value int64, defaultValue int64) int64 {
	if value == 0 {
		return defaultValue
	}
	return value
}

// DefaultTimeDuration returns defaultValue when value is 0.
// Note: Not suitable for fields where a zero duration is a legitimate setting.
func DefaultTimeDuration(value time.Duration, defaultValue time.Duration) time.Duration {
	if value == 0 {
		return defaultValue
	}
	return value
}
