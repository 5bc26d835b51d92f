package helpers

import (
	"time"

	"github.com/yigit/unicrud/internal/pkg/logger"
)

// ParseDuration parses a duration string, returns default duration on error
// or when the parsed value is not positive.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		logger.Warn().Err(err).
			Str("durationStr", durationStr).
			Dur("defaultDuration", defaultDuration).
			Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	if duration <= 0 {
		return defaultDuration
	}
	return duration
}

// ServerTimeouts groups the HTTP server timeouts resolved from configuration.
type ServerTimeouts struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}

// ResolveServerTimeouts parses the configured timeout strings, falling back
// to the stock server defaults for anything missing or malformed.
func ResolveServerTimeouts(read, write, idle, shutdown string) ServerTimeouts {
	return ServerTimeouts{
		Read:     ParseDuration(read, 10*time.Second),
		Write:    ParseDuration(write, 10*time.Second),
		Idle:     ParseDuration(idle, 120*time.Second),
		Shutdown: ParseDuration(shutdown, 10*time.Second),
	}
}
