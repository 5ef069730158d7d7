package log

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	slowCall     = 3 * time.Second
	verySlowCall = 10 * time.Second
)

// Timed logs entry into name and returns a func logging the exit with the
// elapsed time. Slow calls are raised to info, very slow ones to warn.
//
//	defer log.Timed(logger, "send")()
func Timed(logger *zerolog.Logger, name string) func() {
	logger.Debug().Str("func", name).Msg("enter")
	start := time.Now()

	return func() {
		elapsed := time.Since(start)

		var ev *zerolog.Event
		switch {
		case elapsed >= verySlowCall:
			ev = logger.Warn()
		case elapsed > slowCall:
			ev = logger.Info()
		default:
			ev = logger.Debug()
		}
		ev.Str("func", name).Dur("elapsed", elapsed).Msg("exit")
	}
}
