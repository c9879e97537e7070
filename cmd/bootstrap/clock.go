package bootstrap

import (
	"time"

	"residencial-admin/internal/pkg/clock"
	"residencial-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

// NewClock decides what "today" is in the building's time zone, not the host's.
func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
}
