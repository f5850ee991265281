// Package browser schedules a best-effort launch of the default system
// browser after the server comes up. Failure to open a browser
// (headless session, nothing installed) is swallowed: it is logged at
// debug level and never affects serving.
package browser

import (
	"time"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Config holds configuration for the browser launch.
type Config struct {
	// Enabled controls whether a browser tab is opened after startup.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// DelayMS is how long to wait after startup before opening,
	// in milliseconds.
	DelayMS int `mapstructure:"delay_ms" default:"800"`
}

// OpenFunc launches a URL in a browser.
type OpenFunc func(url string) error

// Opener schedules the fire-and-forget browser launch.
type Opener struct {
	cfg Config
	log *zap.Logger

	// Open launches the URL. Defaults to the system browser; tests
	// replace it.
	Open OpenFunc
}

// NewOpener creates an Opener that targets the default system browser.
func NewOpener(cfg Config, logg *zap.Logger) *Opener {
	return &Opener{
		cfg:  cfg,
		log:  logg,
		Open: browser.OpenURL,
	}
}

// ScheduleOpen arms a one-shot timer that opens url once the configured
// delay elapses. The launch runs on its own goroutine and is never
// awaited; its only observable effect on failure is a debug log line.
// Returns nil when the launch is disabled.
func (o *Opener) ScheduleOpen(url string) *time.Timer {
	if !o.cfg.Enabled {
		return nil
	}
	delay := time.Duration(o.cfg.DelayMS) * time.Millisecond
	return time.AfterFunc(delay, func() {
		if err := o.Open(url); err != nil {
			o.log.Debug("Could not open browser",
				zap.String("url", url),
				zap.Error(err),
			)
		}
	})
}
