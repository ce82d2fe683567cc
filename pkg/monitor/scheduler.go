package monitor

import (
	"fmt"
	"time"

	"github.com/projectdiscovery/gologger"
)

// ParseStartTime validates the `--start-time HH:MM` flag value.
func ParseStartTime(hhmm string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --start-time %q: %w", hhmm, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextFireTime returns the next time strictly after now that matches
// hour:minute, rolling over to tomorrow if that time has already passed
// today or is exactly now.
func NextFireTime(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks, invoking fire once per day at hour:minute, until stop is
// closed. This is the one-line external collaborator the scheduled
// rerun loop reduces to outside the core enumeration engine: a
// time-triggered callback, nothing more.
func Run(hour, minute int, stop <-chan struct{}, fire func()) {
	for {
		next := NextFireTime(time.Now(), hour, minute)
		wait := time.Until(next)
		gologger.Info().Msgf("next scheduled run at %s (in %s)", next.Format(time.RFC3339), wait)

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			fire()
		case <-stop:
			timer.Stop()
			return
		}
	}
}
