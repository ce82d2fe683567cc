package runner

import (
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
)

// logSummary prints a one-block summary of a completed apex pass: host
// count, elapsed time, and output path. It runs once per apex, after
// the title-fetch pass and before any monitor/email side effects.
func logSummary(apex string, count int, elapsed time.Duration, outputPath string) {
	border := strings.Repeat("-", 60)
	gologger.Print().Msgf(border)
	gologger.Print().Msgf("%s: %d hosts in %s", apex, count, elapsed.Round(time.Millisecond))
	gologger.Print().Msgf("written to %s", outputPath)
	gologger.Print().Msgf(border)
}
