// Package optimizer raises process-level resource limits before the
// worker pool starts. A 200-worker pool holding concurrent DNS and HTTP
// connections can exhaust a process's default RLIMIT_NOFILE; the
// generic task/result worker-pool and in-process rate limiter the
// teacher kept here are superseded by the Work Queue (package queue)
// and github.com/projectdiscovery/ratelimit respectively, so they are
// dropped rather than carried forward unused.
package optimizer

import (
	"runtime"

	"github.com/projectdiscovery/fdmax"
	"github.com/projectdiscovery/gologger"
)

// RaiseFileDescriptorLimit raises RLIMIT_NOFILE to the process's
// hard limit, logging but not failing on platforms where this is a
// no-op or unsupported.
func RaiseFileDescriptorLimit() {
	if err := fdmax.Max(); err != nil {
		gologger.Warning().Msgf("could not raise file descriptor limit: %v", err)
		return
	}
	gologger.Debug().Msg("raised file descriptor limit to the process hard limit")
}

// MemoryStats reports current heap usage in megabytes.
func MemoryStats() int64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return int64(m.Alloc) / 1024 / 1024
}
