package dnsresolver

import (
	"time"

	"github.com/miekg/dns"
	"github.com/projectdiscovery/gologger"
)

// DefaultServers is the fixed candidate list raced at startup, in the
// same order the original tool hardcoded them.
var DefaultServers = []string{
	"114.114.114.114", // 114DNS
	"223.5.5.5",       // AliDNS
	"1.1.1.1",         // Cloudflare
	"119.29.29.29",    // DNSPod
	"1.2.4.8",         // sDNS
	"8.8.8.8",         // Google
}

// fallbackServer is used when every candidate exceeds the race threshold.
const fallbackServer = "114.114.114.114"

// probeName is a known-live name queried during the server race.
const probeName = "baidu.com"

const raceThreshold = 1 * time.Second

// SelectServer races each candidate in DefaultServers with a 1s-timeout
// A-query for probeName and returns the fastest responder. If every
// candidate is at or above raceThreshold, it falls back to
// fallbackServer. The full candidate list is always raced and logged —
// only the winner is ever queried afterward; the remaining servers exist
// for this selection step alone and are not retained as a failover list.
func SelectServer(servers []string) string {
	best := ""
	bestTime := raceThreshold

	for _, server := range servers {
		start := time.Now()
		ok := probe(server)
		elapsed := time.Since(start)

		gologger.Info().Msgf("dns_server: %s responded in %s", server, elapsed)

		if ok && elapsed < bestTime {
			best = server
			bestTime = elapsed
		}
	}

	if best == "" {
		gologger.Info().Msgf("no dns_server beat %s, falling back to %s", raceThreshold, fallbackServer)
		return fallbackServer
	}
	gologger.Info().Msgf("dns_server: %s is fastest (%s)", best, bestTime)
	return best
}

func probe(server string) bool {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(probeName), dns.TypeA)

	client := &dns.Client{Timeout: raceThreshold}
	resp, _, err := client.Exchange(m, addrWithPort(server))
	if err != nil || resp == nil {
		return false
	}
	return resp.Rcode == dns.RcodeSuccess
}
