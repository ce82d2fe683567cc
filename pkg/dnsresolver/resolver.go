// Package dnsresolver is the single-query DNS client: A, CNAME, NS, and
// AXFR lookups against a driver-selected server list, with the filtering
// and timeout policy the enumerator requires.
package dnsresolver

import (
	"net"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const (
	lookupTimeout  = 1 * time.Second
	transferTimeout = 2 * time.Second
)

var rfc1918Blocks = []*net.IPNet{
	mustParseCIDR("10.0.0.0/8"),
	mustParseCIDR("172.16.0.0/12"),
	mustParseCIDR("192.168.0.0/16"),
}

func mustParseCIDR(s string) *net.IPNet {
	_, n, err := net.ParseCIDR(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Client resolves names against a fixed server list; the first server is
// authoritative. This is a deliberate simplification over a retrying
// multi-resolver client: brute-force enumeration wants silent, fast
// failure, not backoff.
type Client struct {
	servers []string
}

// New returns a Client bound to servers, in priority order. servers must
// be "ip:port" pairs; servers[0] is the only one ever queried for A,
// CNAME, and NS — the rest exist for driver-side server selection races.
func New(servers []string) *Client {
	return &Client{servers: servers}
}

func (c *Client) server() string {
	if len(c.servers) == 0 {
		return "114.114.114.114:53"
	}
	return c.servers[0]
}

func addrWithPort(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	return net.JoinHostPort(server, "53")
}

func (c *Client) exchange(name string, qtype uint16, timeout time.Duration) (*dns.Msg, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)
	m.RecursionDesired = true

	client := &dns.Client{Timeout: timeout}
	resp, _, err := client.Exchange(m, addrWithPort(c.server()))
	if err != nil {
		return nil, err
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, &dns.Error{Err: "non-success rcode"}
	}
	return resp, nil
}

// ResolveA returns the filtered, sorted A records for name. All errors
// (timeout, SERVFAIL, NXDOMAIN, ...) are swallowed and surfaced as an
// empty result — a high failure rate is the expected shape of
// brute-force enumeration.
func (c *Client) ResolveA(name string) []string {
	resp, err := c.exchange(name, dns.TypeA, lookupTimeout)
	if err != nil {
		return nil
	}
	var ips []string
	for _, rr := range resp.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		ip := a.A.String()
		if isFilteredIP(ip) {
			continue
		}
		ips = append(ips, ip)
	}
	sort.Strings(ips)
	return ips
}

// ResolveCNAME returns the target of every CNAME answer for name,
// without following the chain further — callers decide whether to
// re-enqueue a target for its own resolution.
func (c *Client) ResolveCNAME(name string) []string {
	resp, err := c.exchange(name, dns.TypeCNAME, lookupTimeout)
	if err != nil {
		return nil
	}
	var targets []string
	for _, rr := range resp.Answer {
		cn, ok := rr.(*dns.CNAME)
		if !ok {
			continue
		}
		targets = append(targets, strings.TrimSuffix(cn.Target, "."))
	}
	return targets
}

// ResolveNS returns the nameserver hostnames for name.
func (c *Client) ResolveNS(name string) []string {
	resp, err := c.exchange(name, dns.TypeNS, lookupTimeout)
	if err != nil {
		return nil
	}
	var servers []string
	for _, rr := range resp.Answer {
		ns, ok := rr.(*dns.NS)
		if !ok {
			continue
		}
		servers = append(servers, strings.TrimSuffix(ns.Ns, "."))
	}
	return servers
}

// Transfer attempts a zone transfer (AXFR) for apex against the given NS
// IP. Success yields every name discovered in the zone; failure — the
// common case, since most zones refuse transfers — is non-fatal and
// returns a nil slice with no error surfaced to the caller.
func (c *Client) Transfer(apex, nsIP string) []string {
	m := new(dns.Msg)
	m.SetAxfr(dns.Fqdn(apex))

	tr := &dns.Transfer{
		DialTimeout:  transferTimeout,
		ReadTimeout:  transferTimeout,
		WriteTimeout: transferTimeout,
	}

	envelopes, err := tr.In(m, addrWithPort(nsIP))
	if err != nil {
		return nil
	}

	var names []string
	for env := range envelopes {
		if env.Error != nil {
			return names
		}
		for _, rr := range env.RR {
			names = append(names, strings.TrimSuffix(rr.Header().Name, "."))
		}
	}
	return names
}

func isFilteredIP(ip string) bool {
	if ip == "0.0.0.1" || ip == "127.0.0.1" {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	if parsed.IsLoopback() {
		return true
	}
	for _, block := range rfc1918Blocks {
		if block.Contains(parsed) {
			return true
		}
	}
	return false
}
