package enumerator

import "github.com/duskwolf/zonecrawler/pkg/httpprobe"

// dnsClient is the subset of dnsresolver.Client the pool and driver
// need; tests supply a mock implementing this interface against a
// deterministic fixture instead of real network resolution.
type dnsClient interface {
	ResolveA(name string) []string
	ResolveCNAME(name string) []string
	ResolveNS(name string) []string
	Transfer(apex, nsIP string) []string
}

// httpClient is the subset of httpprobe.Client the pool and driver need.
type httpClient interface {
	Fetch(host string) httpprobe.Result
}
