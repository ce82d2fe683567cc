package enumerator

import (
	"strings"
	"sync"

	"github.com/duskwolf/zonecrawler/pkg/httpprobe"
)

// fakeDNS is a deterministic, in-memory stand-in for dnsresolver.Client
// driven entirely by fixture maps, matching the mock DNS/HTTP layer
// invariant 3 requires.
type fakeDNS struct {
	mu       sync.Mutex
	a        map[string][]string
	cname    map[string][]string
	ns       map[string][]string
	zone     map[string][]string // keyed by "apex|nsIP"
	calls    map[string]int

	// wildcardSuffix, when set, makes ResolveA answer wildcardIPs for
	// any name ending in the suffix that has no specific fixture entry
	// — simulating a DNS zone that resolves arbitrary names.
	wildcardSuffix string
	wildcardIPs    []string
}

func newFakeDNS() *fakeDNS {
	return &fakeDNS{
		a:     map[string][]string{},
		cname: map[string][]string{},
		ns:    map[string][]string{},
		zone:  map[string][]string{},
		calls: map[string]int{},
	}
}

func (f *fakeDNS) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeDNS) ResolveA(name string) []string {
	f.record("A:" + name)
	name = strings.ToLower(name)
	if ips, ok := f.a[name]; ok {
		return append([]string(nil), ips...)
	}
	if f.wildcardSuffix != "" && strings.HasSuffix(name, f.wildcardSuffix) {
		return append([]string(nil), f.wildcardIPs...)
	}
	return nil
}

func (f *fakeDNS) ResolveCNAME(name string) []string {
	f.record("CNAME:" + name)
	return append([]string(nil), f.cname[strings.ToLower(name)]...)
}

func (f *fakeDNS) ResolveNS(name string) []string {
	f.record("NS:" + name)
	return append([]string(nil), f.ns[strings.ToLower(name)]...)
}

func (f *fakeDNS) Transfer(apex, nsIP string) []string {
	f.record("AXFR:" + apex + "|" + nsIP)
	return append([]string(nil), f.zone[apex+"|"+nsIP]...)
}

// fakeHTTP is a deterministic stand-in for httpprobe.Client.
type fakeHTTP struct {
	mu        sync.Mutex
	responses map[string]httpprobe.Result
	calls     map[string]int

	// defaultResult, when non-nil, answers any host without a specific
	// fixture entry — used to simulate a wildcard zone's reference body.
	defaultResult *httpprobe.Result
}

func newFakeHTTP() *fakeHTTP {
	return &fakeHTTP{responses: map[string]httpprobe.Result{}, calls: map[string]int{}}
}

func (f *fakeHTTP) Fetch(host string) httpprobe.Result {
	f.mu.Lock()
	f.calls[host]++
	f.mu.Unlock()
	if r, ok := f.responses[host]; ok {
		return r
	}
	if f.defaultResult != nil {
		return *f.defaultResult
	}
	return httpprobe.Result{}
}

func (f *fakeHTTP) callCount(host string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[host]
}
