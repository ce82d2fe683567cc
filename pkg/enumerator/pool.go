// Package enumerator implements the Worker Pool + Queue (C5) and the
// Enumeration Driver (C6): the concurrent per-host probe logic and the
// per-apex orchestration (wildcard detection, zone-transfer probing,
// the loop-query fixed point, and dictionary feedback).
package enumerator

import (
	"strings"
	"sync"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/ratelimit"

	"github.com/duskwolf/zonecrawler/pkg/config"
	"github.com/duskwolf/zonecrawler/pkg/model"
	"github.com/duskwolf/zonecrawler/pkg/queue"
	"github.com/duskwolf/zonecrawler/pkg/wildcard"
)

// Pool is the worker pool for a single apex pass. Workers are
// cooperative in the sense required by the design: they suspend at DNS
// and HTTP boundaries and never hold a lock across those suspension
// points. Goroutines over a shared mutex-guarded LIFO queue are the
// idiomatic Go equivalent to the source's gevent coroutines over a
// gevent.queue.Queue.
type Pool struct {
	Apex     string
	DNS      dnsClient
	HTTP     httpClient
	Config   *config.Config
	Results  *model.ResultMap
	Wildcard *model.WildcardContext
	Seen     *model.SeenSet
	NWorkers int

	// Limiter throttles how fast workers start new probes; nil means
	// unlimited. It never changes ordering or termination, only pacing.
	Limiter *ratelimit.Limiter

	// retried tracks hosts already re-queued once after a connection
	// refusal, bounding the retry to a single attempt per host — an
	// unbounded retry can otherwise oscillate forever against a
	// pathologically unreachable host.
	retried *model.SeenSet
}

// NewPool returns a ready-to-use Pool.
func NewPool(apex string, dns dnsClient, http httpClient, cfg *config.Config, results *model.ResultMap, wc *model.WildcardContext, seen *model.SeenSet, workers int) *Pool {
	return &Pool{
		Apex:     apex,
		DNS:      dns,
		HTTP:     http,
		Config:   cfg,
		Results:  results,
		Wildcard: wc,
		Seen:     seen,
		NWorkers: workers,
		retried:  model.NewSeenSet(),
	}
}

// Run drains q with NWorkers concurrent workers and blocks until every
// host has been probed and no probe is in flight.
func (p *Pool) Run(q *queue.Queue) {
	var wg sync.WaitGroup
	n := p.NWorkers
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				host, ok := q.Pop()
				if !ok {
					return
				}
				p.probe(host, q)
				q.Done()
			}
		}()
	}
	wg.Wait()
}

func (p *Pool) probe(host string, q *queue.Queue) {
	if p.Limiter != nil {
		p.Limiter.Take()
	}
	if p.Wildcard.IsWildcard {
		p.probeWildcardMode(host, q)
		return
	}
	p.probeNonWildcardMode(host, q)
}

func (p *Pool) probeNonWildcardMode(host string, q *queue.Queue) {
	ips := p.DNS.ResolveA(host)
	if len(ips) > 0 {
		p.Results.Put(model.NewHostRecord(host, ips, ""))
	}

	for _, target := range p.DNS.ResolveCNAME(host) {
		p.enqueueDiscovery(target, q)
	}
}

func (p *Pool) probeWildcardMode(host string, q *queue.Queue) {
	fetch := p.HTTP.Fetch(host)
	if fetch.Refused {
		if p.retried.AddIfNew(host) {
			q.Push(host)
		}
		return
	}
	if len(fetch.Body) == 0 {
		return
	}

	body := string(fetch.Body)
	if p.Config != nil {
		if p.Config.MatchesTitleFilter(fetch.Title) || p.Config.MatchesHTMLFilter(body) {
			return
		}
	}

	if wildcard.Suppress(p.Wildcard, fetch.Body) {
		return
	}

	ips := p.DNS.ResolveA(host)
	if len(ips) > 0 {
		p.Results.Put(model.NewHostRecord(host, ips, fetch.Title))
	}

	for _, scraped := range ScrapeHosts(fetch.Body, p.Apex) {
		p.enqueueDiscovery(scraped, q)
	}

	for _, target := range p.DNS.ResolveCNAME(host) {
		p.enqueueDiscovery(target, q)
	}
}

// enqueueDiscovery admits a CNAME target or HTML-scraped name for
// probing: it must end with the apex and must not already be in the
// Result Map, and the Seen-Set is the sole guard against re-enqueue
// loops when multiple CNAMEs chain back to each other.
func (p *Pool) enqueueDiscovery(host string, q *queue.Queue) {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if !strings.HasSuffix(host, "."+p.Apex) && host != p.Apex {
		return
	}
	if p.Results.Has(host) {
		return
	}
	if !p.Seen.AddIfNew(host) {
		return
	}
	q.Push(host)
}

// RunTitleFetch is the second, N/4-worker pass run after a non-wildcard
// apex's main pass drains: it HTTP-probes every already-resolved host
// purely to backfill its title, without re-resolving or re-enqueueing.
func RunTitleFetch(http httpClient, results *model.ResultMap, workers int) {
	hosts := results.Keys()
	jobs := make(chan string, len(hosts))
	for _, h := range hosts {
		jobs <- h
	}
	close(jobs)

	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for host := range jobs {
				fetch := http.Fetch(host)
				if fetch.Title == "" {
					continue
				}
				if !mergeTitle(results, host, fetch.Title) {
					gologger.Debug().Msgf("title fetch: host %s vanished from result map mid-pass", host)
				}
			}
		}()
	}
	wg.Wait()
}

func mergeTitle(results *model.ResultMap, host, title string) bool {
	if !results.Has(host) {
		return false
	}
	recs := results.Records()
	for _, r := range recs {
		if r.Name == host {
			r.Title = title
			results.Put(r)
			return true
		}
	}
	return false
}
