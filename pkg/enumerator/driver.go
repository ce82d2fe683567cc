package enumerator

import (
	"context"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/ratelimit"

	"github.com/duskwolf/zonecrawler/pkg/candidate"
	"github.com/duskwolf/zonecrawler/pkg/config"
	"github.com/duskwolf/zonecrawler/pkg/dictionary"
	"github.com/duskwolf/zonecrawler/pkg/model"
	"github.com/duskwolf/zonecrawler/pkg/queue"
	"github.com/duskwolf/zonecrawler/pkg/wildcard"
)

// State names the per-apex state machine's states, kept explicit for
// logging and for tests that want to assert on phase transitions.
type State string

const (
	StateInit           State = "INIT"
	StateWildcardCheck  State = "WILDCARD_CHECK"
	StateTransferCheck  State = "TRANSFER_CHECK"
	StateEnumerating    State = "ENUMERATING"
	StateTitleFetch     State = "TITLE_FETCH"
	StateLoopCheck      State = "LOOP_CHECK"
	StateDone           State = "DONE"
)

// httpFetchAdapter satisfies wildcard.Fetcher on top of the richer
// httpClient, which also reports title and refusal.
type httpFetchAdapter struct{ client httpClient }

func (a httpFetchAdapter) Fetch(host string) []byte {
	return a.client.Fetch(host).Body
}

// Driver is the Enumeration Driver (C6): it owns the DNS/HTTP clients
// for one run and orchestrates the per-apex passes, the loop-query
// fixed point, and dictionary feedback.
type Driver struct {
	DNS    dnsClient
	HTTP   httpClient
	Config *config.Config

	Workers    int
	LoopQuery  bool
	EnrichLoop bool

	// Limiter, when set, caps the rate at which probes start across
	// every pass this driver runs.
	Limiter *ratelimit.Limiter

	PrimaryDictPath string
	LoopDictPath    string
}

// Run executes a complete enumeration for apex with the given primary
// labels, returning the apex's Result Map. It implements the state
// machine in full: WILDCARD_CHECK -> TRANSFER_CHECK -> ENUMERATING ->
// TITLE_FETCH/LOOP_CHECK -> DONE. Cancelling ctx triggers an orderly
// shutdown: in-flight probes finish, no further pass or loop iteration
// starts, and whatever is already in the Result Map is returned along
// with dictionary feedback for it — nothing is abandoned silently.
func (d *Driver) Run(ctx context.Context, apex string, primaryLabels []string) *model.ResultMap {
	results := model.NewResultMap()
	d.runPass(ctx, apex, primaryLabels, results)

	if d.LoopQuery && ctx.Err() == nil {
		d.loopQuery(ctx, apex, results)
	}

	if d.PrimaryDictPath != "" {
		d.feedback(apex, results)
	}

	return results
}

// runPass executes one full per-apex pass: wildcard detection, the
// zone-transfer probe, queue seeding, the worker pool, and — for
// non-wildcard apexes — the title-fetch second pass.
func (d *Driver) runPass(ctx context.Context, parent string, labels []string, results *model.ResultMap) {
	gologger.Info().Msgf("%s: %s", parent, StateWildcardCheck)
	wc := wildcard.Detect(parent, d.DNS, httpFetchAdapter{d.HTTP}, time.Now())

	gologger.Info().Msgf("%s: %s", parent, StateTransferCheck)
	transferred := d.transferCheck(ctx, parent)

	gologger.Info().Msgf("%s: %s", parent, StateEnumerating)
	seeds := candidate.Generate(parent, labels)
	seeds = append(seeds, transferred...)

	q := queue.New()
	q.PushAll(seeds)
	q.CancelOn(ctx)

	pool := NewPool(parent, d.DNS, d.HTTP, d.Config, results, wc, model.NewSeenSet(), d.Workers)
	pool.Limiter = d.Limiter
	pool.Run(q)

	if !wc.IsWildcard && ctx.Err() == nil {
		gologger.Info().Msgf("%s: %s", parent, StateTitleFetch)
		titleWorkers := d.Workers / 4
		RunTitleFetch(d.HTTP, results, titleWorkers)
	}
}

// transferCheck resolves the apex's nameservers and attempts a zone
// transfer against each one. A successful AXFR bypasses the dictionary
// entirely: every name in the zone is seeded regardless of whether it
// appears in any wordlist.
func (d *Driver) transferCheck(ctx context.Context, apex string) []string {
	var discovered []string
	for _, ns := range d.DNS.ResolveNS(apex) {
		if ctx.Err() != nil {
			return discovered
		}
		for _, ip := range d.DNS.ResolveA(ns) {
			names := d.DNS.Transfer(apex, ip)
			if len(names) > 0 {
				gologger.Info().Msgf("%s: zone transfer succeeded against %s (%s), %d names", apex, ns, ip, len(names))
			}
			discovered = append(discovered, names...)
		}
	}
	return discovered
}

// loopQuery implements the loop-query fixed point: each iteration
// re-enumerates every host discovered since the last iteration, using
// that host as the parent and the loop dictionary as labels, until the
// Result Map stops growing.
func (d *Driver) loopQuery(ctx context.Context, apex string, results *model.ResultMap) {
	loopLabels, err := dictionary.Load(d.LoopDictPath)
	if err != nil {
		gologger.Warning().Msgf("could not load loop dictionary %s: %v", d.LoopDictPath, err)
	}
	if len(loopLabels) == 0 {
		loopLabels = dictionary.Builtin()
	}

	lastDomains := map[string]struct{}{apex: {}}
	lastCount := 0
	currentCount := results.Len()

	for currentCount > lastCount {
		if ctx.Err() != nil {
			return
		}
		currentDomains := results.Keys()
		var querySet []string
		for _, host := range currentDomains {
			if _, ok := lastDomains[host]; !ok {
				querySet = append(querySet, host)
			}
		}

		lastDomains = make(map[string]struct{}, len(currentDomains))
		for _, host := range currentDomains {
			lastDomains[host] = struct{}{}
		}
		lastCount = currentCount

		gologger.Info().Msgf("%s: %s, using %v as new parents", apex, StateLoopCheck, querySet)

		labels := loopLabels
		if d.EnrichLoop {
			var newLabels []string
			for _, host := range querySet {
				newLabels = append(newLabels, dictionary.LabelsOf(host, apex))
			}
			labels = append(append([]string{}, loopLabels...), dictionary.EnrichLoopLabels(newLabels)...)
		}

		for _, parent := range querySet {
			if ctx.Err() != nil {
				return
			}
			d.runPass(ctx, parent, labels, results)
		}

		currentCount = results.Len()
	}
}

// feedback appends the label of every discovered host to the primary
// and personal dictionaries, deduplicated and sorted.
func (d *Driver) feedback(apex string, results *model.ResultMap) {
	var labels []string
	for _, rec := range results.Records() {
		if l := dictionary.LabelsOf(rec.Name, apex); l != "" {
			labels = append(labels, l)
		}
	}
	personalPath := personalDictPath(d.PrimaryDictPath)
	if err := dictionary.Feedback(d.PrimaryDictPath, personalPath, labels); err != nil {
		gologger.Warning().Msgf("dictionary feedback failed: %v", err)
	}
}

func personalDictPath(primaryPath string) string {
	return primaryPath + ".personal"
}
