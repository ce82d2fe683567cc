// Package runner wires the CLI surface (Options) to the enumeration
// engine: it owns the DNS/HTTP clients for the process lifetime, runs
// one pass per apex, writes results, and — when configured — loops the
// whole thing on a daily schedule and emails a completion summary.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/ratelimit"

	"github.com/duskwolf/zonecrawler/pkg/config"
	"github.com/duskwolf/zonecrawler/pkg/dictionary"
	"github.com/duskwolf/zonecrawler/pkg/dnsresolver"
	"github.com/duskwolf/zonecrawler/pkg/enumerator"
	"github.com/duskwolf/zonecrawler/pkg/httpprobe"
	"github.com/duskwolf/zonecrawler/pkg/model"
	"github.com/duskwolf/zonecrawler/pkg/monitor"
	"github.com/duskwolf/zonecrawler/pkg/notify"
	"github.com/duskwolf/zonecrawler/pkg/optimizer"
	"github.com/duskwolf/zonecrawler/pkg/outputwriter"
)

// Runner owns everything needed for one process invocation: the parsed
// Options, the shared config.yaml, and the DNS/HTTP clients every apex
// pass reuses.
type Runner struct {
	options *Options
	cfg     *config.Config
	dns     *dnsresolver.Client
	http    *httpprobe.Client
	limiter *ratelimit.Limiter
}

// New validates options against config.yaml and builds a ready-to-run
// Runner. Any failure here is a startup error.
func New(options *Options) (*Runner, error) {
	optimizer.RaiseFileDescriptorLimit()

	cfg, err := config.Load(options.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("could not load config %s: %w", options.ConfigFile, err)
	}
	if options.NoFilter {
		cfg.TitleFilters = nil
		cfg.HTMLFilters = nil
	}

	server := options.DNSServer
	if server == "" {
		server = dnsresolver.SelectServer(dnsresolver.DefaultServers)
	}
	dns := dnsresolver.New([]string{server})

	limiter := ratelimit.NewUnlimited(context.Background())
	if options.RateLimit > 0 {
		limiter = ratelimit.New(context.Background(), uint(options.RateLimit), time.Second)
	}

	return &Runner{
		options: options,
		cfg:     cfg,
		dns:     dns,
		http:    httpprobe.New(),
		limiter: limiter,
	}, nil
}

// Run executes the full program: one enumeration pass per apex
// (immediately, then on the `--start-time` schedule if configured),
// writing and, if `-e` is set, emailing the results of each pass. It
// returns only on an unrecoverable startup-class error; a keyboard
// interrupt triggers an orderly shutdown — in-flight probes finish,
// no further apex or scheduled rerun starts, partial results are
// written — and is treated as normal completion (nil).
func (r *Runner) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	apexes, err := r.loadApexes()
	if err != nil {
		return err
	}

	primaryLabels, err := dictionary.Load(r.options.PrimaryDict)
	if err != nil {
		return fmt.Errorf("could not load dictionary %s: %w", r.options.PrimaryDict, err)
	}
	if len(primaryLabels) == 0 {
		primaryLabels = dictionary.Builtin()
	}

	var store monitor.Store
	if r.options.MonitorFile != "" {
		if r.options.MonitorDSN != "" {
			pg, err := monitor.NewPostgresStore(r.options.MonitorDSN)
			if err != nil {
				return fmt.Errorf("could not open monitor dsn: %w", err)
			}
			store = pg
		} else {
			store = monitor.NewFileStore(r.options.MonitorFile)
		}
	}

	run := func() {
		for _, apex := range apexes {
			if ctx.Err() != nil {
				gologger.Info().Msgf("interrupted, skipping remaining apexes")
				return
			}
			r.runOne(ctx, apex, primaryLabels, store)
		}
	}

	if r.options.StartTime == "" {
		run()
		return nil
	}

	hour, minute, err := monitor.ParseStartTime(r.options.StartTime)
	if err != nil {
		return err
	}
	scheduleStop := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(scheduleStop)
	}()
	run()
	monitor.Run(hour, minute, scheduleStop, run)
	return nil
}

func (r *Runner) runOne(ctx context.Context, apex string, primaryLabels []string, store monitor.Store) {
	gologger.Info().Msgf("%s: starting enumeration", apex)
	start := time.Now()

	driver := &enumerator.Driver{
		DNS:             r.dns,
		HTTP:            r.http,
		Config:          r.cfg,
		Workers:         r.options.Workers,
		LoopQuery:       r.options.LoopQuery,
		EnrichLoop:      r.options.LoopQuery,
		Limiter:         r.limiter,
		PrimaryDictPath: r.options.PrimaryDict,
		LoopDictPath:    r.options.LoopDict,
	}

	results := driver.Run(ctx, apex, primaryLabels)
	records := results.Records()

	outputPath := r.options.OutputFile
	if outputPath == "" {
		outputPath = outputwriter.DefaultPath(apex, time.Now().Format("20060102150405"))
	}

	var writeErr error
	if r.options.JSON {
		writeErr = outputwriter.WriteJSON(outputPath, records)
	} else {
		writeErr = outputwriter.WriteText(outputPath, records)
	}
	if writeErr != nil {
		gologger.Error().Msgf("%s: could not write results to %s: %s", apex, outputPath, writeErr)
	}

	logSummary(apex, len(records), time.Since(start), outputPath)
	gologger.Debug().Msgf("%s: heap at %d MB", apex, optimizer.MemoryStats())

	if store != nil {
		r.updateBaseline(apex, results, store)
	}

	if r.options.Email {
		if !r.cfg.EmailConfigured() {
			gologger.Warning().Msgf("%s: -e was given but %s has no email settings, skipping notification", apex, r.options.ConfigFile)
			return
		}
		subject := fmt.Sprintf("zonecrawler: %s complete", apex)
		body := notify.Summary(apex, len(records), outputPath)
		if err := notify.Send(r.cfg, subject, body); err != nil {
			gologger.Warning().Msgf("%s: could not send completion email: %s", apex, err)
		}
	}
}

func (r *Runner) updateBaseline(apex string, results *model.ResultMap, store monitor.Store) {
	hosts := results.Keys()
	sort.Strings(hosts)
	next := monitor.NewBaseline(apex, hosts, time.Now())

	prev, ok, err := store.Load(apex)
	if err != nil {
		gologger.Warning().Msgf("%s: could not load monitor baseline: %s", apex, err)
	} else if ok {
		added := monitor.Diff(prev, next)
		gologger.Info().Msg(monitor.Summary(apex, added))
	}

	if err := store.Save(next); err != nil {
		gologger.Warning().Msgf("%s: could not save monitor baseline: %s", apex, err)
	}
}

func (r *Runner) loadApexes() ([]string, error) {
	if r.options.Apex != "" {
		apex := strings.ToLower(r.options.Apex)
		if !model.IsDomain(apex) {
			return nil, fmt.Errorf("%q is not a domain", apex)
		}
		return []string{apex}, nil
	}

	f, err := os.Open(r.options.ApexFile)
	if err != nil {
		return nil, fmt.Errorf("could not open apex file: %w", err)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var apexes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		apex := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if apex == "" {
			continue
		}
		if !model.IsDomain(apex) {
			gologger.Warning().Msgf("skipping invalid apex in %s: %q", r.options.ApexFile, apex)
			continue
		}
		if _, ok := seen[apex]; ok {
			continue
		}
		seen[apex] = struct{}{}
		apexes = append(apexes, apex)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(apexes) == 0 {
		return nil, fmt.Errorf("no valid apex domains found in %s", r.options.ApexFile)
	}
	return apexes, nil
}
