package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"
	fileutil "github.com/projectdiscovery/utils/file"
	folderutil "github.com/projectdiscovery/utils/folder"
	logutil "github.com/projectdiscovery/utils/log"
)

var (
	configDir             = folderutil.AppConfigDirOrDefault(".", "zonecrawler")
	defaultConfigLocation = envutil.GetEnvOrDefault("ZONECRAWLER_CONFIG", filepath.Join(configDir, "config.yaml"))
)

// Options holds the parsed command-line surface described in the
// project's external interfaces: one apex or a file of apexes, the
// dictionary paths, the worker count, and the scheduled-rerun and
// email-delivery toggles.
type Options struct {
	Apex        string
	ApexFile    string
	PrimaryDict string
	LoopDict    string
	OutputFile  string
	Workers     int
	LoopQuery   bool
	NoFilter    bool
	DNSServer   string
	StartTime   string
	MonitorFile string
	MonitorDSN  string
	Email       bool
	ConfigFile  string
	RateLimit   int
	JSON        bool
	Verbose     bool
	NoColor     bool
	Silent      bool
}

// ParseOptions parses os.Args, validates the result, and exits the
// process on any startup error — the only case non-zero exit codes are
// used for.
func ParseOptions() *Options {
	logutil.DisableDefaultLogger()

	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`zonecrawler - recursive subdomain enumerator

Brute-forces a dictionary against one or more apex domains, detects
wildcard zones via HTML similarity, chases CNAME/NS records, attempts
zone transfers, and optionally loops the discovered hosts back through
the dictionary until the result set stops growing.`)

	flagSet.CreateGroup("input", "Target",
		flagSet.StringVarP(&opts.Apex, "domain", "d", "", "apex domain to enumerate"),
		flagSet.StringVarP(&opts.ApexFile, "file", "f", "", "file of apex domains, one per line"),
	)

	flagSet.CreateGroup("dictionary", "Dictionaries",
		flagSet.StringVarP(&opts.PrimaryDict, "dict-file", "df", "subdomains.txt", "primary label dictionary"),
		flagSet.StringVarP(&opts.LoopDict, "loop-dict", "ld", "mydict.txt", "loop-pass label dictionary"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.OutputFile, "output", "o", "", "output file (default <apex><timestamp>.txt)"),
		flagSet.BoolVarP(&opts.JSON, "json", "oJ", false, "write output as JSON instead of the default text format"),
	)

	flagSet.CreateGroup("engine", "Enumeration engine",
		flagSet.IntVarP(&opts.Workers, "threads", "t", 200, "worker count"),
		flagSet.BoolVarP(&opts.LoopQuery, "loop", "l", false, "enable loop-query fixed-point re-enumeration"),
		flagSet.BoolVarP(&opts.NoFilter, "no-filter", "nf", false, "disable the HTML content filter"),
		flagSet.StringVar(&opts.DNSServer, "dns-server", "", "pin a DNS server, skipping auto-selection"),
		flagSet.IntVar(&opts.RateLimit, "rate-limit", 0, "maximum probes started per second (0 = unlimited)"),
	)

	flagSet.CreateGroup("monitor", "Scheduled rerun",
		flagSet.StringVar(&opts.StartTime, "start-time", "", "enable the scheduled-rerun loop, fired daily at HH:MM"),
		flagSet.StringVarP(&opts.MonitorFile, "monitor-file", "mf", "", "monitor baseline file (required with --start-time)"),
		flagSet.StringVar(&opts.MonitorDSN, "monitor-dsn", "", "optional Postgres DSN for the monitor baseline store"),
	)

	flagSet.CreateGroup("notify", "Notifications",
		flagSet.BoolVarP(&opts.Email, "email", "e", false, "send results via email on completion"),
		flagSet.StringVar(&opts.ConfigFile, "config", defaultConfigLocation, "config.yaml location (SMTP settings, filters)"),
	)

	flagSet.CreateGroup("debug", "Display",
		flagSet.BoolVar(&opts.Verbose, "v", false, "verbose output"),
		flagSet.BoolVarP(&opts.NoColor, "no-color", "nc", false, "disable colorized output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "only write discovered hosts, no progress logging"),
	)

	if err := flagSet.Parse(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	opts.configureOutput()
	showBanner()

	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	return opts
}

func (opts *Options) configureOutput() {
	gologger.DefaultLogger.SetFormatter(formatter.NewCLI(opts.NoColor))
	switch {
	case opts.Silent:
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	case opts.Verbose:
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	default:
		gologger.DefaultLogger.SetMaxLevel(levels.LevelInfo)
	}
}

func (opts *Options) validate() error {
	if opts.Apex == "" && opts.ApexFile == "" {
		return errors.New("one of -d or -f is required")
	}
	if opts.Apex != "" && opts.ApexFile != "" {
		return errors.New("-d and -f are mutually exclusive")
	}
	if opts.ApexFile != "" && !fileutil.FileExists(opts.ApexFile) {
		return fmt.Errorf("apex file does not exist: %s", opts.ApexFile)
	}
	if opts.StartTime != "" {
		if _, err := time.Parse("15:04", opts.StartTime); err != nil {
			return fmt.Errorf("invalid --start-time %q, expected HH:MM", opts.StartTime)
		}
		if opts.MonitorFile == "" {
			return errors.New("--start-time requires -mf")
		}
	}
	if opts.Workers <= 0 {
		return errors.New("-t must be positive")
	}
	return nil
}
