package runner

import "github.com/projectdiscovery/gologger"

const banner = `
               _____                                     _
              |__  / ___  _ __   ___  ___ _ __ __ ___      _| | ___ _ __
                / / / _ \| '_ \ / _ \/ __| '__/ _' \ \ /\ / / |/ _ \ '__|
               / /_| (_) | | | |  __/ (__| | | (_| |\ V  V /| |  __/ |
              /____|\___/|_| |_|\___|\___|_|  \__,_| \_/\_/ |_|\___|_|
`

// ToolName is the executable's name.
const ToolName = "zonecrawler"

// version is the current release version.
const version = "1.0.0"

// showBanner prints the startup banner and version line.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("recursive subdomain enumerator, version %s\n", version)
}
