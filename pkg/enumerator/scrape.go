package enumerator

import "regexp"

// hostPattern builds the "(?:<label>.)+<apex>" scraper for a specific
// apex, used to pull candidate subdomains out of an HTML body in
// wildcard mode.
func hostPattern(apex string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b([a-z0-9](?:[-a-z0-9]{0,62})?(?:\.[a-z0-9](?:[-a-z0-9]{0,62})?)*\.` + regexp.QuoteMeta(apex) + `)\b`)
}

// ScrapeHosts returns every distinct apex-suffixed hostname found in
// body.
func ScrapeHosts(body []byte, apex string) []string {
	matches := hostPattern(apex).FindAllString(string(body), -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
