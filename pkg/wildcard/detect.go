// Package wildcard implements the Wildcard Detector (C4): deciding
// whether an apex's zone answers arbitrary names, and the HTML
// similarity gate used to suppress wildcard false positives.
package wildcard

import (
	"time"

	"github.com/duskwolf/zonecrawler/pkg/model"
)

// Resolver is the subset of the DNS client the detector needs.
type Resolver interface {
	ResolveA(name string) []string
}

// Fetcher is the subset of the HTTP probe the detector needs.
type Fetcher interface {
	Fetch(host string) (body []byte)
}

// SuppressionThreshold is the default similarity at or above which a
// wildcard-mode candidate is suppressed.
const SuppressionThreshold = 0.8

// Detect classifies apex by resolving a synthetic, statistically
// non-existent name — <timestamp>.<apex>, timestamp being the current
// time as YYYYMMDDHHMMSS — and, on a successful A answer, fetching its
// HTTP body as the reference. An empty reference body reclassifies the
// apex as non-wildcard: the zone resolves but nothing serves HTTP, so
// content-based filtering is impossible and the false-positive risk of
// skipping it is acceptable.
func Detect(apex string, dns Resolver, http Fetcher, now time.Time) *model.WildcardContext {
	ctx := model.NewWildcardContext()

	synthetic := now.Format("20060102150405") + "." + apex
	ips := dns.ResolveA(synthetic)
	if len(ips) == 0 {
		return ctx
	}

	body := http.Fetch(synthetic)
	if len(body) == 0 {
		return ctx
	}

	ctx.IsWildcard = true
	ctx.ReferenceHTML = body
	ctx.ReferenceHTMLLen = len(body)
	return ctx
}

// Suppress reports whether body is similar enough to ctx's reference to
// be dropped as a wildcard false positive.
func Suppress(ctx *model.WildcardContext, body []byte) bool {
	if !ctx.IsWildcard {
		return false
	}
	return Similarity(ctx.ReferenceHTML, body) >= SuppressionThreshold
}
