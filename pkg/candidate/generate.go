// Package candidate implements the Candidate Generator (C3): the
// cartesian product of labels and a parent domain, filtered by the DNS
// grammar and deduplicated.
package candidate

import "github.com/duskwolf/zonecrawler/pkg/model"

// Generate returns {parent} ∪ { label + "." + parent : label in labels,
// valid(label + "." + parent) }, deduplicated. The result is not sorted
// — the Work Queue consumes it in LIFO order regardless of insertion
// order.
func Generate(parent string, labels []string) []string {
	seen := make(map[string]struct{}, len(labels)+1)
	out := make([]string, 0, len(labels)+1)

	add := func(host string) {
		if _, ok := seen[host]; ok {
			return
		}
		seen[host] = struct{}{}
		out = append(out, host)
	}

	add(parent)
	for _, label := range dedup(labels) {
		host := model.CandidateHost(label, parent)
		if model.IsDomain(host) {
			add(host)
		}
	}
	return out
}

func dedup(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
