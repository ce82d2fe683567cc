package dictionary

// environments and separators used by EnrichLoopLabels, adapted from the
// teacher's permutation generator. Typosquatting-style character
// mutation is deliberately not carried over: it multiplies the loop
// dictionary by label length and produces candidates that are not
// derived from any discovered host, which would make dictionary
// feedback (the file write) noisy without adding enumeration value.
var (
	enrichEnvironments = []string{"dev", "test", "stage", "staging", "prod", "beta", "uat"}
	enrichSeparators   = []string{"-", ""}
)

// EnrichLoopLabels takes the labels of hosts discovered in a pass and
// proposes additional loop-dictionary candidates by combining each label
// with a small set of environment words. This is an opt-in widening of
// the loop pass's candidate set — it never touches the dictionary
// feedback files, so it has no effect on Feedback's idempotency
// guarantee.
func EnrichLoopLabels(discoveredLabels []string) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(label string) {
		if label == "" {
			return
		}
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	for _, label := range discoveredLabels {
		for _, env := range enrichEnvironments {
			for _, sep := range enrichSeparators {
				add(env + sep + label)
				add(label + sep + env)
			}
		}
	}
	return out
}
