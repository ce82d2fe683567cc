package wildcard

import "math"

// Similarity computes the quick-ratio upper bound on character overlap
// between two bodies, normalized to [0,1] and rounded to three decimals.
// This is deliberately not a true LCS ratio — a full LCS is O(n²) and
// prohibitive at scale — so it is a one-sided over-estimate: it never
// under-reports similarity, which keeps it safe against false rejections
// of wildcard responses at the cost of the occasional false acceptance
// on short bodies (see the Open Question this implements).
//
// Length-equal bodies short-circuit to 1.0.
func Similarity(a, b []byte) float64 {
	if len(a) == len(b) {
		return 1.0
	}
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	var countA, countB [256]int
	for _, c := range a {
		countA[c]++
	}
	for _, c := range b {
		countB[c]++
	}

	matches := 0
	for i := 0; i < 256; i++ {
		if countA[i] < countB[i] {
			matches += countA[i]
		} else {
			matches += countB[i]
		}
	}

	ratio := 2.0 * float64(matches) / float64(len(a)+len(b))
	return round3(ratio)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
