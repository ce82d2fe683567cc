// Package dictionary is the Dictionary Store (C11): loading the primary
// and loop label dictionaries, and feeding discovered labels back into
// the primary and personal dictionary files, deduplicated and sorted.
//
// Persistence here is effectful and non-atomic, same as the source: a
// read-modify-write with no file lock. Concurrent runs against the same
// dictionary files will race; this is accepted and documented rather
// than solved, matching the single-run usage the source assumes.
package dictionary

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads one label per line from path, deduplicated and
// order-insensitive. A missing file yields an empty, non-error result.
// A missing primary dictionary is not a startup error: the runner
// replaces an empty primary or loop dictionary with Builtin().
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		label := strings.TrimSpace(scanner.Text())
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels, scanner.Err()
}

// Feedback appends newLabels to both the primary dictionary at
// primaryPath and the personal dictionary at personalPath, deduplicated
// against each file's existing contents and rewritten sorted. Running
// this twice with the same newLabels is idempotent: the files are
// byte-identical across the second call.
func Feedback(primaryPath, personalPath string, newLabels []string) error {
	if err := mergeAndRewrite(primaryPath, newLabels); err != nil {
		return err
	}
	return mergeAndRewrite(personalPath, newLabels)
}

func mergeAndRewrite(path string, newLabels []string) error {
	existing, err := Load(path)
	if err != nil {
		return err
	}

	merged := make(map[string]struct{}, len(existing)+len(newLabels))
	for _, l := range existing {
		merged[l] = struct{}{}
	}
	for _, l := range newLabels {
		if l == "" {
			continue
		}
		merged[l] = struct{}{}
	}

	sorted := make([]string, 0, len(merged))
	for l := range merged {
		sorted = append(sorted, l)
	}
	sort.Strings(sorted)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var sb strings.Builder
	for _, l := range sorted {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// LabelsOf splits host's leftmost components below apex into labels
// suitable for dictionary feedback — e.g. host "a.b.example.com" under
// apex "example.com" yields "a.b". Hosts equal to the apex yield no
// label.
func LabelsOf(host, apex string) string {
	suffix := "." + apex
	if !strings.HasSuffix(host, suffix) {
		return ""
	}
	return strings.TrimSuffix(host, suffix)
}
