// Package outputwriter is the result writer (C8): an append-only,
// comma-separated text file of discovered hosts, plus a faster
// JSON-lines mode for tooling that wants structured output.
package outputwriter

import (
	"bufio"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/duskwolf/zonecrawler/pkg/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteText appends records whose host is not already present in the
// file at path, in the `<host> , <title> , <ip1> , <ip2> , ...` format,
// one line per host, UTF-8, Unix newlines. Existing hosts are left
// untouched.
func WriteText(path string, records []model.HostRecord) error {
	existing, err := existingHosts(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, rec := range records {
		if _, ok := existing[rec.Name]; ok {
			continue
		}
		fields := append([]string{rec.Name, rec.Title}, rec.IPs...)
		if _, err := w.WriteString(strings.Join(fields, " , ") + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteJSON appends one JSON object per line for records not already in
// the file — the domain enrichment over the default text format.
func WriteJSON(path string, records []model.HostRecord) error {
	existing, err := existingJSONHosts(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, rec := range records {
		if _, ok := existing[rec.Name]; ok {
			continue
		}
		line, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return w.Flush()
}

func existingHosts(path string) (map[string]struct{}, error) {
	hosts := make(map[string]struct{})
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return hosts, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), " , ", 2)
		if len(parts) == 0 || parts[0] == "" {
			continue
		}
		hosts[parts[0]] = struct{}{}
	}
	return hosts, scanner.Err()
}

func existingJSONHosts(path string) (map[string]struct{}, error) {
	hosts := make(map[string]struct{})
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return hosts, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec model.HostRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		hosts[rec.Name] = struct{}{}
	}
	return hosts, scanner.Err()
}

// DefaultPath builds the `<apex-or-file><YYYYMMDDHHMMSS>.txt` fallback
// output path used when -o is omitted.
func DefaultPath(apexOrFile, timestamp string) string {
	return apexOrFile + timestamp + ".txt"
}
