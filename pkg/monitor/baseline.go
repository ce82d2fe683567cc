// Package monitor is the scheduled-rerun loop (C9) and the monitor
// baseline store (C12): the `-mf` snapshot the rerun loop diffs a fresh
// enumeration pass against.
package monitor

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/cnf/structhash"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Baseline is a single apex's last-known host set.
type Baseline struct {
	Apex      string    `json:"apex"`
	Hosts     []string  `json:"hosts"`
	Hash      string    `json:"hash"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBaseline builds a Baseline from a host set and stamps its
// structural hash, used to cheaply short-circuit diffing when nothing
// changed between runs.
func NewBaseline(apex string, hosts []string, now time.Time) Baseline {
	b := Baseline{Apex: apex, Hosts: hosts, UpdatedAt: now}
	b.Hash = hashHosts(hosts)
	return b
}

func hashHosts(hosts []string) string {
	h, err := structhash.Hash(hosts, 1)
	if err != nil {
		return ""
	}
	return h
}

// Store persists and retrieves a Baseline for an apex.
type Store interface {
	Load(apex string) (Baseline, bool, error)
	Save(b Baseline) error
}

// FileStore is the required, file-based baseline store (-mf path).
type FileStore struct {
	path string
}

// NewFileStore returns a Store backed by a single JSON file holding one
// Baseline per apex it has ever seen.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) readAll() (map[string]Baseline, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Baseline{}, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]Baseline{}, nil
	}
	var all map[string]Baseline
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// Load returns the stored Baseline for apex, if any.
func (s *FileStore) Load(apex string) (Baseline, bool, error) {
	all, err := s.readAll()
	if err != nil {
		return Baseline{}, false, err
	}
	b, ok := all[apex]
	return b, ok, nil
}

// Save writes b, overwriting any prior baseline for the same apex.
func (s *FileStore) Save(b Baseline) error {
	all, err := s.readAll()
	if err != nil {
		return err
	}
	all[b.Apex] = b

	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// PostgresStore is an additive, optional baseline backend selected via
// --monitor-dsn; the file-based store remains the default.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens dsn and ensures the baselines table exists.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	const ddl = `CREATE TABLE IF NOT EXISTS zonecrawler_baselines (
		apex TEXT PRIMARY KEY,
		hosts JSONB NOT NULL,
		hash TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Load returns the stored Baseline for apex, if any.
func (s *PostgresStore) Load(apex string) (Baseline, bool, error) {
	var b Baseline
	var hostsRaw []byte
	row := s.db.QueryRow(`SELECT apex, hosts, hash, updated_at FROM zonecrawler_baselines WHERE apex = $1`, apex)
	if err := row.Scan(&b.Apex, &hostsRaw, &b.Hash, &b.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return Baseline{}, false, nil
		}
		return Baseline{}, false, err
	}
	if err := json.Unmarshal(hostsRaw, &b.Hosts); err != nil {
		return Baseline{}, false, err
	}
	return b, true, nil
}

// Save upserts b.
func (s *PostgresStore) Save(b Baseline) error {
	hostsRaw, err := json.Marshal(b.Hosts)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO zonecrawler_baselines (apex, hosts, hash, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (apex) DO UPDATE SET hosts = $2, hash = $3, updated_at = $4
	`, b.Apex, hostsRaw, b.Hash, b.UpdatedAt)
	return err
}

// Diff reports hosts present in next but not prev. When prev and next
// share a structural hash, the diff is skipped entirely — the structural
// hash exists to make that common "nothing changed" case cheap.
func Diff(prev, next Baseline) (added []string) {
	if prev.Hash != "" && prev.Hash == next.Hash {
		return nil
	}
	known := make(map[string]struct{}, len(prev.Hosts))
	for _, h := range prev.Hosts {
		known[h] = struct{}{}
	}
	for _, h := range next.Hosts {
		if _, ok := known[h]; !ok {
			added = append(added, h)
		}
	}
	return added
}

// Summary renders a short human-readable line describing a diff result.
func Summary(apex string, added []string) string {
	return fmt.Sprintf("%s: %d new host(s) since last baseline", apex, len(added))
}
