package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApexesFromSingleDomain(t *testing.T) {
	r := &Runner{options: &Options{Apex: "Example.com"}}
	apexes, err := r.loadApexes()
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com"}, apexes)
}

func TestLoadApexesFromSingleDomainRejectsInvalid(t *testing.T) {
	r := &Runner{options: &Options{Apex: "not a domain"}}
	_, err := r.loadApexes()
	assert.ErrorContains(t, err, "not a domain")
}

func TestLoadApexesFromFileDedupesAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apexes.txt")
	content := "example.com\nEXAMPLE.COM\nnot a domain\nother.com\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := &Runner{options: &Options{ApexFile: path}}
	apexes, err := r.loadApexes()
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "other.com"}, apexes)
}

func TestLoadApexesFromFileWithNoValidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apexes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a domain\n"), 0o644))

	r := &Runner{options: &Options{ApexFile: path}}
	_, err := r.loadApexes()
	assert.ErrorContains(t, err, "no valid apex domains")
}

func TestLoadApexesFromMissingFile(t *testing.T) {
	r := &Runner{options: &Options{ApexFile: "/nonexistent/apexes.txt"}}
	_, err := r.loadApexes()
	assert.ErrorContains(t, err, "could not open apex file")
}
