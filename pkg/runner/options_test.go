package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequiresApexOrFile(t *testing.T) {
	opts := &Options{Workers: 1}
	err := opts.validate()
	assert.ErrorContains(t, err, "-d or -f")
}

func TestValidateRejectsBothApexAndFile(t *testing.T) {
	opts := &Options{Apex: "example.com", ApexFile: "apexes.txt", Workers: 1}
	err := opts.validate()
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestValidateRejectsMissingApexFile(t *testing.T) {
	opts := &Options{ApexFile: "/nonexistent/apexes.txt", Workers: 1}
	err := opts.validate()
	assert.ErrorContains(t, err, "does not exist")
}

func TestValidateRejectsBadStartTime(t *testing.T) {
	opts := &Options{Apex: "example.com", Workers: 1, StartTime: "25:99", MonitorFile: "m.json"}
	err := opts.validate()
	assert.ErrorContains(t, err, "--start-time")
}

func TestValidateRequiresMonitorFileWithStartTime(t *testing.T) {
	opts := &Options{Apex: "example.com", Workers: 1, StartTime: "03:00"}
	err := opts.validate()
	assert.ErrorContains(t, err, "-mf")
}

func TestValidateRejectsNonPositiveWorkers(t *testing.T) {
	opts := &Options{Apex: "example.com", Workers: 0}
	err := opts.validate()
	assert.ErrorContains(t, err, "-t")
}

func TestValidateAcceptsMinimalApexOnly(t *testing.T) {
	opts := &Options{Apex: "example.com", Workers: 200}
	assert.NoError(t, opts.validate())
}

func TestValidateAcceptsStartTimeWithMonitorFile(t *testing.T) {
	opts := &Options{Apex: "example.com", Workers: 200, StartTime: "03:30", MonitorFile: "m.json"}
	assert.NoError(t, opts.validate())
}
