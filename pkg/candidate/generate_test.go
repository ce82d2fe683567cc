package candidate

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDedupAndValidation(t *testing.T) {
	out := Generate("example.com", []string{"www", "www", "-bad", "mail"})
	sort.Strings(out)
	assert.Equal(t, []string{"example.com", "mail.example.com", "www.example.com"}, out)
}

func TestGenerateEmptyLabels(t *testing.T) {
	out := Generate("example.com", nil)
	assert.Equal(t, []string{"example.com"}, out)
}
