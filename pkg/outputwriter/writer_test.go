package outputwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskwolf/zonecrawler/pkg/model"
)

func TestWriteTextAppendsAndSkipsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, WriteText(path, []model.HostRecord{
		model.NewHostRecord("example.com", []string{"1.2.3.4"}, ""),
	}))
	require.NoError(t, WriteText(path, []model.HostRecord{
		model.NewHostRecord("example.com", []string{"9.9.9.9"}, ""),
		model.NewHostRecord("www.example.com", []string{"5.6.7.8"}, "Example"),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "example.com ,  , 1.2.3.4")
	assert.NotContains(t, content, "9.9.9.9")
	assert.Contains(t, content, "www.example.com , Example , 5.6.7.8")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "example.com20260101000000.txt", DefaultPath("example.com", "20260101000000"))
}
