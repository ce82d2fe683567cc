package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDomain(t *testing.T) {
	assert.True(t, IsDomain("example.com"))
	assert.True(t, IsDomain("www.example.com"))
	assert.False(t, IsDomain("example"))
	assert.False(t, IsDomain("-bad.example.com"))
	assert.False(t, IsDomain(""))
}

func TestSortedUniqueIPs(t *testing.T) {
	ips := SortedUniqueIPs([]string{"5.6.7.8", "1.2.3.4", "5.6.7.8"})
	assert.Equal(t, []string{"1.2.3.4", "5.6.7.8"}, ips)
}

func TestResultMapConcurrentPut(t *testing.T) {
	m := NewResultMap()
	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func(i int) {
			m.Put(NewHostRecord("host.example.com", []string{"1.2.3.4"}, ""))
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 50; i++ {
		<-done
	}
	require.Equal(t, 1, m.Len())
	assert.True(t, m.Has("host.example.com"))
}

func TestResultMapRecordsSorted(t *testing.T) {
	m := NewResultMap()
	m.Put(NewHostRecord("b.example.com", nil, ""))
	m.Put(NewHostRecord("a.example.com", nil, ""))
	recs := m.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "a.example.com", recs[0].Name)
	assert.Equal(t, "b.example.com", recs[1].Name)
}

func TestSeenSetAddIfNew(t *testing.T) {
	s := NewSeenSet()
	assert.True(t, s.AddIfNew("a.example.com"))
	assert.False(t, s.AddIfNew("a.example.com"))
}
