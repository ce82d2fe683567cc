package enumerator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskwolf/zonecrawler/pkg/config"
	"github.com/duskwolf/zonecrawler/pkg/httpprobe"
	"github.com/duskwolf/zonecrawler/pkg/model"
	"github.com/duskwolf/zonecrawler/pkg/queue"
)

func TestPoolNonWildcardResolvesAndChasesCNAME(t *testing.T) {
	dns := newFakeDNS()
	dns.a["www.example.com"] = []string{"203.0.113.10"}
	dns.cname["www.example.com"] = []string{"edge.example.com"}
	dns.a["edge.example.com"] = []string{"203.0.113.20"}

	results := model.NewResultMap()
	wc := model.NewWildcardContext()
	seen := model.NewSeenSet()
	seen.AddIfNew("www.example.com")

	q := queue.New()
	q.Push("www.example.com")

	p := NewPool("example.com", dns, newFakeHTTP(), nil, results, wc, seen, 4)
	p.Run(q)

	require.True(t, results.Has("www.example.com"))
	require.True(t, results.Has("edge.example.com"))
	assert.Equal(t, []string{"203.0.113.10"}, results.Records()[indexOf(results, "www.example.com")].IPs)
}

func indexOf(results *model.ResultMap, host string) int {
	for i, r := range results.Records() {
		if r.Name == host {
			return i
		}
	}
	return -1
}

func TestPoolWildcardModeSuppressesSimilarBody(t *testing.T) {
	dns := newFakeDNS()
	dns.a["random123.example.com"] = []string{"203.0.113.1"}

	http := newFakeHTTP()
	http.responses["random123.example.com"] = httpprobe.Result{Body: []byte("<html>parked</html>")}

	results := model.NewResultMap()
	wc := &model.WildcardContext{IsWildcard: true, ReferenceHTML: []byte("<html>parked</html>")}
	wc.ReferenceHTMLLen = len(wc.ReferenceHTML)
	seen := model.NewSeenSet()
	seen.AddIfNew("random123.example.com")

	q := queue.New()
	q.Push("random123.example.com")

	p := NewPool("example.com", dns, http, nil, results, wc, seen, 2)
	p.Run(q)

	assert.False(t, results.Has("random123.example.com"))
}

func TestPoolWildcardModeAdmitsDissimilarBody(t *testing.T) {
	dns := newFakeDNS()
	dns.a["real.example.com"] = []string{"203.0.113.2"}

	http := newFakeHTTP()
	http.responses["real.example.com"] = httpprobe.Result{
		Body:  []byte("<html><title>Real Service</title>totally different content here</html>"),
		Title: "Real Service",
	}

	results := model.NewResultMap()
	wc := &model.WildcardContext{IsWildcard: true, ReferenceHTML: []byte("<html>parked</html>")}
	seen := model.NewSeenSet()
	seen.AddIfNew("real.example.com")

	q := queue.New()
	q.Push("real.example.com")

	p := NewPool("example.com", dns, http, nil, results, wc, seen, 2)
	p.Run(q)

	require.True(t, results.Has("real.example.com"))
}

func TestPoolFilterSuppressesConfiguredTitle(t *testing.T) {
	dns := newFakeDNS()
	dns.a["blocked.example.com"] = []string{"203.0.113.3"}

	http := newFakeHTTP()
	http.responses["blocked.example.com"] = httpprobe.Result{
		Body:  []byte("<html><title>Suspended Domain</title></html>"),
		Title: "Suspended Domain",
	}

	cfg := &config.Config{TitleFilters: []string{"Suspended"}}
	results := model.NewResultMap()
	wc := &model.WildcardContext{IsWildcard: true, ReferenceHTML: []byte("<html>unrelated</html>")}
	seen := model.NewSeenSet()
	seen.AddIfNew("blocked.example.com")

	q := queue.New()
	q.Push("blocked.example.com")

	p := NewPool("example.com", dns, http, cfg, results, wc, seen, 1)
	p.Run(q)

	assert.False(t, results.Has("blocked.example.com"))
}

func TestPoolRetriesOnceOnRefusalThenGivesUp(t *testing.T) {
	dns := newFakeDNS()
	http := newFakeHTTP()
	http.responses["flaky.example.com"] = httpprobe.Result{Refused: true}

	results := model.NewResultMap()
	wc := &model.WildcardContext{IsWildcard: true}
	seen := model.NewSeenSet()
	seen.AddIfNew("flaky.example.com")

	q := queue.New()
	q.Push("flaky.example.com")

	p := NewPool("example.com", dns, http, nil, results, wc, seen, 1)
	p.Run(q)

	assert.Equal(t, 2, http.callCount("flaky.example.com"))
	assert.False(t, results.Has("flaky.example.com"))
}

func TestPoolEnqueueDiscoveryRejectsOffApexAndDuplicates(t *testing.T) {
	dns := newFakeDNS()
	results := model.NewResultMap()
	seen := model.NewSeenSet()
	p := NewPool("example.com", dns, newFakeHTTP(), nil, results, model.NewWildcardContext(), seen, 1)

	q := queue.New()
	p.enqueueDiscovery("evil.other.com", q)
	assert.Equal(t, 0, q.Len())

	p.enqueueDiscovery("new.example.com", q)
	assert.Equal(t, 1, q.Len())

	p.enqueueDiscovery("new.example.com", q)
	assert.Equal(t, 1, q.Len())
}
