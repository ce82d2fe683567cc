// Package httpprobe fetches http://<host> with a bounded timeout,
// transcodes the body to UTF-8, and extracts the HTML <title>.
package httpprobe

import (
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/corpix/uarand"
	retryablehttp "github.com/projectdiscovery/retryablehttp-go"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

const fetchTimeout = 3 * time.Second

const maxBodyBytes = 2 << 20 // 2MiB, generous for a <title> scrape

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// Client fetches hosts over plain HTTP. The source never tries HTTPS;
// that default is preserved here.
type Client struct {
	http *retryablehttp.Client
}

// New returns an HTTP probe client. The retry engine built into
// retryablehttp-go is disabled (RetryMax 0): the once-only re-queue on
// connection refusal is an engine-level policy owned by the worker pool,
// not a transport-level retry.
func New() *Client {
	opts := retryablehttp.DefaultOptionsSingle
	opts.RetryMax = 0
	opts.Timeout = fetchTimeout

	return &Client{http: retryablehttp.NewClient(opts)}
}

// Result is the outcome of a single fetch.
type Result struct {
	Body      []byte
	Title     string
	Refused   bool
}

// Fetch retrieves http://host. Refused reports a connection refusal (the
// host resolves but nothing listens) — the caller is responsible for the
// once-only re-queue policy. Any other failure (timeout, a body whose
// detected charset cannot be transcoded to UTF-8) yields an empty,
// non-refused Result.
func (c *Client) Fetch(host string) Result {
	req, err := retryablehttp.NewRequest(http.MethodGet, "http://"+host, nil)
	if err != nil {
		return Result{}
	}
	req.Header.Set("User-Agent", uarand.GetRandom())

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Refused: isRefused(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result{}
	}

	body, err := toUTF8(raw)
	if err != nil {
		return Result{}
	}

	return Result{
		Body:  body,
		Title: extractTitle(body),
	}
}

func isRefused(err error) bool {
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "refused")
}

// toUTF8 detects the response charset with chardet and transcodes to
// UTF-8 via the matching htmlindex encoding. Bodies that are already
// UTF-8, or whose charset cannot be determined, pass through unchanged;
// a body in a detected charset that cannot be transcoded is an error.
func toUTF8(raw []byte) ([]byte, error) {
	det := chardet.NewHtmlDetector()
	result, err := det.DetectBest(raw)
	if err != nil || result == nil {
		return raw, nil
	}
	if strings.EqualFold(result.Charset, "UTF-8") || strings.EqualFold(result.Charset, "ASCII") {
		return raw, nil
	}

	enc, err := htmlindex.Get(result.Charset)
	if err != nil {
		return nil, err
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func extractTitle(body []byte) string {
	m := titlePattern.FindSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(string(m[1]))
}
