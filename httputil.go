package stalker

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/stalking-stocks/stalker/timeseries"
)

// browserUA is sent on every request: the quote endpoints reject the
// default Go user agent.
const browserUA = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

// NewDailyClient returns a client whose responses are cached on disk
// until the end of the day.
func NewDailyClient() *http.Client {
	return &http.Client{Transport: &diskCache{next: http.DefaultTransport}}
}

// NewMonthlyClient returns a client whose responses are cached on disk
// until the end of the month.
func NewMonthlyClient() *http.Client {
	return &http.Client{Transport: &diskCache{next: http.DefaultTransport, period: timeseries.Monthly}}
}

// diskCache caches successful responses in the system temp directory.
//
// The cache file name embeds the identifier of the current period, so
// entries expire on their own when the period rolls over: daily for
// quotes and bars, monthly for the slow-moving profile and sector
// pages. Stale files are left for the OS to reap.
type diskCache struct {
	next   http.RoundTripper
	period timeseries.Period // zero value is Daily
}

// file returns the cache path for req within the current period.
func (c *diskCache) file(req *http.Request) string {
	id := c.period.Range(timeseries.Today()).Identifier()
	sum := sha1.Sum([]byte(id + " " + req.Method + " " + req.URL.String()))
	return filepath.Join(os.TempDir(), fmt.Sprintf("stks-%s-%x", c.period, sum))
}

// RoundTrip implements http.RoundTripper. A response cached within the
// current period is replayed from disk; anything else goes out on the
// network and, when successful, is written back to the cache.
func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", browserUA)

	file := c.file(req)
	if content, err := os.ReadFile(file); err == nil {
		if resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req); err == nil {
			return resp, nil
		}
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	// DumpResponse replaces resp.Body with a fresh reader, so the
	// caller still gets the full body after the dump.
	if content, err := httputil.DumpResponse(resp, true); err == nil {
		if err := os.WriteFile(file, content, 0o644); err != nil {
			log.Printf("cache write failed (ignored): %v", err)
		}
	}
	return resp, nil
}
