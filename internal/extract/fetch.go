package extract

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultUserAgent    = "Mozilla/5.0"
)

// PageFetcher fetches proposal pages and parses them into goquery documents.
// A politeness limiter bounds the outbound request rate.
type PageFetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewPageFetcher creates a PageFetcher. Zero values select the defaults:
// 10 second timeout, browser user-agent, unlimited rate.
func NewPageFetcher(timeout time.Duration, userAgent string, ratePerSec float64) *PageFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &PageFetcher{
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: userAgent,
	}
}

// Fetch retrieves the page at url and parses it. HTTP failures surface the
// remote status code and body snippet; transport failures a generic message.
// Both wrap ErrFetchFailed.
func (f *PageFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrapf(ErrFetchFailed, "rate wait for %s: %v", url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrapf(ErrFetchFailed, "create request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(ErrFetchFailed, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, eris.Wrapf(ErrFetchFailed, "fetch %s: status %d: %s",
			url, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(ErrFetchFailed, "parse %s: %v", url, err)
	}

	return doc, nil
}

// firstHeading returns the trimmed text of the first non-empty match among
// the selectors, tried in order.
func firstHeading(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if t := strings.TrimSpace(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// selectorText concatenates the trimmed text of every node matched by a
// selector group, joined by blank lines. Groups are tried in order until one
// yields content.
func selectorText(doc *goquery.Document, groups ...string) string {
	for _, sel := range groups {
		var parts []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				parts = append(parts, t)
			}
		})
		if len(parts) > 0 {
			return strings.Join(parts, "\n\n")
		}
	}
	return ""
}
