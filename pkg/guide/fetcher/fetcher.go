// Package fetcher downloads extension articles and extracts their readable text.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"cropadvisor/entities"
)

type Page struct {
	// URL is where the content was served from after redirects.
	URL   string
	Title string
	Text  string
}

// AllowList holds lower-case domains. A host is allowed when it equals a
// domain or is a subdomain of one.
type AllowList []string

func NewAllowList(domains []string) AllowList {
	out := AllowList{}
	for _, d := range domains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func (a AllowList) Allows(host string) bool {
	host = strings.ToLower(host)
	for _, d := range a {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

const maxRedirects = 10

type Fetcher interface {
	Fetch(ctx context.Context, url string) (Page, error)
}

type httpFetcher struct {
	httpc    *http.Client
	allow    AllowList
	maxBytes int64
}

// New returns a fetcher that only requests hosts in allow, including every
// redirect hop.
func New(maxBytes int, timeout time.Duration, allow AllowList) Fetcher {
	f := &httpFetcher{allow: allow, maxBytes: int64(maxBytes)}
	f.httpc = &http.Client{Timeout: timeout, CheckRedirect: f.checkRedirect}
	return f
}

func (f *httpFetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d redirects", entities.ErrUpstream, maxRedirects)
	}
	if !f.allow.Allows(req.URL.Hostname()) {
		return fmt.Errorf("%w: redirect to %s", entities.ErrDomainBlocked, req.URL.Hostname())
	}
	return nil
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, err
	}
	if !f.allow.Allows(req.URL.Hostname()) {
		return Page{}, fmt.Errorf("%w: %s", entities.ErrDomainBlocked, req.URL.Hostname())
	}
	resp, err := f.httpc.Do(req)
	if errors.Is(err, entities.ErrDomainBlocked) {
		return Page{}, err
	}
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("%w: %s returned %d", entities.ErrUpstream, url, resp.StatusCode)
	}
	if resp.ContentLength > f.maxBytes {
		return Page{}, fmt.Errorf("%w: page too large", entities.ErrUpstream)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}

	final := resp.Request.URL.String()
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "text/plain"):
		s := cleanWhitespace(string(b))
		return Page{URL: final, Title: firstLine(s), Text: s}, nil
	case strings.Contains(ct, "text/html"):
		p, err := MainText(bytes.NewReader(b))
		p.URL = final
		return p, err
	}
	return Page{}, fmt.Errorf("%w: unsupported content-type %q", entities.ErrUpstream, ct)
}

// MainText keeps headings, paragraphs and list items from <main> or <article>,
// or from the whole document when neither exists.
func MainText(r io.Reader) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Page{}, err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	var parts []string
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.Join(strings.Fields(s.Text()), " "); t != "" {
			parts = append(parts, t)
		}
	})
	text := cleanWhitespace(strings.Join(parts, "\n"))
	if title == "" {
		title = firstLine(text)
	}
	return Page{Title: title, Text: text}, nil
}

var wsRX = regexp.MustCompile(`[ \t]+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(wsRX.ReplaceAllString(s, "\n"))
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	if r := []rune(line); len(r) > 120 {
		line = string(r[:120])
	}
	return line
}
