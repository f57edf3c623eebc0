package serviceImp

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/guide/fetcher"
	"cropadvisor/pkg/guide/repository"
	"cropadvisor/pkg/guide/service"
)

const snippetRunes = 240

type Svc struct {
	r     repository.GuideRepository
	cat   *catalog.Catalog
	fetch fetcher.Fetcher
	allow fetcher.AllowList
}

// New builds the guide service. Only hosts in allowed can be fetched; an
// empty list blocks URL ingestion.
func New(r repository.GuideRepository, cat *catalog.Catalog, f fetcher.Fetcher, allowed fetcher.AllowList) *Svc {
	return &Svc{r: r, cat: cat, fetch: f, allow: allowed}
}

var _ service.GuideService = (*Svc)(nil)

func (s *Svc) Ingest(ctx context.Context, in service.IngestInput) (*entities.Guide, error) {
	title, text := strings.TrimSpace(in.Title), strings.TrimSpace(in.Text)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidInput)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", entities.ErrInvalidInput)
	}
	key, err := s.cropKey(in.Crop)
	if err != nil {
		return nil, err
	}
	g := &entities.Guide{CropKey: key, Title: title, Text: text, SourceURL: strings.TrimSpace(in.SourceURL)}
	if err := s.r.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("save guide: %w", err)
	}
	return g, nil
}

func (s *Svc) IngestURL(ctx context.Context, rawURL, crop, title string) (*entities.Guide, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: a http(s) url is required", entities.ErrInvalidInput)
	}
	if !s.allow.Allows(u.Hostname()) {
		return nil, fmt.Errorf("%w: %s", entities.ErrDomainBlocked, u.Hostname())
	}
	if _, err := s.cropKey(crop); err != nil {
		return nil, err
	}
	page, err := s.fetch.Fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		title = page.Title
	}
	src := u.String()
	if page.URL != "" {
		src = page.URL
	}
	if strings.TrimSpace(title) == "" {
		title = src
	}
	return s.Ingest(ctx, service.IngestInput{Crop: crop, Title: title, Text: page.Text, SourceURL: src})
}

func (s *Svc) ForCrop(ctx context.Context, crop string) ([]entities.Guide, error) {
	key, err := s.cropKey(crop)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("%w: crop is required", entities.ErrInvalidInput)
	}
	return s.r.ListByCrop(ctx, key)
}

// Search ranks guides by how often the query terms occur, counting title hits
// twice. Ties keep insertion order.
func (s *Svc) Search(ctx context.Context, q string, k int) ([]service.SearchHit, error) {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: q is required", entities.ErrInvalidInput)
	}
	if k <= 0 {
		k = 6
	}
	guides, err := s.r.Matching(ctx, terms)
	if err != nil {
		return nil, fmt.Errorf("search guides: %w", err)
	}

	hits := make([]service.SearchHit, 0, len(guides))
	for _, g := range guides {
		title, text := strings.ToLower(g.Title), strings.ToLower(g.Text)
		score := 0.0
		first := -1
		for _, t := range terms {
			score += 2*float64(strings.Count(title, t)) + float64(strings.Count(text, t))
			if i := strings.Index(text, t); i >= 0 && (first < 0 || i < first) {
				first = i
			}
		}
		if score == 0 {
			continue
		}
		hits = append(hits, service.SearchHit{
			GuideID: g.GuideID, CropKey: g.CropKey, Title: g.Title, SourceURL: g.SourceURL,
			Snippet: snippet(g.Text, first), Score: score,
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// cropKey validates an optional crop name against the catalog.
func (s *Svc) cropKey(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	if _, ok := s.cat.Lookup(name); !ok {
		return "", fmt.Errorf("%w: %q", entities.ErrCropNotFound, name)
	}
	return catalog.Key(name), nil
}

// snippet returns text around byte offset at, or the start of text.
func snippet(text string, at int) string {
	if at < 0 {
		at = 0
	}
	start := min(max(at-40, 0), len(text))
	for start > 0 && start < len(text) && !utf8.RuneStart(text[start]) {
		start--
	}
	r := []rune(text[start:])
	if len(r) > snippetRunes {
		r = r[:snippetRunes]
	}
	return strings.TrimSpace(string(r))
}
