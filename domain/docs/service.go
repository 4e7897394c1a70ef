package docs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/aks-labs/website/domain/metrics"
	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/pkg/logger"
	"github.com/aks-labs/website/pkg/tracing"
)

// ErrNotFound reports that no document carries the requested slug.
var ErrNotFound = errors.New("document not found")

// Service loads every markdown document under the content directory, renders
// it once and serves all reads from memory. Reload swaps the whole store
// under the lock so readers never observe a partially loaded tree.
type Service struct {
	log     *slog.Logger
	content config.ContentConfig
	md      goldmark.Markdown
	metrics *metrics.Metrics

	mu         sync.RWMutex
	bySlug     map[string]*Document
	ordered    []DocumentMeta
	categories []Category
	routes     map[string]struct{}
	loadedAt   time.Time
}

// NewService builds the markdown pipeline and performs the initial load.
// A content directory that cannot be loaded fails startup.
func NewService(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) (*Service, error) {
	s := &Service{
		log:     log.With(logger.Scope("docs")),
		content: cfg.Content,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		metrics: m,
	}

	if err := s.Reload(context.Background()); err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	return s, nil
}

// Reload re-reads the content tree and atomically replaces the store.
func (s *Service) Reload(ctx context.Context) error {
	_, span := tracing.Start(ctx, "content.reload")
	defer span.End()

	start := time.Now()
	docsDir := s.content.DocsDir()

	bySlug := make(map[string]*Document)
	var all []*Document

	err := filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		doc, err := s.parseDocument(docsDir, path)
		if err != nil {
			s.log.Warn("skipping document",
				slog.String("path", path),
				logger.Error(err))
			return nil
		}
		if doc == nil {
			return nil
		}

		if prev, ok := bySlug[doc.Slug]; ok {
			s.log.Warn("duplicate slug, keeping first",
				slog.String("slug", doc.Slug),
				slog.String("kept", prev.Path),
				slog.String("dropped", path))
			return nil
		}

		bySlug[doc.Slug] = doc
		all = append(all, doc)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", docsDir, err)
	}

	categories, err := s.loadCategories(all)
	if err != nil {
		return err
	}

	catOrder := make(map[string]int, len(categories))
	for i, c := range categories {
		catOrder[c.ID] = i
	}
	sort.SliceStable(all, func(i, j int) bool {
		ci, cj := categoryRank(catOrder, all[i].Category), categoryRank(catOrder, all[j].Category)
		if ci != cj {
			return ci < cj
		}
		pi, pj := sortPosition(all[i].Position), sortPosition(all[j].Position)
		if pi != pj {
			return pi < pj
		}
		return all[i].Title < all[j].Title
	})

	ordered := make([]DocumentMeta, len(all))
	routes := make(map[string]struct{}, len(all))
	for i, doc := range all {
		ordered[i] = doc.Meta()
		routes[doc.Route()] = struct{}{}
	}

	s.mu.Lock()
	s.bySlug = bySlug
	s.ordered = ordered
	s.categories = categories
	s.routes = routes
	s.loadedAt = time.Now()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.DocumentsLoaded.Set(float64(len(ordered)))
		s.metrics.ContentReloads.Inc()
	}

	span.SetAttributes(
		attribute.Int("content.documents", len(ordered)),
		attribute.Int("content.categories", len(categories)),
	)

	s.log.Info("content store loaded",
		slog.Int("documents", len(ordered)),
		slog.Int("categories", len(categories)),
		slog.Duration("took", time.Since(start)))

	return nil
}

// parseDocument reads one markdown file and renders it. Drafts come back
// as nil with no error.
func (s *Service) parseDocument(root, path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fm Frontmatter
	body, err := frontmatter.Parse(f, &fm)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if fm.Draft {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	doc := &Document{
		ID:          fm.ID,
		Slug:        slug,
		Title:       fm.Title,
		Category:    fm.Category,
		Path:        path,
		Description: fm.Description,
		Tags:        fm.Tags,
		LastUpdated: fm.LastUpdated,
		ReadTime:    fm.ReadTime,
		Related:     fm.Related,
		Position:    fm.Position,
		HTML:        template.HTML(buf.String()),
		Markdown:    string(body),
		ParsedAt:    time.Now(),
	}

	if doc.ID == "" {
		doc.ID = slug
	}
	if doc.Title == "" {
		doc.Title = titleFromSlug(slug)
	}
	if doc.Category == "" {
		doc.Category = categoryFromPath(root, path)
	}
	if doc.LastUpdated == "" {
		if info, err := os.Stat(path); err == nil {
			doc.LastUpdated = info.ModTime().Format("2006-01-02")
		}
	}
	if doc.ReadTime <= 0 {
		doc.ReadTime = estimateReadTime(doc.Markdown)
	}

	return doc, nil
}

// loadCategories reads categories.yaml when present and appends any
// category found in the content but missing from the manifest.
func (s *Service) loadCategories(docs []*Document) ([]Category, error) {
	path := s.content.CategoriesFile()

	var cats []Category
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var manifest struct {
			Categories []Category `yaml:"categories"`
		}
		if err := yaml.Unmarshal(raw, &manifest); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		cats = manifest.Categories
		sort.SliceStable(cats, func(i, j int) bool {
			return sortPosition(cats[i].Position) < sortPosition(cats[j].Position)
		})
	case os.IsNotExist(err):
		s.log.Debug("no categories manifest, deriving from content", slog.String("path", path))
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	known := make(map[string]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
	}
	for _, c := range deriveCategories(docs) {
		if !known[c.ID] {
			cats = append(cats, c)
		}
	}

	return cats, nil
}

func deriveCategories(docs []*Document) []Category {
	seen := make(map[string]bool)
	var cats []Category
	for _, d := range docs {
		if seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		cats = append(cats, Category{ID: d.Category, Name: titleFromSlug(d.Category)})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return cats
}

// List returns every document in sidebar order, without bodies.
func (s *Service) List() []DocumentMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DocumentMeta, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Get returns the rendered document for a slug.
func (s *Service) Get(slug string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return doc, nil
}

// Categories returns the category list in display order.
func (s *Service) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryGroups returns non-empty categories paired with their documents,
// both in sidebar order.
func (s *Service) CategoryGroups() []CategoryGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string][]DocumentMeta)
	for _, m := range s.ordered {
		byCategory[m.Category] = append(byCategory[m.Category], m)
	}

	groups := make([]CategoryGroup, 0, len(s.categories))
	for _, c := range s.categories {
		docs := byCategory[c.ID]
		if len(docs) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{Category: c, Documents: docs})
	}
	return groups
}

// PrevNext returns the documents before and after a slug in sidebar order.
// Either side is nil at the edges of the sequence.
func (s *Service) PrevNext(slug string) (prev, next *DocumentMeta) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.ordered {
		if s.ordered[i].Slug != slug {
			continue
		}
		if i > 0 {
			p := s.ordered[i-1]
			prev = &p
		}
		if i < len(s.ordered)-1 {
			n := s.ordered[i+1]
			next = &n
		}
		return prev, next
	}
	return nil, nil
}

// Routes returns every document route, sorted, for the sitemap and export.
func (s *Service) Routes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.routes))
	for r := range s.routes {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// RouteExists reports whether a site path maps to a loaded document.
func (s *Service) RouteExists(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.routes[path]
	return ok
}

// Count returns the number of loaded documents.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered)
}

// LoadedAt returns the time of the last successful reload.
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// categoryFromPath uses the first directory under the docs root, so
// content/docs/aks/intro.md lands in "aks". Files at the root land in
// "general".
func categoryFromPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "general"
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return "general"
	}
	return strings.Split(filepath.ToSlash(dir), "/")[0]
}

func estimateReadTime(markdown string) int {
	words := len(strings.Fields(markdown))
	mins := (words + 199) / 200
	if mins < 1 {
		mins = 1
	}
	return mins
}

// sortPosition treats an unset position as last.
func sortPosition(p int) int {
	if p == 0 {
		return math.MaxInt
	}
	return p
}

func categoryRank(order map[string]int, id string) int {
	if i, ok := order[id]; ok {
		return i
	}
	return math.MaxInt
}
