package docs

import (
	"html/template"
	"time"
)

// Frontmatter is the YAML header authored at the top of every document.
type Frontmatter struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	LastUpdated string   `yaml:"lastUpdated"`
	ReadTime    int      `yaml:"readTime"`
	Related     []string `yaml:"related"`
	Position    int      `yaml:"position"`
	Draft       bool     `yaml:"draft"`
}

// Document is a parsed and rendered document. HTML is the goldmark output
// of the markdown body; Markdown keeps the raw body for tooling.
type Document struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Path        string        `json:"path"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	LastUpdated string        `json:"lastUpdated"`
	ReadTime    int           `json:"readTime"`
	Related     []string      `json:"related"`
	Position    int           `json:"position"`
	HTML        template.HTML `json:"content"`
	Markdown    string        `json:"-"`
	ParsedAt    time.Time     `json:"parsedAt"`
}

// Route returns the site path the document is served under.
func (d *Document) Route() string {
	return "/docs/" + d.Category + "/" + d.Slug
}

// Meta strips the document down to its listing form.
func (d *Document) Meta() DocumentMeta {
	return DocumentMeta{
		ID:          d.ID,
		Slug:        d.Slug,
		Title:       d.Title,
		Category:    d.Category,
		Path:        d.Path,
		Description: d.Description,
		Tags:        d.Tags,
		LastUpdated: d.LastUpdated,
		ReadTime:    d.ReadTime,
		Related:     d.Related,
		Position:    d.Position,
	}
}

// DocumentMeta is a document without its body, used for listings, sidebars
// and the JSON list endpoint.
type DocumentMeta struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	LastUpdated string   `json:"lastUpdated"`
	ReadTime    int      `json:"readTime"`
	Related     []string `json:"related"`
	Position    int      `json:"position"`
}

// Route returns the site path the document is served under.
func (m DocumentMeta) Route() string {
	return "/docs/" + m.Category + "/" + m.Slug
}

// DocumentList is the JSON list response.
type DocumentList struct {
	Documents []DocumentMeta `json:"documents"`
	Total     int            `json:"total"`
}

// Category carries the display metadata declared in categories.yaml.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Position    int    `yaml:"position" json:"position"`
}

// CategoriesResponse is the JSON categories response.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
}

// CategoryGroup pairs a category with its documents in sidebar order.
type CategoryGroup struct {
	Category  Category
	Documents []DocumentMeta
}
