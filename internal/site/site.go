// Package site loads the site metadata file (site.yaml): the title, tagline,
// canonical URL, navbar and footer that frame every rendered page.
package site

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/pkg/logger"
)

var Module = fx.Module("site",
	fx.Provide(NewSite),
)

// Site describes the site as a whole. Everything here is authored
// configuration, not request state.
type Site struct {
	Title        string `mapstructure:"title"`
	Tagline      string `mapstructure:"tagline"`
	URL          string `mapstructure:"url"`
	BaseURL      string `mapstructure:"baseUrl"`
	Organization string `mapstructure:"organization"`
	Repository   string `mapstructure:"repository"`

	Navbar Navbar `mapstructure:"navbar"`
	Footer Footer `mapstructure:"footer"`
}

// Navbar holds the top navigation items in display order.
type Navbar struct {
	Items []NavItem `mapstructure:"items"`
}

// NavItem is one navigation link. To targets a site route, Href an external
// URL; exactly one of them should be set.
type NavItem struct {
	Label string `mapstructure:"label"`
	To    string `mapstructure:"to"`
	Href  string `mapstructure:"href"`
}

// External reports whether the item leaves the site.
func (n NavItem) External() bool {
	return n.Href != ""
}

// URL returns the link target regardless of kind.
func (n NavItem) URL() string {
	if n.Href != "" {
		return n.Href
	}
	return n.To
}

// Footer holds the footer link groups and the copyright line.
type Footer struct {
	Groups    []LinkGroup `mapstructure:"groups"`
	Copyright string      `mapstructure:"copyright"`
}

// LinkGroup is one titled column of footer links.
type LinkGroup struct {
	Title string    `mapstructure:"title"`
	Items []NavItem `mapstructure:"items"`
}

// AbsoluteURL joins a site-internal path onto the canonical URL. Used by the
// sitemap and anywhere a full URL is required.
func (s *Site) AbsoluteURL(path string) string {
	base := strings.TrimRight(s.URL, "/")
	prefix := strings.TrimRight(s.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + prefix + path
}

// Load reads the site metadata file. A missing file is not an error: the
// defaults describe a working local site. SITE_* environment variables
// override individual keys.
func Load(path string) (*Site, error) {
	v := viper.New()

	v.SetDefault("title", "AKS Labs")
	v.SetDefault("tagline", "Hands-on tutorials for Azure Kubernetes Service")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("baseUrl", "/")
	v.SetDefault("organization", "aks-labs")
	v.SetDefault("repository", "https://github.com/aks-labs/website")

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read site config %s: %w", path, err)
		}
	}

	s := &Site{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}

	applyDefaults(s)
	return s, nil
}

// applyDefaults fills the structured parts viper defaults cannot express.
func applyDefaults(s *Site) {
	if len(s.Navbar.Items) == 0 {
		s.Navbar.Items = []NavItem{
			{Label: "Docs", To: "/docs"},
			{Label: "GitHub", Href: s.Repository},
		}
	}
	if len(s.Footer.Groups) == 0 {
		s.Footer.Groups = []LinkGroup{
			{
				Title: "Docs",
				Items: []NavItem{
					{Label: "Getting Started", To: "/docs/getting-started/intro"},
					{Label: "AKS Tutorials", To: "/docs"},
				},
			},
			{
				Title: "More",
				Items: []NavItem{
					{Label: "GitHub", Href: s.Repository},
				},
			},
		}
	}
	if s.Footer.Copyright == "" {
		s.Footer.Copyright = fmt.Sprintf("Copyright © %d %s. Built with Go.", time.Now().Year(), s.Title)
	}
}

// NewSite loads the site metadata for the fx graph.
func NewSite(cfg *config.Config, log *slog.Logger) (*Site, error) {
	s, err := Load(cfg.Content.SitePath())
	if err != nil {
		return nil, err
	}

	log.Info("site configuration loaded",
		logger.Scope("site"),
		slog.String("title", s.Title),
		slog.String("url", s.URL),
	)

	return s, nil
}
