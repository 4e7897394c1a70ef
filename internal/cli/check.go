package cli

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/go-resty/resty/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/domain/features"
	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/internal/version"
)

var checkFlags struct {
	external bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content tree",
	Long: `Check parses every document, verifies its frontmatter, resolves
internal documentation links and related references, confirms each
document's category exists in the manifest, and makes sure the homepage
feature cards point at documents that exist.

Use --external to also probe external links over HTTP.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkFlags.external, "external", false, "Probe external links over HTTP")
	rootCmd.AddCommand(checkCmd)
}

// issue is a single problem found in the content tree. Errors fail the
// command, warnings only show up in the report.
type issue struct {
	level   string
	file    string
	message string
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger()

	svc, _, cfg, err := loadContent(log)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	fmt.Printf("Checking %d documents in %s\n", svc.Count(), cfg.Content.DocsDir())

	issues, err := checkContent(svc, cfg.Content, checkFlags.external)
	if err != nil {
		return err
	}
	issues = append(issues, checkFeatureCards(svc)...)

	if len(issues) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	fmt.Println()
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Level", "File", "Problem")
	for _, is := range issues {
		table.Append(is.level, is.file, is.message)
	}
	if err := table.Render(); err != nil {
		return err
	}

	errors := 0
	for _, is := range issues {
		if is.level == "error" {
			errors++
		}
	}

	fmt.Println()
	if errors > 0 {
		return fmt.Errorf("%d problem(s) found", errors)
	}
	fmt.Printf("%d warning(s), no errors\n", len(issues))
	return nil
}

var linkPattern = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)[^)]*\)`)

// checkContent walks the docs tree and validates every document against
// the loaded store. The service has already dropped drafts, unparsable
// files and duplicate slugs, so the walk re-reads each file to attribute
// those problems to a path.
func checkContent(svc *docs.Service, content config.ContentConfig, external bool) ([]issue, error) {
	var issues []issue

	manifest := make(map[string]bool)
	hasManifest := false
	raw, err := os.ReadFile(content.CategoriesFile())
	switch {
	case err == nil:
		var m struct {
			Categories []docs.Category `yaml:"categories"`
		}
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", content.CategoriesFile(), err)
		}
		hasManifest = true
		for _, c := range m.Categories {
			manifest[c.ID] = true
		}
	case os.IsNotExist(err):
		// Categories derive from directories, nothing to validate against.
	default:
		return nil, err
	}

	docsDir := content.DocsDir()
	slugFiles := make(map[string][]string)
	var externals []linkRef

	err = filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		rel, err := filepath.Rel(content.Dir, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		f, err := os.Open(path)
		if err != nil {
			issues = append(issues, issue{"error", rel, fmt.Sprintf("unreadable: %v", err)})
			return nil
		}
		var fm docs.Frontmatter
		body, err := frontmatter.Parse(f, &fm)
		f.Close()
		if err != nil {
			issues = append(issues, issue{"error", rel, fmt.Sprintf("invalid frontmatter: %v", err)})
			return nil
		}
		if fm.Draft {
			return nil
		}

		slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		slugFiles[slug] = append(slugFiles[slug], rel)

		if fm.Title == "" {
			issues = append(issues, issue{"warn", rel, "missing title, the slug will be used"})
		}
		if fm.Description == "" {
			issues = append(issues, issue{"warn", rel, "missing description"})
		}
		if fm.LastUpdated != "" {
			if _, err := time.Parse("2006-01-02", fm.LastUpdated); err != nil {
				issues = append(issues, issue{"warn", rel, fmt.Sprintf("lastUpdated %q is not YYYY-MM-DD", fm.LastUpdated)})
			}
		}

		if hasManifest {
			category := fm.Category
			if category == "" {
				category = categoryFromDir(docsDir, path)
			}
			if !manifest[category] {
				issues = append(issues, issue{"error", rel, fmt.Sprintf("category %q is not in the manifest", category)})
			}
		}

		for _, match := range linkPattern.FindAllStringSubmatch(string(body), -1) {
			target := match[1]
			switch {
			case strings.HasPrefix(target, "/docs"):
				route := strings.SplitN(target, "#", 2)[0]
				route = strings.TrimSuffix(route, "/")
				if route != "/docs" && !svc.RouteExists(route) {
					issues = append(issues, issue{"error", rel, fmt.Sprintf("broken link %s", target)})
				}
			case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
				if external {
					externals = append(externals, linkRef{file: rel, url: target})
				}
			}
		}

		for _, related := range fm.Related {
			if _, err := svc.Get(related); err != nil {
				issues = append(issues, issue{"error", rel, fmt.Sprintf("related document %q does not exist", related)})
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", docsDir, err)
	}

	slugs := make([]string, 0, len(slugFiles))
	for slug := range slugFiles {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		files := slugFiles[slug]
		if len(files) < 2 {
			continue
		}
		for _, file := range files[1:] {
			issues = append(issues, issue{"error", file, fmt.Sprintf("slug %q already used by %s", slug, files[0])})
		}
	}

	if len(externals) > 0 {
		issues = append(issues, probeExternalLinks(externals)...)
	}

	return issues, nil
}

// checkFeatureCards verifies the homepage cards against the loaded store.
// The card list is compiled in, so a renamed or deleted document would
// otherwise ship a dead link on the front page.
func checkFeatureCards(svc *docs.Service) []issue {
	var issues []issue
	for _, item := range features.Items() {
		if !svc.RouteExists(item.LinkTo) {
			issues = append(issues, issue{"error", "homepage", fmt.Sprintf("feature card %q links to unknown route %s", item.Title, item.LinkTo)})
		}
	}
	return issues
}

// categoryFromDir mirrors how the store assigns categories to documents
// without one in the frontmatter.
func categoryFromDir(root, path string) string {
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

type linkRef struct {
	file string
	url  string
}

// probeExternalLinks sends a HEAD request per unique URL, falling back to
// GET for hosts that reject HEAD. External sites flake, so failures are
// warnings rather than errors.
func probeExternalLinks(links []linkRef) []issue {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", version.UserAgent())

	var issues []issue
	seen := make(map[string]bool, len(links))
	for _, l := range links {
		if seen[l.url] {
			continue
		}
		seen[l.url] = true

		resp, err := client.R().Head(l.url)
		if err != nil || resp.StatusCode() == http.StatusMethodNotAllowed {
			resp, err = client.R().Get(l.url)
		}
		if err != nil {
			issues = append(issues, issue{"warn", l.file, fmt.Sprintf("external link %s: %v", l.url, err)})
			continue
		}
		if resp.StatusCode() >= http.StatusBadRequest {
			issues = append(issues, issue{"warn", l.file, fmt.Sprintf("external link %s returned %d", l.url, resp.StatusCode())})
		}
	}
	return issues
}
