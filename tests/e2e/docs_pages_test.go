package e2e

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aks-labs/website/internal/testutil"
)

// DocsPagesTestSuite tests the server-rendered documentation pages
type DocsPagesTestSuite struct {
	testutil.BaseSuite
}

func TestDocsPagesSuite(t *testing.T) {
	suite.Run(t, new(DocsPagesTestSuite))
}

const browserAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// =============================================================================
// Test: Docs Index
// =============================================================================

func (s *DocsPagesTestSuite) TestDocsIndex_GroupsByCategory() {
	resp := s.Client.GET("/docs")

	s.Equal(http.StatusOK, resp.StatusCode)

	body := resp.String()
	s.Contains(body, "Getting Started")
	s.Contains(body, "AKS Tutorials")
	s.Contains(body, "Workload Identities in AKS")
}

// =============================================================================
// Test: Document Pages
// =============================================================================

func (s *DocsPagesTestSuite) TestDocPage_RendersMarkdown() {
	resp := s.Client.GET("/docs/aks/aks-scaling")

	s.Equal(http.StatusOK, resp.StatusCode)

	body := resp.String()
	s.Contains(body, "<title>Scaling in AKS | AKS Labs</title>")
	s.Contains(body, `<h2 id="cluster-autoscaler">`)
	s.Contains(body, "<table>", "GFM tables should render")
	s.Contains(body, "sidebar__link--active")
}

func (s *DocsPagesTestSuite) TestDocPage_TrailingSlash() {
	resp := s.Client.GET("/docs/aks/aks-scaling/")
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *DocsPagesTestSuite) TestDocPage_PrevNextNavigation() {
	resp := s.Client.GET("/docs/aks/aks-scaling")
	s.Equal(http.StatusOK, resp.StatusCode)

	body := resp.String()
	s.Contains(body, "Previous")
	s.Contains(body, "/docs/aks/aks-workload-identities")
}

// =============================================================================
// Test: Not Found
// =============================================================================

func (s *DocsPagesTestSuite) TestDocPage_UnknownSlug_HTMLForBrowsers() {
	resp := s.Client.GET("/docs/aks/does-not-exist",
		testutil.WithAccept(browserAccept),
	)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Contains(resp.Headers.Get("Content-Type"), "text/html")

	body := resp.String()
	s.Contains(body, "404")
	s.Contains(body, "Back to Home")
}

func (s *DocsPagesTestSuite) TestDocPage_UnknownSlug_JSONWithoutAcceptHeader() {
	resp := s.Client.GET("/docs/aks/does-not-exist")

	s.Equal(http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	s.NoError(json.Unmarshal(resp.Body, &body))

	errObj, ok := body["error"].(map[string]any)
	s.True(ok)
	s.Equal("not_found", errObj["code"])
}

func (s *DocsPagesTestSuite) TestDocPage_WrongCategoryIs404() {
	// aks-scaling exists, but under aks
	resp := s.Client.GET("/docs/getting-started/aks-scaling")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
