package e2e

import (
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aks-labs/website/internal/testutil"
)

// HomepageTestSuite tests the rendered homepage
type HomepageTestSuite struct {
	testutil.BaseSuite
}

func TestHomepageSuite(t *testing.T) {
	suite.Run(t, new(HomepageTestSuite))
}

func (s *HomepageTestSuite) TestHomepage_Renders() {
	resp := s.Client.GET("/")

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Headers.Get("Content-Type"), "text/html")

	body := resp.String()
	s.Contains(body, "<!doctype html>")
	s.Contains(body, "AKS Labs")
}

func (s *HomepageTestSuite) TestHomepage_FeatureCardsInOrder() {
	resp := s.Client.GET("/")
	s.Equal(http.StatusOK, resp.StatusCode)

	body := resp.String()
	s.Contains(body, "<h3>Workload Identities in AKS</h3>")
	s.Contains(body, "<h3>Scaling in AKS</h3>")

	s.Less(
		strings.Index(body, "Workload Identities in AKS"),
		strings.Index(body, "Scaling in AKS"),
		"Cards should keep their declared order",
	)
}

var readLinkPattern = regexp.MustCompile(`href="(/docs/[^"]+)">Read</a>`)

func (s *HomepageTestSuite) TestHomepage_ReadButtonsResolve() {
	resp := s.Client.GET("/")
	s.Equal(http.StatusOK, resp.StatusCode)

	matches := readLinkPattern.FindAllStringSubmatch(resp.String(), -1)
	s.NotEmpty(matches, "Homepage should have Read buttons")

	for _, m := range matches {
		target := s.Client.GET(m[1])
		s.Equalf(http.StatusOK, target.StatusCode, "Read target %s should resolve", m[1])
	}
}

func (s *HomepageTestSuite) TestHomepage_StaticAssets() {
	resp := s.Client.GET("/static/css/custom.css")

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.String(), ".features")
}
