package e2e

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aks-labs/website/internal/testutil"
)

// APITestSuite tests the JSON documentation API
type APITestSuite struct {
	testutil.BaseSuite
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

// =============================================================================
// Test: List Documents
// =============================================================================

func (s *APITestSuite) TestListDocuments_SidebarOrder() {
	list, err := s.Client.ListDocuments()
	s.Require().NoError(err)

	s.Equal(3, list.Total)
	s.Require().Len(list.Documents, 3)

	// getting-started sorts before aks, positions order within a category
	s.Equal("intro", list.Documents[0].Slug)
	s.Equal("aks-workload-identities", list.Documents[1].Slug)
	s.Equal("aks-scaling", list.Documents[2].Slug)
}

func (s *APITestSuite) TestListDocuments_MetaOnly() {
	resp := s.Client.GET("/api/docs")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(resp.Body, &body))

	docs, ok := body["documents"].([]any)
	s.Require().True(ok)
	first, ok := docs[0].(map[string]any)
	s.Require().True(ok)

	_, hasContent := first["content"]
	s.False(hasContent, "List responses should not carry rendered bodies")
}

// =============================================================================
// Test: Get Document
// =============================================================================

func (s *APITestSuite) TestGetDocument_Success() {
	resp, err := s.Client.GetDocument("aks-scaling")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	var doc map[string]any
	s.Require().NoError(resp.JSON(&doc))

	s.Equal("aks-scaling", doc["slug"])
	s.Equal("aks", doc["category"])

	content, ok := doc["content"].(string)
	s.Require().True(ok)
	s.True(strings.Contains(content, `<h2 id="keda">`), "Content should be rendered HTML")
}

func (s *APITestSuite) TestGetDocument_NotFound() {
	resp, err := s.Client.GetDocument("does-not-exist")
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(resp.JSON(&body))

	errObj, ok := body["error"].(map[string]any)
	s.True(ok)
	s.Equal("not_found", errObj["code"])
}

// =============================================================================
// Test: Categories
// =============================================================================

func (s *APITestSuite) TestGetCategories_ManifestOrder() {
	cats, err := s.Client.GetCategories()
	s.Require().NoError(err)

	s.Equal(2, cats.Total)
	s.Require().Len(cats.Categories, 2)
	s.Equal("getting-started", cats.Categories[0].ID)
	s.Equal("aks", cats.Categories[1].ID)
	s.Equal("AKS Tutorials", cats.Categories[1].Name)
}
