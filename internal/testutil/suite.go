package testutil

import (
	"os"

	"github.com/stretchr/testify/suite"
)

// BaseSuite provides common test infrastructure with a seeded content tree.
// Embed this in your test suite to get:
//   - A temporary content directory seeded by SeedContent
//   - An in-process server running the full middleware stack
//   - An HTTP client that can also target a running server
//
// Environment variables:
//   - TEST_SERVER_URL: External server URL (e.g., "http://localhost:3000")
//   - If not set, uses the in-process test server
//
// Usage:
//
//	type MySuite struct {
//	    testutil.BaseSuite
//	}
//
//	func (s *MySuite) TestSomething() {
//	    resp := s.Client.GET("/docs")
//	    s.Equal(http.StatusOK, resp.StatusCode)
//	}
type BaseSuite struct {
	suite.Suite
	Server     *TestServer
	Client     *HTTPClient
	ContentDir string

	// externalServer indicates if we're using an external server
	externalServer bool
}

// SetupSuite seeds the content tree and builds the server.
// If you override this, call s.BaseSuite.SetupSuite() first.
func (s *BaseSuite) SetupSuite() {
	if serverURL := os.Getenv("TEST_SERVER_URL"); serverURL != "" {
		s.T().Logf("Using external server: %s", serverURL)
		s.externalServer = true
		s.Client = NewExternalHTTPClient(serverURL)
		return
	}

	s.T().Log("Using in-process test server")

	s.ContentDir = s.T().TempDir()
	s.Require().NoError(SeedContent(s.ContentDir), "Failed to seed content")

	srv, err := NewTestServer(s.ContentDir)
	s.Require().NoError(err, "Failed to build test server")
	s.Server = srv
	s.Client = NewHTTPClient(srv.Echo)
}

// IsExternal returns true if using an external server
func (s *BaseSuite) IsExternal() bool {
	return s.externalServer
}

// SkipIfExternalServer skips the test if running against an external server.
// Use this for tests that rewrite the content tree or read server internals.
func (s *BaseSuite) SkipIfExternalServer(reason string) {
	if s.externalServer {
		s.T().Skipf("Skipping in external server mode: %s", reason)
	}
}
