package components

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/aks-labs/website/domain/features"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestHomepageFeaturesRendersAllCardsInOrder(t *testing.T) {
	items := features.Items()
	html := render(t, HomepageFeatures(items))

	if got := strings.Count(html, `col col--4 text--center`); got != len(items) {
		t.Errorf("rendered %d cards, want %d", got, len(items))
	}

	first := strings.Index(html, "Workload Identities in AKS")
	second := strings.Index(html, "Scaling in AKS")
	if first == -1 || second == -1 {
		t.Fatalf("missing card titles in output:\n%s", html)
	}
	if first > second {
		t.Error("cards rendered out of registry order")
	}
}

func TestFeatureCardStructure(t *testing.T) {
	items := features.Items()
	html := render(t, FeatureCard(items[0]))

	if !strings.Contains(html, "<h3>Workload Identities in AKS</h3>") {
		t.Errorf("missing title heading:\n%s", html)
	}
	if !strings.Contains(html, `<div class="featureSvg"><svg`) {
		t.Errorf("missing inline icon:\n%s", html)
	}
	if !strings.Contains(html, `href="/docs/aks/aks-workload-identities"`) {
		t.Errorf("missing read link target:\n%s", html)
	}
	if !strings.Contains(html, ">Read</a>") {
		t.Errorf("read link label changed:\n%s", html)
	}
}

func TestFeatureCardScalingLink(t *testing.T) {
	items := features.Items()
	html := render(t, FeatureCard(items[1]))

	if !strings.Contains(html, `<a class="button button--secondary" href="/docs/aks/aks-scaling">Read</a>`) {
		t.Errorf("scaling card link is wrong:\n%s", html)
	}
}

func TestFeatureCardDescriptionIsNotEscaped(t *testing.T) {
	item := features.FeatureItem{
		Title:       "Plain Title",
		Icon:        "aks",
		Description: "Scale with <code>KEDA</code> and <em>zero</em> secrets.",
		LinkTo:      "/docs/aks/aks-scaling",
	}
	html := render(t, FeatureCard(item))

	if !strings.Contains(html, "<code>KEDA</code>") || !strings.Contains(html, "<em>zero</em>") {
		t.Errorf("description markup was escaped:\n%s", html)
	}
}

func TestFeatureCardTitleIsEscaped(t *testing.T) {
	item := features.FeatureItem{
		Title:       "Alerts <script>",
		Icon:        "aks",
		Description: "x",
		LinkTo:      "/docs/aks/aks-scaling",
	}
	html := render(t, FeatureCard(item))

	if strings.Contains(html, "<script>") {
		t.Errorf("title markup was not escaped:\n%s", html)
	}
	if !strings.Contains(html, "Alerts &lt;script&gt;") {
		t.Errorf("escaped title missing:\n%s", html)
	}
}

func TestHomepageFeaturesEmptyList(t *testing.T) {
	html := render(t, HomepageFeatures(nil))

	want := `<section class="features"><div class="container"><div class="row"></div></div></section>`
	if html != want {
		t.Errorf("empty feature row = %q, want %q", html, want)
	}
}

func TestHomepageFeaturesIsDeterministic(t *testing.T) {
	items := features.Items()
	first := render(t, HomepageFeatures(items))
	second := render(t, HomepageFeatures(items))

	if first != second {
		t.Error("same input rendered differently on a second pass")
	}
}
