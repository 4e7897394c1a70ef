package features

import (
	"strings"
	"testing"
)

func TestItems_Order(t *testing.T) {
	items := Items()
	if len(items) != 2 {
		t.Fatalf("Items() returned %d cards, want 2", len(items))
	}

	if items[0].Title != "Workload Identities in AKS" {
		t.Errorf("first card title = %q", items[0].Title)
	}
	if items[1].Title != "Scaling in AKS" {
		t.Errorf("second card title = %q", items[1].Title)
	}
}

func TestItems_Links(t *testing.T) {
	for _, item := range Items() {
		if !strings.HasPrefix(item.LinkTo, "/docs/") {
			t.Errorf("card %q links outside /docs/: %q", item.Title, item.LinkTo)
		}
	}

	items := Items()
	if items[0].LinkTo != "/docs/aks/aks-workload-identities" {
		t.Errorf("workload identity card LinkTo = %q", items[0].LinkTo)
	}
	if items[1].LinkTo != "/docs/aks/aks-scaling" {
		t.Errorf("scaling card LinkTo = %q", items[1].LinkTo)
	}
}

func TestItems_IconsAndDescriptions(t *testing.T) {
	for _, item := range Items() {
		if item.Icon == "" {
			t.Errorf("card %q has no icon", item.Title)
		}
		if item.Description == "" {
			t.Errorf("card %q has no description", item.Title)
		}
	}

	// Descriptions are HTML fragments; the scaling card carries inline code.
	if !strings.Contains(Items()[1].Description, "<code>KEDA</code>") {
		t.Errorf("scaling description lost its markup: %q", Items()[1].Description)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	first := Items()
	first[0].Title = "mutated"
	first[1] = FeatureItem{}

	second := Items()
	if second[0].Title != "Workload Identities in AKS" {
		t.Error("mutating the returned slice must not affect the registry")
	}
	if second[1].Title != "Scaling in AKS" {
		t.Error("registry contents changed between calls")
	}
}
