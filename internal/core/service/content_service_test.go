package service

import (
	"testing"

	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

func TestContentService_Destinations_All(t *testing.T) {
	svc := NewContentService()

	all := svc.Destinations(ports.CatalogFilter{})
	if len(all) == 0 {
		t.Fatalf("expected a non-empty destination catalog")
	}
	for _, d := range all {
		if d.Lat == 0 || d.Lng == 0 {
			t.Fatalf("destination %q is missing coordinates", d.Name)
		}
	}
}

func TestContentService_Destinations_Filtered(t *testing.T) {
	svc := NewContentService()

	byLocation := svc.Destinations(ports.CatalogFilter{Location: "galle"})
	if len(byLocation) == 0 {
		t.Fatalf("expected destinations in Galle")
	}
	for _, d := range byLocation {
		if d.Location != "Galle" {
			t.Fatalf("location filter leaked %q", d.Location)
		}
	}

	bySearch := svc.Destinations(ports.CatalogFilter{Search: "rock fortress"})
	if len(bySearch) != 1 || bySearch[0].Name != "Sigiriya" {
		t.Fatalf("search filter mismatch: %+v", bySearch)
	}
}

func TestContentService_BlogPosts(t *testing.T) {
	svc := NewContentService()

	all := svc.BlogPosts("")
	if len(all) == 0 {
		t.Fatalf("expected a non-empty blog catalog")
	}

	none := svc.BlogPosts("zzz-no-such-topic")
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}
