package service

import (
	"strings"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

// ContentService serves the compiled-in destination and blog catalogs with
// the same filter semantics as the hotel listing.
type ContentService struct {
	destinations []domain.Destination
	posts        []domain.BlogPost
}

func NewContentService() *ContentService {
	return &ContentService{destinations: destinations, posts: blogPosts}
}

func (s *ContentService) Destinations(filter ports.CatalogFilter) []domain.Destination {
	out := make([]domain.Destination, 0, len(s.destinations))
	for _, d := range s.destinations {
		if matchesCatalogFilter(d.Name, d.Description, d.Location, filter) {
			out = append(out, d)
		}
	}
	return out
}

func (s *ContentService) BlogPosts(search string) []domain.BlogPost {
	if search == "" {
		out := make([]domain.BlogPost, len(s.posts))
		copy(out, s.posts)
		return out
	}

	needle := strings.ToLower(search)
	out := make([]domain.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) {
			out = append(out, p)
		}
	}
	return out
}

var destinations = []domain.Destination{
	{ID: 1, Name: "Sigiriya", Location: "Matale District", Description: "Ancient rock fortress", Lat: 7.957, Lng: 80.760, Image: "/assets/sigiriya.jpg"},
	{ID: 2, Name: "Kandy", Location: "Kandy", Description: "Temple of the Tooth", Lat: 7.2906, Lng: 80.6337, Image: "/assets/kandy.jpg"},
	{ID: 3, Name: "Galle", Location: "Galle", Description: "Historic fort", Lat: 6.0535, Lng: 80.221, Image: "/assets/galle-fort.jpg"},
	{ID: 4, Name: "Ella", Location: "Ella", Description: "Scenic hill country", Lat: 6.8667, Lng: 81.0466, Image: "/assets/ella-rock.jpg"},
	{ID: 5, Name: "Yala National Park", Location: "Southeast Sri Lanka", Description: "Wildlife safari", Lat: 6.3754, Lng: 81.5105, Image: "/assets/yala-national-park.jpg"},
	{ID: 6, Name: "Mirissa", Location: "Matara District", Description: "Whale watching beach", Lat: 5.9485, Lng: 80.4718, Image: "/assets/mirissa.jpg"},
	{ID: 7, Name: "Anuradhapura", Location: "Anuradhapura District", Description: "Ancient city", Lat: 8.3114, Lng: 80.4037, Image: "/assets/anuradhapura.jpg"},
	{ID: 8, Name: "Polonnaruwa", Location: "Polonnaruwa District", Description: "Medieval ruins", Lat: 7.9403, Lng: 81.0188, Image: "/assets/polonnaruwa.jpg"},
	{ID: 9, Name: "Nuwara Eliya", Location: "Nuwara Eliya District", Description: "Tea plantations", Lat: 6.9497, Lng: 80.7891, Image: "/assets/nuwara-eliya.jpg"},
	{ID: 10, Name: "Unawatuna", Location: "Galle", Description: "Tropical beach", Lat: 6.0097, Lng: 80.2484, Image: "/assets/unawatuna.jpg"},
	{ID: 11, Name: "Dambulla", Location: "Matale District", Description: "Golden Temple caves", Lat: 7.8742, Lng: 80.6511, Image: "/assets/dambulla.jpg"},
	{ID: 12, Name: "Arugam Bay", Location: "Ampara District", Description: "Surfing hotspot", Lat: 6.8404, Lng: 81.836, Image: "/assets/arugam-bay.jpg"},
	{ID: 13, Name: "Trincomalee", Location: "Trincomalee District", Description: "Pristine beaches", Lat: 8.5874, Lng: 81.2152, Image: "/assets/trincomalee.jpg"},
	{ID: 14, Name: "Horton Plains", Location: "Nuwara Eliya District", Description: "World’s End viewpoint", Lat: 6.8021, Lng: 80.8072, Image: "/assets/horton-plains.jpg"},
	{ID: 15, Name: "Adam’s Peak", Location: "Central Sri Lanka", Description: "Sacred pilgrimage site", Lat: 6.8096, Lng: 80.4994, Image: "/assets/adams-peak.jpg"},
	{ID: 16, Name: "Hikkaduwa", Location: "Galle", Description: "Coral reefs and nightlife", Lat: 6.1407, Lng: 80.0992, Image: "/assets/hikkaduwa.jpg"},
}

var blogPosts = []domain.BlogPost{
	{ID: 1, Title: "Exploring Sigiriya: The Lion Rock Fortress", Content: "Discover the ancient rock fortress of Sigiriya, a UNESCO World Heritage Site with stunning frescoes and panoramic views.", Date: "2025-06-01"},
	{ID: 2, Title: "Kandy’s Cultural Charm: Temple of the Tooth", Content: "Immerse yourself in Kandy’s spiritual heart, home to the sacred Temple of the Tooth and vibrant cultural festivals.", Date: "2025-06-02"},
	{ID: 3, Title: "Galle Fort: A Journey Through History", Content: "Explore the colonial charm of Galle Fort, with its cobblestone streets and historic architecture.", Date: "2025-06-03"},
	{ID: 4, Title: "Ella: Scenic Beauty in the Hill Country", Content: "Hike through Ella’s lush tea plantations and enjoy breathtaking views at Little Adam’s Peak.", Date: "2025-06-04"},
	{ID: 5, Title: "Yala National Park: Wildlife Adventures", Content: "Embark on a safari in Yala to spot leopards, elephants, and exotic birds in their natural habitat.", Date: "2025-06-05"},
	{ID: 6, Title: "Mirissa: Whale Watching Paradise", Content: "Experience world-class whale watching and relax on the pristine beaches of Mirissa.", Date: "2025-06-06"},
	{ID: 7, Title: "Anuradhapura: Ancient City Wonders", Content: "Step back in time in Anuradhapura, exploring ancient stupas and sacred sites.", Date: "2025-06-07"},
	{ID: 8, Title: "Polonnaruwa: Ruins of a Medieval Kingdom", Content: "Discover the well-preserved ruins of Polonnaruwa, a testament to Sri Lanka’s rich history.", Date: "2025-06-08"},
	{ID: 9, Title: "Nuwara Eliya: Tea Country Retreat", Content: "Visit Nuwara Eliya for its cool climate, colonial charm, and sprawling tea estates.", Date: "2025-06-09"},
	{ID: 10, Title: "Unawatuna: Tropical Beach Bliss", Content: "Relax on Unawatuna’s golden sands and explore vibrant coral reefs.", Date: "2025-06-10"},
}
