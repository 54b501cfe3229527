package ports

import "github.com/soulofsrilanka/travel-api/internal/core/domain"

// ContentService serves the static destination and blog catalogs. The data is
// compiled in, so no context or error is involved.
type ContentService interface {
	Destinations(filter CatalogFilter) []domain.Destination
	BlogPosts(search string) []domain.BlogPost
}
