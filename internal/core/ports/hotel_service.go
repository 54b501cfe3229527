package ports

import (
	"context"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

// CatalogFilter narrows a listing. Search is a case-insensitive substring
// match on name and description; Location, when non-empty, must match the
// record's location exactly (case-insensitively). No pagination, no ranking:
// results keep the source collection's order.
type CatalogFilter struct {
	Search   string
	Location string
}

// CreateHotelInput carries the fields of a new catalog entry.
type CreateHotelInput struct {
	Name        string
	Location    string
	Description string
	Price       float64
	Image       string
}

// HotelService defines use-case operations for the hotel catalog.
type HotelService interface {
	Create(ctx context.Context, input CreateHotelInput) (*domain.Hotel, error)
	List(ctx context.Context, filter CatalogFilter) ([]domain.Hotel, error)
}
