package ports

import (
	"context"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

// HotelRepository defines persistence for the hotel catalog.
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	// FindAll returns every hotel in source order. Filtering happens in the
	// service layer; the collection is small enough to fetch whole.
	FindAll(ctx context.Context) ([]domain.Hotel, error)
}
