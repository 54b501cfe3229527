package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/soulofsrilanka/travel-api/internal/api/metrics"
	"github.com/soulofsrilanka/travel-api/internal/core/domain"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

// ListingCache abstracts the shared cache in front of the hotel catalog
// (Redis). A miss or a cache failure always falls through to the repository.
type ListingCache interface {
	GetHotels(ctx context.Context) ([]domain.Hotel, bool, error)
	SetHotels(ctx context.Context, hotels []domain.Hotel) error
	Invalidate(ctx context.Context) error
}

type HotelService struct {
	repo  ports.HotelRepository
	cache ListingCache
	log   zerolog.Logger
}

func NewHotelService(repo ports.HotelRepository, cache ListingCache, log zerolog.Logger) *HotelService {
	return &HotelService{repo: repo, cache: cache, log: log}
}

// Create stores a new catalog entry and drops the cached listing.
func (s *HotelService) Create(ctx context.Context, in ports.CreateHotelInput) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, hotel)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create hotel")
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate hotel listing cache")
	}

	metrics.HotelsCreatedTotal.Inc()
	s.log.Info().Str("hotel_id", created.ID).Str("name", created.Name).Msg("hotel created")
	return created, nil
}

// List fetches the whole catalog (cache first, then repository) and filters
// it in memory. An empty result is a valid listing, not an error.
func (s *HotelService) List(ctx context.Context, filter ports.CatalogFilter) ([]domain.Hotel, error) {
	hotels, hit, err := s.cache.GetHotels(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("hotel listing cache read failed")
		hit = false
	}

	if !hit {
		hotels, err = s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetHotels(ctx, hotels); err != nil {
			s.log.Warn().Err(err).Msg("hotel listing cache write failed")
		}
	}

	filtered := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if matchesCatalogFilter(h.Name, h.Description, h.Location, filter) {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

// matchesCatalogFilter applies the shared listing predicate: case-insensitive
// substring search on name and description, plus an optional case-insensitive
// exact match on location.
func matchesCatalogFilter(name, description, location string, filter ports.CatalogFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(name), needle) &&
			!strings.Contains(strings.ToLower(description), needle) {
			return false
		}
	}
	if filter.Location != "" && !strings.EqualFold(location, filter.Location) {
		return false
	}
	return true
}
