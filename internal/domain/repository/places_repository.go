package repository

import (
	"context"

	"github.com/restaurant-discovery/internal/domain"
)

// PlacesRepository - доступ к внешнему провайдеру мест
type PlacesRepository interface {
	// Search returns mapped places around (lat, lng) within radius meters,
	// optionally narrowed by a cuisine keyword. Result order follows the
	// provider. Individual detail failures are dropped, not raised.
	Search(ctx context.Context, lat, lng float64, radius int, keyword string) ([]domain.Place, error)

	// GetDetails returns one fully mapped place by provider id.
	GetDetails(ctx context.Context, placeID string) (*domain.Place, error)
}
