package repository

import (
	"context"

	"github.com/restaurant-discovery/internal/domain"
)

// FavoriteRepository - хранилище избранных мест
type FavoriteRepository interface {
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	Add(ctx context.Context, userID string, place domain.Place) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, placeID string) error

	// Toggle flips membership for (userID, place.ID) in one transactional
	// statement pair keyed on the unique constraint: insert-if-absent,
	// otherwise delete. Returns the favorite when one was created, nil when
	// an existing one was removed.
	Toggle(ctx context.Context, userID string, place domain.Place) (*domain.Favorite, error)
}
