package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/domain/repository"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
)

type favoriteRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewFavoriteRepository - репозиторий избранных мест поверх PostgreSQL
func NewFavoriteRepository(db *DB, logger *zap.Logger) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// favoriteRow - строка таблицы favorites; place_data хранится как JSONB
type favoriteRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	PlaceID   string    `db:"place_id"`
	PlaceData []byte    `db:"place_data"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *favoriteRow) toDomain() (*domain.Favorite, error) {
	var place domain.Place
	if err := json.Unmarshal(r.PlaceData, &place); err != nil {
		return nil, fmt.Errorf("failed to decode place snapshot: %w", err)
	}
	return &domain.Favorite{
		ID:        r.ID,
		UserID:    r.UserID,
		PlaceID:   r.PlaceID,
		PlaceData: place,
		CreatedAt: r.CreatedAt,
	}, nil
}

func (r *favoriteRepository) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	const query = `
		SELECT id, user_id, place_id, place_data, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var rows []favoriteRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		r.logger.Error("Failed to list favorites",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, apperrors.ErrDatabase.WithDetails(err.Error())
	}

	favorites := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		fav, err := row.toDomain()
		if err != nil {
			// A corrupt snapshot should not hide the rest of the list.
			r.logger.Warn("Skipping favorite with unreadable snapshot",
				zap.String("favorite_id", row.ID),
				zap.Error(err))
			continue
		}
		favorites = append(favorites, *fav)
	}

	return favorites, nil
}

func (r *favoriteRepository) Add(ctx context.Context, userID string, place domain.Place) (*domain.Favorite, error) {
	snapshot, err := json.Marshal(place)
	if err != nil {
		return nil, apperrors.ErrInternalServer.WithDetails(err.Error())
	}

	const query = `
		INSERT INTO favorites (id, user_id, place_id, place_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, place_id) DO NOTHING
		RETURNING id, user_id, place_id, place_data, created_at`

	var row favoriteRow
	err = r.db.GetContext(ctx, &row, query, uuid.NewString(), userID, place.ID, snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		// Already present; uniqueness on (user_id, place_id) holds.
		return r.getByPlaceID(ctx, userID, place.ID)
	}
	if err != nil {
		r.logger.Error("Failed to add favorite",
			zap.String("user_id", userID),
			zap.String("place_id", place.ID),
			zap.Error(err))
		return nil, apperrors.ErrDatabase.WithDetails(err.Error())
	}

	return row.toDomain()
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, placeID string) error {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND place_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, placeID); err != nil {
		r.logger.Error("Failed to remove favorite",
			zap.String("user_id", userID),
			zap.String("place_id", placeID),
			zap.Error(err))
		return apperrors.ErrDatabase.WithDetails(err.Error())
	}

	return nil
}

// Toggle flips membership in a single transaction. The insert relies on the
// (user_id, place_id) unique constraint, so two concurrent toggles cannot
// both insert; the loser of the conflict falls through to the delete branch.
func (r *favoriteRepository) Toggle(ctx context.Context, userID string, place domain.Place) (*domain.Favorite, error) {
	snapshot, err := json.Marshal(place)
	if err != nil {
		return nil, apperrors.ErrInternalServer.WithDetails(err.Error())
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.ErrDatabase.WithDetails(err.Error())
	}
	defer tx.Rollback()

	const insertQuery = `
		INSERT INTO favorites (id, user_id, place_id, place_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, place_id) DO NOTHING
		RETURNING id, user_id, place_id, place_data, created_at`

	var row favoriteRow
	err = tx.GetContext(ctx, &row, insertQuery, uuid.NewString(), userID, place.ID, snapshot)
	if err == nil {
		if err := tx.Commit(); err != nil {
			return nil, apperrors.ErrDatabase.WithDetails(err.Error())
		}
		r.logger.Debug("Favorite added via toggle",
			zap.String("user_id", userID),
			zap.String("place_id", place.ID))
		return row.toDomain()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		r.logger.Error("Failed to toggle favorite",
			zap.String("user_id", userID),
			zap.String("place_id", place.ID),
			zap.Error(err))
		return nil, apperrors.ErrDatabase.WithDetails(err.Error())
	}

	// Row already existed: toggle means remove.
	const deleteQuery = `DELETE FROM favorites WHERE user_id = $1 AND place_id = $2`
	if _, err := tx.ExecContext(ctx, deleteQuery, userID, place.ID); err != nil {
		return nil, apperrors.ErrDatabase.WithDetails(err.Error())
	}
	if err := tx.Commit(); err != nil {
		return nil, apperrors.ErrDatabase.WithDetails(err.Error())
	}

	r.logger.Debug("Favorite removed via toggle",
		zap.String("user_id", userID),
		zap.String("place_id", place.ID))
	return nil, nil
}

func (r *favoriteRepository) getByPlaceID(ctx context.Context, userID, placeID string) (*domain.Favorite, error) {
	const query = `
		SELECT id, user_id, place_id, place_data, created_at
		FROM favorites
		WHERE user_id = $1 AND place_id = $2`

	var row favoriteRow
	if err := r.db.GetContext(ctx, &row, query, userID, placeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound.WithMessage("Favorite not found")
		}
		return nil, apperrors.ErrDatabase.WithDetails(err.Error())
	}

	return row.toDomain()
}
