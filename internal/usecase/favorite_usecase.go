package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/domain/repository"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/usecase/dto"
)

// FavoriteUseCase - избранные места пользователя
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	logger       *zap.Logger
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, logger *zap.Logger) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if userID == "" {
		return nil, apperrors.ErrValidation.WithMessage("User id is required")
	}
	return uc.favoriteRepo.List(ctx, userID)
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID string, place domain.Place) (*domain.Favorite, error) {
	if userID == "" {
		return nil, apperrors.ErrValidation.WithMessage("User id is required")
	}
	if place.ID == "" {
		return nil, apperrors.ErrValidation.WithMessage("Place id is required")
	}
	return uc.favoriteRepo.Add(ctx, userID, place)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, placeID string) error {
	if userID == "" {
		return apperrors.ErrValidation.WithMessage("User id is required")
	}
	if placeID == "" {
		return apperrors.ErrValidation.WithMessage("Place id is required")
	}
	return uc.favoriteRepo.Remove(ctx, userID, placeID)
}

// Toggle делегирует переключение атомарной операции репозитория.
// Applying it twice always returns the favorite set to its prior state.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, userID string, place domain.Place) (*dto.ToggleResult, error) {
	if userID == "" {
		return nil, apperrors.ErrValidation.WithMessage("User id is required")
	}
	if place.ID == "" {
		return nil, apperrors.ErrValidation.WithMessage("Place id is required")
	}

	favorite, err := uc.favoriteRepo.Toggle(ctx, userID, place)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Favorite toggled",
		zap.String("user_id", userID),
		zap.String("place_id", place.ID),
		zap.Bool("favorited", favorite != nil))

	return &dto.ToggleResult{
		Favorited: favorite != nil,
		Favorite:  favorite,
	}, nil
}
