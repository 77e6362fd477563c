package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/usecase"
)

// MockFavoriteRepository - мок репозитория избранного
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID string, place domain.Place) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, place)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, placeID string) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Toggle(ctx context.Context, userID string, place domain.Place) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, place)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func TestFavoriteUseCase_List(t *testing.T) {
	t.Run("returns user favorites", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		repo.On("List", mock.Anything, "user-1").Return([]domain.Favorite{
			{ID: "f1", UserID: "user-1", PlaceID: "p1"},
		}, nil)

		favorites, err := uc.List(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Len(t, favorites, 1)
	})

	t.Run("empty user id fails", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		_, err := uc.List(context.Background(), "")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestFavoriteUseCase_Add(t *testing.T) {
	place := domain.Place{ID: "p1", Name: "Trattoria"}

	t.Run("adds a place", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		repo.On("Add", mock.Anything, "user-1", place).Return(&domain.Favorite{
			ID: "f1", UserID: "user-1", PlaceID: "p1", PlaceData: place,
		}, nil)

		favorite, err := uc.Add(context.Background(), "user-1", place)
		require.NoError(t, err)
		assert.Equal(t, "p1", favorite.PlaceID)
	})

	t.Run("place without id fails", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		_, err := uc.Add(context.Background(), "user-1", domain.Place{Name: "no id"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFavoriteUseCase_Remove(t *testing.T) {
	t.Run("removes a place", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		repo.On("Remove", mock.Anything, "user-1", "p1").Return(nil)

		require.NoError(t, uc.Remove(context.Background(), "user-1", "p1"))
		repo.AssertExpectations(t)
	})

	t.Run("empty place id fails", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		assert.Error(t, uc.Remove(context.Background(), "user-1", ""))
	})
}

func TestFavoriteUseCase_Toggle(t *testing.T) {
	place := domain.Place{ID: "p1", Name: "Trattoria"}

	t.Run("reports favorited when repository inserts", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		repo.On("Toggle", mock.Anything, "user-1", place).Return(&domain.Favorite{
			ID: "f1", UserID: "user-1", PlaceID: "p1", PlaceData: place,
		}, nil)

		result, err := uc.Toggle(context.Background(), "user-1", place)
		require.NoError(t, err)
		assert.True(t, result.Favorited)
		require.NotNil(t, result.Favorite)
		assert.Equal(t, "p1", result.Favorite.PlaceID)
	})

	t.Run("reports unfavorited when repository deletes", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		repo.On("Toggle", mock.Anything, "user-1", place).Return(nil, nil)

		result, err := uc.Toggle(context.Background(), "user-1", place)
		require.NoError(t, err)
		assert.False(t, result.Favorited)
		assert.Nil(t, result.Favorite)
	})

	t.Run("missing user id fails", func(t *testing.T) {
		repo := new(MockFavoriteRepository)
		uc := usecase.NewFavoriteUseCase(repo, zap.NewNop())

		_, err := uc.Toggle(context.Background(), "", place)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
	})
}
