package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/utils"
	"github.com/restaurant-discovery/internal/usecase"
	"github.com/restaurant-discovery/internal/usecase/dto"
)

const userIDHeader = "X-User-ID"

// FavoriteHandler - обработчик избранных мест.
// User identity arrives in the X-User-ID header; authentication itself is
// handled upstream of this service.
type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUseCase
	logger     *zap.Logger
}

func NewFavoriteHandler(favoriteUC *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List the user's favorites
// @Tags Favorites
// @Produce json
// @Param X-User-ID header string true "User id"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Favorite}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	favorites, err := h.favoriteUC.List(c.Context(), c.Get(userIDHeader))
	if err != nil {
		return utils.SendError(c, h.logger, "favorites", err)
	}

	return utils.SendSuccess(c, favorites, &utils.Meta{Count: len(favorites)})
}

// Add godoc
// @Summary Add a place to favorites
// @Description Stores a full snapshot of the place; it is never re-fetched later
// @Tags Favorites
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body dto.FavoriteRequest true "Place to favorite"
// @Success 200 {object} utils.SuccessResponse{data=domain.Favorite}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/favorites [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, h.logger, "favorites",
			apperrors.ErrValidation.WithMessage("Invalid request body"))
	}

	favorite, err := h.favoriteUC.Add(c.Context(), c.Get(userIDHeader), req.Place)
	if err != nil {
		return utils.SendError(c, h.logger, "favorites", err)
	}

	return utils.SendSuccess(c, favorite, nil)
}

// Remove godoc
// @Summary Remove a place from favorites
// @Tags Favorites
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param placeId path string true "Provider place id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/favorites/{placeId} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	err := h.favoriteUC.Remove(c.Context(), c.Get(userIDHeader), c.Params("placeId"))
	if err != nil {
		return utils.SendError(c, h.logger, "favorites/:placeId", err)
	}

	return utils.SendSuccess(c, nil, nil)
}

// Toggle godoc
// @Summary Toggle favorite membership for a place
// @Description Atomic insert-if-absent-else-delete keyed on (user, place)
// @Tags Favorites
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body dto.FavoriteRequest true "Place to toggle"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/favorites/toggle [post]
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, h.logger, "favorites/toggle",
			apperrors.ErrValidation.WithMessage("Invalid request body"))
	}

	result, err := h.favoriteUC.Toggle(c.Context(), c.Get(userIDHeader), req.Place)
	if err != nil {
		return utils.SendError(c, h.logger, "favorites/toggle", err)
	}

	return utils.SendSuccess(c, result, nil)
}
