package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/utils"
	"github.com/restaurant-discovery/internal/usecase"
	"github.com/restaurant-discovery/internal/usecase/dto"
)

// SearchHandler - обработчик поиска ресторанов
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Search restaurants near a location
// @Description Runs a nearby search against the places provider and annotates every result with current weather
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search filters; location.lat and location.lng are required"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, h.logger, "search",
			apperrors.ErrValidation.WithMessage("Invalid request body"))
	}

	result, err := h.searchUC.ExecuteSearch(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, h.logger, "search", err)
	}

	return utils.SendSuccess(c, result.Places, &utils.Meta{
		Count:    result.Count,
		Radius:   result.Radius,
		Location: result.Location,
	})
}

// GetRestaurant godoc
// @Summary Get one restaurant by provider id
// @Tags Search
// @Produce json
// @Param id path string true "Provider place id"
// @Success 200 {object} utils.SuccessResponse{data=domain.Place}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/restaurants/{id} [get]
func (h *SearchHandler) GetRestaurant(c *fiber.Ctx) error {
	place, err := h.searchUC.GetPlaceDetails(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, h.logger, "restaurants/:id", err)
	}

	return utils.SendSuccess(c, place, nil)
}
