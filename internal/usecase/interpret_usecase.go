package usecase

import (
	"strings"

	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/usecase/dto"
)

// cuisineKeywords is scanned in order; the first match wins.
var cuisineKeywords = []string{
	"italian", "chinese", "japanese", "indian", "mexican", "thai", "vietnamese",
}

// InterpretUseCase - разбор свободного текстового запроса в SearchFilters.
// Plain ordered substring rules; no model call behind it.
type InterpretUseCase struct {
	logger *zap.Logger
}

func NewInterpretUseCase(logger *zap.Logger) *InterpretUseCase {
	return &InterpretUseCase{logger: logger}
}

// Interpret применяет правила разбора к запросу
func (uc *InterpretUseCase) Interpret(req dto.InterpretRequest) (*dto.InterpretResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, apperrors.ErrValidation.WithMessage("Query is required")
	}

	filters := parseQuery(req.Query)

	uc.logger.Debug("Query interpreted",
		zap.String("query", req.Query),
		zap.String("cuisine", filters.Cuisine),
		zap.Int("radius", filters.Radius))

	return &dto.InterpretResponse{Filters: filters}, nil
}

func parseQuery(query string) domain.SearchFilters {
	lower := strings.ToLower(query)

	filters := domain.SearchFilters{
		Query:    query,
		Radius:   domain.DefaultRadius,
		Budget:   &domain.BudgetRange{Min: 0, Max: 4},
		Category: domain.DefaultCategory,
		Mood:     domain.DefaultMood,
	}

	// Budget
	if strings.Contains(lower, "cheap") || strings.Contains(lower, "budget") {
		filters.Budget = &domain.BudgetRange{Min: 0, Max: 2}
	} else if strings.Contains(lower, "expensive") || strings.Contains(lower, "luxury") {
		filters.Budget = &domain.BudgetRange{Min: 3, Max: 4}
	}

	// Cuisine: first keyword hit only
	for _, cuisine := range cuisineKeywords {
		if strings.Contains(lower, cuisine) {
			filters.Cuisine = cuisine
			break
		}
	}

	// Radius
	if strings.Contains(lower, "nearby") || strings.Contains(lower, "close") {
		filters.Radius = domain.NearbyRadius
	} else if strings.Contains(lower, "far") {
		filters.Radius = domain.FarRadius
	}

	return filters
}
