package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры запроса; ошибки полей сворачиваются
// в один VALIDATION_ERROR с перечислением нарушений
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.ErrValidation.WithDetails(err.Error())
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, fe.Field()+" failed on '"+fe.Tag()+"'")
	}

	return apperrors.ErrValidation.WithDetails(strings.Join(violations, ", "))
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
