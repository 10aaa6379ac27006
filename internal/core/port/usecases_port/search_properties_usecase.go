package usecases_port

import (
	"context"
	"property-service/internal/core/domain"
)

type SearchPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.SearchFilters) ([]domain.PropertyView, error)
}
