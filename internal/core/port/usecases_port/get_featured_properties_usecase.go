package usecases_port

import (
	"context"
	"property-service/internal/core/domain"
)

type GetFeaturedPropertiesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.PropertyView, error)
}
