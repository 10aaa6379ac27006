package usecases_port

import (
	"context"
	"property-service/internal/core/domain"
)

type GetAllPropertiesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.PropertyView, error)
}
