package usecases_port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertiesByCityUseCasePort interface {
	Execute(ctx context.Context, cityID uuid.UUID) ([]domain.PropertyView, error)
}
