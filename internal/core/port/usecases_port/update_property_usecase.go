package usecases_port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID, input domain.PropertyUpdateInput) (*domain.PropertyView, error)
}
