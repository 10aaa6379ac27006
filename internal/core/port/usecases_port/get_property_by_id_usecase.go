package usecases_port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertyByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyView, error)
}
