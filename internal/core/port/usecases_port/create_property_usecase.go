package usecases_port

import (
	"context"
	"property-service/internal/core/domain"
)

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, input domain.PropertyCreateInput) (*domain.PropertyView, error)
}
