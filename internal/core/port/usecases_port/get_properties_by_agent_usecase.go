package usecases_port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertiesByAgentUseCasePort interface {
	Execute(ctx context.Context, agentID uuid.UUID) ([]domain.PropertyView, error)
}
