package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertiesByAgentUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertiesByAgentUseCase(repo port.PropertyRepositoryPort) *GetPropertiesByAgentUseCase {
	return &GetPropertiesByAgentUseCase{repo: repo}
}

func (uc *GetPropertiesByAgentUseCase) Execute(ctx context.Context, agentID uuid.UUID) ([]domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertiesByAgent", "agent_id": agentID})

	ucLogger.Debug("Fetching properties by agent", nil)
	properties, err := uc.repo.FindByAgentID(ctx, agentID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	return toViewList(properties), nil
}
