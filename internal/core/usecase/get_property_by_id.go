package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertyByIDUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertyByIDUseCase(repo port.PropertyRepositoryPort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{repo: repo}
}

func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyByID", "property_id": id})

	ucLogger.Debug("Fetching property", nil)
	property, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	return toView(property), nil
}
