package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertiesByCityUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertiesByCityUseCase(repo port.PropertyRepositoryPort) *GetPropertiesByCityUseCase {
	return &GetPropertiesByCityUseCase{repo: repo}
}

func (uc *GetPropertiesByCityUseCase) Execute(ctx context.Context, cityID uuid.UUID) ([]domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertiesByCity", "city_id": cityID})

	ucLogger.Debug("Fetching properties by city", nil)
	properties, err := uc.repo.FindByCityID(ctx, cityID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	return toViewList(properties), nil
}
