package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type GetAllPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetAllPropertiesUseCase(repo port.PropertyRepositoryPort) *GetAllPropertiesUseCase {
	return &GetAllPropertiesUseCase{repo: repo}
}

func (uc *GetAllPropertiesUseCase) Execute(ctx context.Context) ([]domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetAllProperties"})

	ucLogger.Debug("Fetching all properties", nil)
	properties, err := uc.repo.FindAll(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Fetched all properties", port.Fields{"count": len(properties)})
	return toViewList(properties), nil
}
