package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type GetFeaturedPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetFeaturedPropertiesUseCase(repo port.PropertyRepositoryPort) *GetFeaturedPropertiesUseCase {
	return &GetFeaturedPropertiesUseCase{repo: repo}
}

func (uc *GetFeaturedPropertiesUseCase) Execute(ctx context.Context) ([]domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFeaturedProperties"})

	ucLogger.Debug("Fetching featured properties", nil)
	properties, err := uc.repo.FindFeatured(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	return toViewList(properties), nil
}
