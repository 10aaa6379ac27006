package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type SearchPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewSearchPropertiesUseCase(repo port.PropertyRepositoryPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{repo: repo}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters) ([]domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SearchProperties"})

	ucLogger.Debug("Searching properties", port.Fields{"has_text": filters.Text != ""})
	properties, err := uc.repo.Search(ctx, filters)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Search finished", port.Fields{"count": len(properties)})
	return toViewList(properties), nil
}
