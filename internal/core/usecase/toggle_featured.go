package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type ToggleFeaturedUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewToggleFeaturedUseCase(repo port.PropertyRepositoryPort) *ToggleFeaturedUseCase {
	return &ToggleFeaturedUseCase{repo: repo}
}

// Execute переключает флаг is_featured. Два вызова подряд возвращают
// флаг в исходное состояние.
func (uc *ToggleFeaturedUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ToggleFeatured", "property_id": id})

	ucLogger.Info("Use case started", nil)

	property, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return err
	}

	property.IsFeatured = !property.IsFeatured

	if err := uc.repo.Save(ctx, property); err != nil {
		ucLogger.Error("Failed to save property", err, nil)
		return err
	}

	ucLogger.Info("Featured flag updated", port.Fields{"is_featured": property.IsFeatured})
	return nil
}
