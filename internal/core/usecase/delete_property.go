package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type DeletePropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewDeletePropertyUseCase(repo port.PropertyRepositoryPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{repo: repo}
}

// Execute удаляет объявление вместе с дочерними записями. Сначала
// убеждаемся, что запись существует, чтобы отдать точный not-found.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteProperty", "property_id": id})

	ucLogger.Info("Use case started", nil)

	if _, err := uc.repo.FindByID(ctx, id); err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		ucLogger.Error("Failed to delete property", err, nil)
		return err
	}

	ucLogger.Info("Property deleted", nil)
	return nil
}
