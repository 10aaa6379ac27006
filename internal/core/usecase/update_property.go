package usecase

import (
	"context"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type UpdatePropertyUseCase struct {
	repo port.PropertyRepositoryPort
	refs port.ReferenceCheckerPort
}

func NewUpdatePropertyUseCase(repo port.PropertyRepositoryPort, refs port.ReferenceCheckerPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{repo: repo, refs: refs}
}

// Execute выполняет частичное обновление. Валидируются только те
// внешние ссылки, которые запрос действительно меняет. Ответ - запись,
// перечитанная из хранилища после сохранения.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id uuid.UUID, input domain.PropertyUpdateInput) (*domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateProperty", "property_id": id})

	ucLogger.Info("Use case started", nil)

	property, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if input.AgentID != nil {
		if err := validateReference(ctx, uc.refs.AgentExists, "agent", *input.AgentID); err != nil {
			ucLogger.Warn("Agent reference rejected", port.Fields{"agent_id": *input.AgentID, "error": err.Error()})
			return nil, err
		}
	}
	if input.CityID != nil {
		if err := validateReference(ctx, uc.refs.CityExists, "city", *input.CityID); err != nil {
			ucLogger.Warn("City reference rejected", port.Fields{"city_id": *input.CityID, "error": err.Error()})
			return nil, err
		}
	}
	if input.PropertyTypeID != nil {
		if err := validateReference(ctx, uc.refs.PropertyTypeExists, "property type", *input.PropertyTypeID); err != nil {
			ucLogger.Warn("Property type reference rejected", port.Fields{"property_type_id": *input.PropertyTypeID, "error": err.Error()})
			return nil, err
		}
	}

	applyUpdate(property, input)

	if err := uc.repo.Save(ctx, property); err != nil {
		ucLogger.Error("Failed to save updated property", err, nil)
		return nil, err
	}

	saved, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to reload property after save", err, nil)
		return nil, err
	}

	ucLogger.Info("Property updated", nil)
	return toView(saved), nil
}
