package usecase

import (
	"context"
	"fmt"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type CreatePropertyUseCase struct {
	repo port.PropertyRepositoryPort
	refs port.ReferenceCheckerPort
}

func NewCreatePropertyUseCase(repo port.PropertyRepositoryPort, refs port.ReferenceCheckerPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{repo: repo, refs: refs}
}

// Execute создает объявление: сначала подтверждает все три внешние
// ссылки, затем собирает агрегат и сохраняет его. До сохранения дело не
// доходит, если хотя бы одна проверка не прошла. После сохранения
// запись перечитывается из хранилища, чтобы ответ отражал ровно то,
// что сохранено.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input domain.PropertyCreateInput) (*domain.PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateProperty", "title": input.Title})

	ucLogger.Info("Use case started", nil)

	if err := validateReference(ctx, uc.refs.AgentExists, "agent", input.AgentID); err != nil {
		ucLogger.Warn("Agent reference rejected", port.Fields{"agent_id": input.AgentID, "error": err.Error()})
		return nil, err
	}
	if err := validateReference(ctx, uc.refs.CityExists, "city", input.CityID); err != nil {
		ucLogger.Warn("City reference rejected", port.Fields{"city_id": input.CityID, "error": err.Error()})
		return nil, err
	}
	if err := validateReference(ctx, uc.refs.PropertyTypeExists, "property type", input.PropertyTypeID); err != nil {
		ucLogger.Warn("Property type reference rejected", port.Fields{"property_type_id": input.PropertyTypeID, "error": err.Error()})
		return nil, err
	}

	property := buildProperty(input)
	if err := uc.repo.Save(ctx, &property); err != nil {
		ucLogger.Error("Failed to save new property", err, nil)
		return nil, err
	}

	saved, err := uc.repo.FindByID(ctx, property.ID)
	if err != nil {
		ucLogger.Error("Failed to reload property after save", err, port.Fields{"property_id": property.ID})
		return nil, err
	}

	ucLogger.Info("Property created", port.Fields{"property_id": saved.ID})
	return toView(saved), nil
}

// validateReference выполняет одну проверку существования. Ошибка
// вызова внешнего сервиса пробрасывается как есть; отрицательный или
// пустой ответ превращается в ReferenceNotFoundError.
func validateReference(ctx context.Context, check func(context.Context, uuid.UUID) (bool, error), kind string, id uuid.UUID) error {
	exists, err := check(ctx, id)
	if err != nil {
		return fmt.Errorf("%s existence check failed: %w", kind, err)
	}
	if !exists {
		return &domain.ReferenceNotFoundError{Kind: kind, ID: id}
	}
	return nil
}
