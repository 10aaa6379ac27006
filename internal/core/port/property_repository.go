package port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyRepositoryPort - контракт хранилища агрегата Property.
// Все методы чтения возвращают агрегаты с уже загруженными дочерними
// коллекциями (Images по display_order, Features) - "частично
// загруженного" агрегата выше этой границы не существует.
type PropertyRepositoryPort interface {
	FindAll(ctx context.Context) ([]domain.Property, error)

	// FindByID возвращает *domain.PropertyNotFoundError, если записи нет.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// Save вставляет запись с незаполненным ID и обновляет существующую.
	// Дочерние коллекции синхронизируются с переданным агрегатом один в
	// один: записи, отсутствующие в нем, удаляются из хранилища. Вся
	// операция выполняется в одной транзакции.
	Save(ctx context.Context, property *domain.Property) error

	// Delete удаляет объявление вместе со всеми дочерними записями.
	Delete(ctx context.Context, id uuid.UUID) error

	FindByAgentID(ctx context.Context, agentID uuid.UUID) ([]domain.Property, error)
	FindByCityID(ctx context.Context, cityID uuid.UUID) ([]domain.Property, error)
	FindFeatured(ctx context.Context) ([]domain.Property, error)

	// Search комбинирует заданные фильтры через AND; отсутствующий
	// фильтр не накладывает ограничений.
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error)
}
