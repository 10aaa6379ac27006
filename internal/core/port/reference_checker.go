package port

import (
	"context"

	"github.com/google/uuid"
)

// ReferenceCheckerPort - проверка существования внешних ссылок через
// сервисы-владельцы. false означает "не найдено"; ошибка сети или
// сервиса не глотается и прерывает вызывающую операцию записи.
// Ретраев и circuit breaker'а нет.
type ReferenceCheckerPort interface {
	AgentExists(ctx context.Context, agentID uuid.UUID) (bool, error)
	CityExists(ctx context.Context, cityID uuid.UUID) (bool, error)
	PropertyTypeExists(ctx context.Context, propertyTypeID uuid.UUID) (bool, error)
}
