package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrPropertyNotFound - сентинел для проверки через errors.Is.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyNotFoundError - запрошенного объявления нет. Сообщение
// обязано называть идентификатор.
type PropertyNotFoundError struct {
	ID uuid.UUID
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("property not found with id: %s", e.ID)
}

func (e *PropertyNotFoundError) Is(target error) bool {
	return target == ErrPropertyNotFound
}

// ReferenceNotFoundError - внешний сервис не подтвердил существование
// агента/города/типа недвижимости.
type ReferenceNotFoundError struct {
	Kind string // "agent", "city", "property type"
	ID   uuid.UUID
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Kind, e.ID)
}
