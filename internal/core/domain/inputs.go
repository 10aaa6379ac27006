package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyCreateInput - данные для создания объявления после
// структурной валидации тела запроса.
type PropertyCreateInput struct {
	Title          string
	Description    string
	Price          decimal.Decimal
	AgentID        uuid.UUID
	CityID         uuid.UUID
	PropertyTypeID uuid.UUID
	Status         PropertyStatus
	Bedrooms       *int
	Bathrooms      *int
	SquareFeet     *int
	Address        string
	Features       []string
	ImageURLs      []string
}

// PropertyUpdateInput - частичное обновление. nil-поле означает
// "не трогать". Features - указатель на слайс: non-nil (даже пустой)
// полностью заменяет коллекцию особенностей. Поля для изображений нет:
// изображения неизменяемы после создания.
type PropertyUpdateInput struct {
	Title          *string
	Description    *string
	Price          *decimal.Decimal
	AgentID        *uuid.UUID
	CityID         *uuid.UUID
	PropertyTypeID *uuid.UUID
	Status         *PropertyStatus
	Bedrooms       *int
	Bathrooms      *int
	SquareFeet     *int
	Address        *string
	Features       *[]string
}

// SearchFilters - необязательные фильтры поиска. Отсутствующий фильтр
// не накладывает ограничений, заданные комбинируются через AND.
type SearchFilters struct {
	Text           string
	CityID         *uuid.UUID
	PropertyTypeID *uuid.UUID
	MaxPrice       *decimal.Decimal
}

// IsEmpty сообщает, задан ли хоть один фильтр.
func (f SearchFilters) IsEmpty() bool {
	return f.Text == "" && f.CityID == nil && f.PropertyTypeID == nil && f.MaxPrice == nil
}
