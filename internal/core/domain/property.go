package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyStatus - статус объявления. Закрытое множество значений.
type PropertyStatus string

const (
	StatusForSale PropertyStatus = "FOR_SALE"
	StatusSold    PropertyStatus = "SOLD"
	StatusRented  PropertyStatus = "RENTED"
)

// IsValid проверяет, что статус входит в допустимое множество.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case StatusForSale, StatusSold, StatusRented:
		return true
	}
	return false
}

// Property - агрегат объявления о недвижимости. Владеет коллекциями
// Images и Features: дочерние записи не живут отдельно от родителя.
type Property struct {
	ID          uuid.UUID
	Title       string
	Description string
	// Price хранится как decimal, а не float64: цена должна
	// round-trip'иться без потери точности.
	Price          decimal.Decimal
	AgentID        uuid.UUID
	CityID         uuid.UUID
	PropertyTypeID uuid.UUID
	Status         PropertyStatus
	Bedrooms       *int
	Bathrooms      *int
	SquareFeet     *int
	Address        string
	IsFeatured     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Images   []PropertyImage
	Features []PropertyFeature
}

// PropertyImage - дочерняя сущность: одно фото объявления.
// DisplayOrder задает порядок показа, запись с DisplayOrder == 0
// помечается как главная.
type PropertyImage struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	ImageURL     string
	IsPrimary    bool
	DisplayOrder int
}

// PropertyFeature - дочерняя сущность: особенность объявления
// ("Pool", "Garage" и т.п.).
type PropertyFeature struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	FeatureName string
	Description string
}
