package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyView - плоское представление объявления для отдачи наружу:
// дочерние коллекции схлопнуты в списки URL и названий особенностей.
type PropertyView struct {
	ID             uuid.UUID
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
	IsFeatured     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ImageURLs      []string
	Features       []string
}
