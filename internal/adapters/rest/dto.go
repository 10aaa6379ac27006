package rest

import (
	"time"

	"property-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceAmount - decimal, который сериализуется в JSON-число, а не в
// строку. Схемы запросов объявляют price как number, и тело ответа
// обязано совпадать с ними по форме: GET-ответ можно отправить
// обратно в PUT без правок.
type PriceAmount decimal.Decimal

func (p PriceAmount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(p).String()), nil
}

func (p *PriceAmount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = PriceAmount(d)
	return nil
}

// PropertyResponse - объявление в том виде, в котором его отдает API.
type PropertyResponse struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Price          PriceAmount `json:"price"`
	AgentID        uuid.UUID   `json:"agentId"`
	CityID         uuid.UUID   `json:"cityId"`
	PropertyTypeID uuid.UUID   `json:"propertyTypeId"`
	Status         string      `json:"status"`
	Bedrooms       *int        `json:"bedrooms"`
	Bathrooms      *int        `json:"bathrooms"`
	SquareFeet     *int        `json:"squareFeet"`
	Address        string      `json:"address"`
	IsFeatured     bool        `json:"isFeatured"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	ImageURLs      []string    `json:"imageUrls"`
	Features       []string    `json:"features"`
}

// PropertyCreateRequest - тело POST /properties. Структура проходит
// JSON Schema валидацию до анмаршалинга, поэтому здесь нет своих
// проверок.
type PropertyCreateRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	AgentID        uuid.UUID       `json:"agentId"`
	CityID         uuid.UUID       `json:"cityId"`
	PropertyTypeID uuid.UUID       `json:"propertyTypeId"`
	Status         string          `json:"status"`
	Bedrooms       *int            `json:"bedrooms"`
	Bathrooms      *int            `json:"bathrooms"`
	SquareFeet     *int            `json:"squareFeet"`
	Address        string          `json:"address"`
	Features       []string        `json:"features"`
	ImageUrls      []string        `json:"imageUrls"`
}

// PropertyUpdateRequest - тело PUT /properties/{id}. Все поля
// опциональны: nil означает "оставить как есть". Поля imageUrls нет -
// изображения после создания не редактируются.
type PropertyUpdateRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	AgentID        *uuid.UUID       `json:"agentId"`
	CityID         *uuid.UUID       `json:"cityId"`
	PropertyTypeID *uuid.UUID       `json:"propertyTypeId"`
	Status         *string          `json:"status"`
	Bedrooms       *int             `json:"bedrooms"`
	Bathrooms      *int             `json:"bathrooms"`
	SquareFeet     *int             `json:"squareFeet"`
	Address        *string          `json:"address"`
	Features       *[]string        `json:"features"`
}

func toCreateInput(req PropertyCreateRequest) domain.PropertyCreateInput {
	return domain.PropertyCreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		AgentID:        req.AgentID,
		CityID:         req.CityID,
		PropertyTypeID: req.PropertyTypeID,
		Status:         domain.PropertyStatus(req.Status),
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		SquareFeet:     req.SquareFeet,
		Address:        req.Address,
		Features:       req.Features,
		ImageURLs:      req.ImageUrls,
	}
}

func toUpdateInput(req PropertyUpdateRequest) domain.PropertyUpdateInput {
	input := domain.PropertyUpdateInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		AgentID:        req.AgentID,
		CityID:         req.CityID,
		PropertyTypeID: req.PropertyTypeID,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		SquareFeet:     req.SquareFeet,
		Address:        req.Address,
		Features:       req.Features,
	}
	if req.Status != nil {
		status := domain.PropertyStatus(*req.Status)
		input.Status = &status
	}
	return input
}

func toPropertyResponse(view domain.PropertyView) PropertyResponse {
	return PropertyResponse{
		ID:             view.ID,
		Title:          view.Title,
		Description:    view.Description,
		Price:          PriceAmount(view.Price),
		AgentID:        view.AgentID,
		CityID:         view.CityID,
		PropertyTypeID: view.PropertyTypeID,
		Status:         string(view.Status),
		Bedrooms:       view.Bedrooms,
		Bathrooms:      view.Bathrooms,
		SquareFeet:     view.SquareFeet,
		Address:        view.Address,
		IsFeatured:     view.IsFeatured,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
		ImageURLs:      view.ImageURLs,
		Features:       view.Features,
	}
}

func toPropertyResponseList(views []domain.PropertyView) []PropertyResponse {
	responses := make([]PropertyResponse, len(views))
	for i, view := range views {
		responses[i] = toPropertyResponse(view)
	}
	return responses
}
