package usecase

import (
	"context"
	"time"

	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

// stubPropertyRepo - репозиторий в памяти для тестов use case'ов.
type stubPropertyRepo struct {
	properties map[uuid.UUID]*domain.Property
	saveCalls  int
	saveErr    error
	deleteErr  error
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{properties: make(map[uuid.UUID]*domain.Property)}
}

func cloneProperty(p *domain.Property) *domain.Property {
	cp := *p
	cp.Images = append([]domain.PropertyImage(nil), p.Images...)
	cp.Features = append([]domain.PropertyFeature(nil), p.Features...)
	return &cp
}

func (r *stubPropertyRepo) add(p domain.Property) {
	r.properties[p.ID] = cloneProperty(&p)
}

func (r *stubPropertyRepo) FindAll(ctx context.Context) ([]domain.Property, error) {
	result := make([]domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		result = append(result, *cloneProperty(p))
	}
	return result, nil
}

func (r *stubPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, &domain.PropertyNotFoundError{ID: id}
	}
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) Save(ctx context.Context, property *domain.Property) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saveCalls++
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	for i := range property.Images {
		if property.Images[i].ID == uuid.Nil {
			property.Images[i].ID = uuid.New()
		}
		property.Images[i].PropertyID = property.ID
	}
	for i := range property.Features {
		if property.Features[i].ID == uuid.Nil {
			property.Features[i].ID = uuid.New()
		}
		property.Features[i].PropertyID = property.ID
	}
	now := time.Now()
	if existing, ok := r.properties[property.ID]; ok {
		property.CreatedAt = existing.CreatedAt
	} else {
		property.CreatedAt = now
	}
	property.UpdatedAt = now
	r.properties[property.ID] = cloneProperty(property)
	return nil
}

func (r *stubPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.properties[id]; !ok {
		return &domain.PropertyNotFoundError{ID: id}
	}
	delete(r.properties, id)
	return nil
}

func (r *stubPropertyRepo) FindByAgentID(ctx context.Context, agentID uuid.UUID) ([]domain.Property, error) {
	result := []domain.Property{}
	for _, p := range r.properties {
		if p.AgentID == agentID {
			result = append(result, *cloneProperty(p))
		}
	}
	return result, nil
}

func (r *stubPropertyRepo) FindByCityID(ctx context.Context, cityID uuid.UUID) ([]domain.Property, error) {
	result := []domain.Property{}
	for _, p := range r.properties {
		if p.CityID == cityID {
			result = append(result, *cloneProperty(p))
		}
	}
	return result, nil
}

func (r *stubPropertyRepo) FindFeatured(ctx context.Context) ([]domain.Property, error) {
	result := []domain.Property{}
	for _, p := range r.properties {
		if p.IsFeatured {
			result = append(result, *cloneProperty(p))
		}
	}
	return result, nil
}

func (r *stubPropertyRepo) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	result := []domain.Property{}
	for _, p := range r.properties {
		if filters.CityID != nil && p.CityID != *filters.CityID {
			continue
		}
		if filters.PropertyTypeID != nil && p.PropertyTypeID != *filters.PropertyTypeID {
			continue
		}
		if filters.MaxPrice != nil && p.Price.GreaterThan(*filters.MaxPrice) {
			continue
		}
		result = append(result, *cloneProperty(p))
	}
	return result, nil
}

// stubReferenceChecker отвечает на проверки существования заранее
// заданными значениями и считает вызовы.
type stubReferenceChecker struct {
	agentOK bool
	cityOK  bool
	typeOK  bool

	checkErr error

	agentCalls int
	cityCalls  int
	typeCalls  int
}

func allRefsExist() *stubReferenceChecker {
	return &stubReferenceChecker{agentOK: true, cityOK: true, typeOK: true}
}

func (c *stubReferenceChecker) AgentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	c.agentCalls++
	return c.agentOK, c.checkErr
}

func (c *stubReferenceChecker) CityExists(ctx context.Context, id uuid.UUID) (bool, error) {
	c.cityCalls++
	return c.cityOK, c.checkErr
}

func (c *stubReferenceChecker) PropertyTypeExists(ctx context.Context, id uuid.UUID) (bool, error) {
	c.typeCalls++
	return c.typeOK, c.checkErr
}
