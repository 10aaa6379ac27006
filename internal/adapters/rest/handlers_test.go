package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logger_adapter "property-service/internal/adapters/logger"
	"property-service/internal/core/domain"
	"property-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memoryRepo - репозиторий в памяти, достаточный для прогона полного
// HTTP-цикла через реальные use case'ы.
type memoryRepo struct {
	properties map[uuid.UUID]*domain.Property
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{properties: make(map[uuid.UUID]*domain.Property)}
}

func copyOf(p *domain.Property) *domain.Property {
	cp := *p
	cp.Images = append([]domain.PropertyImage(nil), p.Images...)
	cp.Features = append([]domain.PropertyFeature(nil), p.Features...)
	return &cp
}

func (r *memoryRepo) FindAll(ctx context.Context) ([]domain.Property, error) {
	result := make([]domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		result = append(result, *copyOf(p))
	}
	return result, nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, &domain.PropertyNotFoundError{ID: id}
	}
	return copyOf(p), nil
}

func (r *memoryRepo) Save(ctx context.Context, property *domain.Property) error {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	r.properties[property.ID] = copyOf(property)
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.properties[id]; !ok {
		return &domain.PropertyNotFoundError{ID: id}
	}
	delete(r.properties, id)
	return nil
}

func (r *memoryRepo) FindByAgentID(ctx context.Context, agentID uuid.UUID) ([]domain.Property, error) {
	result := []domain.Property{}
	for _, p := range r.properties {
		if p.AgentID == agentID {
			result = append(result, *copyOf(p))
		}
	}
	return result, nil
}

func (r *memoryRepo) FindByCityID(ctx context.Context, cityID uuid.UUID) ([]domain.Property, error) {
	result := []domain.Property{}
	for _, p := range r.properties {
		if p.CityID == cityID {
			result = append(result, *copyOf(p))
		}
	}
	return result, nil
}

func (r *memoryRepo) FindFeatured(ctx context.Context) ([]domain.Property, error) {
	result := []domain.Property{}
	for _, p := range r.properties {
		if p.IsFeatured {
			result = append(result, *copyOf(p))
		}
	}
	return result, nil
}

func (r *memoryRepo) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
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
		result = append(result, *copyOf(p))
	}
	return result, nil
}

type alwaysExists struct{}

func (alwaysExists) AgentExists(ctx context.Context, id uuid.UUID) (bool, error) { return true, nil }
func (alwaysExists) CityExists(ctx context.Context, id uuid.UUID) (bool, error)  { return true, nil }
func (alwaysExists) PropertyTypeExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

func newTestRouter(t *testing.T) (chi.Router, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	refs := alwaysExists{}

	handler := NewPropertyHandler(
		usecase.NewGetAllPropertiesUseCase(repo),
		usecase.NewGetPropertyByIDUseCase(repo),
		usecase.NewCreatePropertyUseCase(repo, refs),
		usecase.NewUpdatePropertyUseCase(repo, refs),
		usecase.NewDeletePropertyUseCase(repo),
		usecase.NewToggleFeaturedUseCase(repo),
		usecase.NewSearchPropertiesUseCase(repo),
		usecase.NewGetPropertiesByAgentUseCase(repo),
		usecase.NewGetPropertiesByCityUseCase(repo),
		usecase.NewGetFeaturedPropertiesUseCase(repo),
	)

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
	return NewRouter(handler, logger), repo
}

func doJSON(t *testing.T, router chi.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createBody() map[string]any {
	return map[string]any{
		"title":          "Cozy apartment",
		"description":    "Two rooms near the center",
		"price":          125000.50,
		"agentId":        uuid.New().String(),
		"cityId":         uuid.New().String(),
		"propertyTypeId": uuid.New().String(),
		"status":         "FOR_SALE",
		"bedrooms":       2,
		"address":        "Main street 1",
		"features":       []string{"Pool", "Garage"},
		"imageUrls":      []string{"https://img.example/1.jpg", "https://img.example/2.jpg"},
	}
}

func TestCreateAndFetchProperty(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/properties", createBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	require.False(t, created.IsFeatured)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/properties/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, []string{"Pool", "Garage"}, fetched.Features)
	require.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, fetched.ImageURLs)
	require.Equal(t, "FOR_SALE", fetched.Status)
}

func TestPropertyResponse_PriceIsJSONNumber(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/properties", createBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	// Цена на проводе - число, как ее и объявляют схемы запросов.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Equal(t, "125000.5", string(raw["price"]))

	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodGet, "/api/v1/properties/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetchedBody := json.RawMessage(rec.Body.Bytes())

	// Тело GET-ответа можно отправить обратно в PUT без правок.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/properties/"+created.ID.String(), fetchedBody)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProperty_NotFoundBody(t *testing.T) {
	router, _ := newTestRouter(t)
	missing := uuid.New()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/properties/"+missing.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["message"], missing.String())
	require.Equal(t, "404", body["status"])
}

func TestGetProperty_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/properties/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProperty_ValidationErrorsPerField(t *testing.T) {
	router, _ := newTestRouter(t)

	body := createBody()
	delete(body, "title")
	body["price"] = -1

	rec := doJSON(t, router, http.MethodPost, "/api/v1/properties", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	require.NotEmpty(t, errBody["title"])
	require.NotEmpty(t, errBody["price"])
	require.Equal(t, "Validation failed", errBody["message"])
	require.Equal(t, "400", errBody["status"])
}

func TestUpdateProperty_PartialUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/properties", createBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPut, "/api/v1/properties/"+created.ID.String(), map[string]any{
		"title": "Renamed",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, created.Description, updated.Description)
	require.Equal(t, created.ImageURLs, updated.ImageURLs)
}

func TestDeleteProperty(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/properties", createBody())
	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/properties/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Zero(t, rec.Body.Len())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/properties/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleFeaturedEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/properties", createBody())
	var created PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPut, "/api/v1/properties/"+created.ID.String()+"/feature", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/properties/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var featured []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	require.Len(t, featured, 1)
	require.True(t, featured[0].IsFeatured)
}

func TestGetProperties_DispatchesToSearch(t *testing.T) {
	router, _ := newTestRouter(t)

	cheap := createBody()
	cheap["price"] = 100000
	expensive := createBody()
	expensive["price"] = 500000

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/properties", cheap).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/properties", expensive).Code)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/properties?maxPrice=200000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var found []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 2)
}

func TestSearchProperties_MaxPriceBoundaryIsInclusive(t *testing.T) {
	router, _ := newTestRouter(t)

	body := createBody()
	body["price"] = 150000
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/properties", body).Code)

	// Объявление с ценой ровно maxPrice попадает в выдачу.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/properties/search?maxPrice=150000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var found []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
}

func TestSearchProperties_InvalidMaxPrice(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/properties/search?maxPrice=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPropertiesByAgent(t *testing.T) {
	router, _ := newTestRouter(t)

	body := createBody()
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/properties", body).Code)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/properties/agent/%s", body["agentId"]), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var found []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/properties/agent/"+uuid.New().String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Empty(t, found)
}

func TestGetPropertiesByCity(t *testing.T) {
	router, _ := newTestRouter(t)

	body := createBody()
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/properties", body).Code)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/properties/city/%s", body["cityId"]), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var found []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
}
