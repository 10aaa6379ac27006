package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"property-service/internal/contextkeys"
	"property-service/internal/contracts"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
	"property-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyHandler реализует обработчики REST API объявлений.
type PropertyHandler struct {
	getAllUC      usecases_port.GetAllPropertiesUseCasePort
	getByIDUC     usecases_port.GetPropertyByIDUseCasePort
	createUC      usecases_port.CreatePropertyUseCasePort
	updateUC      usecases_port.UpdatePropertyUseCasePort
	deleteUC      usecases_port.DeletePropertyUseCasePort
	toggleUC      usecases_port.ToggleFeaturedUseCasePort
	searchUC      usecases_port.SearchPropertiesUseCasePort
	getByAgentUC  usecases_port.GetPropertiesByAgentUseCasePort
	getByCityUC   usecases_port.GetPropertiesByCityUseCasePort
	getFeaturedUC usecases_port.GetFeaturedPropertiesUseCasePort
}

// NewPropertyHandler - конструктор.
func NewPropertyHandler(
	getAllUC usecases_port.GetAllPropertiesUseCasePort,
	getByIDUC usecases_port.GetPropertyByIDUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
	toggleUC usecases_port.ToggleFeaturedUseCasePort,
	searchUC usecases_port.SearchPropertiesUseCasePort,
	getByAgentUC usecases_port.GetPropertiesByAgentUseCasePort,
	getByCityUC usecases_port.GetPropertiesByCityUseCasePort,
	getFeaturedUC usecases_port.GetFeaturedPropertiesUseCasePort,
) *PropertyHandler {
	return &PropertyHandler{
		getAllUC:      getAllUC,
		getByIDUC:     getByIDUC,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		toggleUC:      toggleUC,
		searchUC:      searchUC,
		getByAgentUC:  getByAgentUC,
		getByCityUC:   getByCityUC,
		getFeaturedUC: getFeaturedUC,
	}
}

// writeUseCaseError маппит ошибки use case'ов на HTTP-статусы.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	if errors.Is(err, domain.ErrPropertyNotFound) {
		logger.Warn("Property not found", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	logger.Error("Use case failed", err, nil)
	WriteJSONError(w, http.StatusInternalServerError, err.Error())
}

// parseSearchFilters собирает фильтры поиска из query-параметров.
func parseSearchFilters(r *http.Request) (domain.SearchFilters, string) {
	query := r.URL.Query()
	filters := domain.SearchFilters{Text: query.Get("search")}

	if raw := query.Get("cityId"); raw != "" {
		cityID, err := uuid.Parse(raw)
		if err != nil {
			return filters, "Invalid cityId format"
		}
		filters.CityID = &cityID
	}
	if raw := query.Get("propertyTypeId"); raw != "" {
		typeID, err := uuid.Parse(raw)
		if err != nil {
			return filters, "Invalid propertyTypeId format"
		}
		filters.PropertyTypeID = &typeID
	}
	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, "Invalid maxPrice format"
		}
		filters.MaxPrice = &maxPrice
	}
	return filters, ""
}

func hasSearchParams(r *http.Request) bool {
	query := r.URL.Query()
	return query.Has("search") || query.Has("cityId") ||
		query.Has("propertyTypeId") || query.Has("maxPrice")
}

// GetProperties обрабатывает GET /api/v1/properties. Если в запросе
// есть параметры поиска, ведет себя как /search, иначе отдает все.
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperties"})

	if hasSearchParams(r) {
		h.search(w, r, logger)
		return
	}

	logger.Info("Processing request to get all properties", nil)

	views, err := h.getAllUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Successfully retrieved properties", port.Fields{"count": len(views)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(views))
}

// SearchProperties обрабатывает GET /api/v1/properties/search
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchProperties"})
	h.search(w, r, logger)
}

func (h *PropertyHandler) search(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) {
	filters, badParam := parseSearchFilters(r)
	if badParam != "" {
		logger.Warn("Invalid search parameter", port.Fields{"reason": badParam})
		WriteJSONError(w, http.StatusBadRequest, badParam)
		return
	}

	logger.Info("Processing request to search properties", port.Fields{"query": r.URL.RawQuery})

	views, err := h.searchUC.Execute(r.Context(), filters)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Successfully searched properties", port.Fields{"count": len(views)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(views))
}

// GetPropertyByID обрабатывает GET /api/v1/properties/{id}
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyByID"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("Invalid property id in URL", port.Fields{"provided_id": chi.URLParam(r, "id")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"property_id": id})
	handlerLogger.Info("Processing request to get property", nil)

	view, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*view))
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if fieldErrors := contracts.ValidatePropertyCreate(body); len(fieldErrors) > 0 {
		logger.Warn("Create property request failed validation", port.Fields{"errors": fieldErrors})
		WriteValidationError(w, fieldErrors)
		return
	}

	var reqDTO PropertyCreateRequest
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		logger.Warn("Failed to decode create property body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logger.Info("Processing request to create property", port.Fields{"title": reqDTO.Title})

	view, err := h.createUC.Execute(r.Context(), toCreateInput(reqDTO))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Successfully created property", port.Fields{"property_id": view.ID})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*view))
}

// UpdateProperty обрабатывает PUT /api/v1/properties/{id}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("Invalid property id in URL", port.Fields{"provided_id": chi.URLParam(r, "id")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id format")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if fieldErrors := contracts.ValidatePropertyUpdate(body); len(fieldErrors) > 0 {
		logger.Warn("Update property request failed validation", port.Fields{"errors": fieldErrors})
		WriteValidationError(w, fieldErrors)
		return
	}

	var reqDTO PropertyUpdateRequest
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		logger.Warn("Failed to decode update property body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"property_id": id})
	handlerLogger.Info("Processing request to update property", nil)

	view, err := h.updateUC.Execute(r.Context(), id, toUpdateInput(reqDTO))
	if err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	handlerLogger.Info("Successfully updated property", nil)
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*view))
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{id}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("Invalid property id in URL", port.Fields{"provided_id": chi.URLParam(r, "id")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"property_id": id})
	handlerLogger.Info("Processing request to delete property", nil)

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	handlerLogger.Info("Successfully deleted property", nil)
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFeatured обрабатывает PUT /api/v1/properties/{id}/feature
func (h *PropertyHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ToggleFeatured"})

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("Invalid property id in URL", port.Fields{"provided_id": chi.URLParam(r, "id")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"property_id": id})
	handlerLogger.Info("Processing request to toggle featured flag", nil)

	if err := h.toggleUC.Execute(r.Context(), id); err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	handlerLogger.Info("Successfully toggled featured flag", nil)
	w.WriteHeader(http.StatusOK)
}

// GetFeaturedProperties обрабатывает GET /api/v1/properties/featured
func (h *PropertyHandler) GetFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeaturedProperties"})
	logger.Info("Processing request to get featured properties", nil)

	views, err := h.getFeaturedUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Successfully retrieved featured properties", port.Fields{"count": len(views)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(views))
}

// GetPropertiesByAgent обрабатывает GET /api/v1/properties/agent/{agentId}
func (h *PropertyHandler) GetPropertiesByAgent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertiesByAgent"})

	agentID, err := uuid.Parse(chi.URLParam(r, "agentId"))
	if err != nil {
		logger.Warn("Invalid agent id in URL", port.Fields{"provided_id": chi.URLParam(r, "agentId")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid agent id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"agent_id": agentID})
	handlerLogger.Info("Processing request to get properties by agent", nil)

	views, err := h.getByAgentUC.Execute(r.Context(), agentID)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	handlerLogger.Info("Successfully retrieved properties by agent", port.Fields{"count": len(views)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(views))
}

// GetPropertiesByCity обрабатывает GET /api/v1/properties/city/{cityId}
func (h *PropertyHandler) GetPropertiesByCity(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertiesByCity"})

	cityID, err := uuid.Parse(chi.URLParam(r, "cityId"))
	if err != nil {
		logger.Warn("Invalid city id in URL", port.Fields{"provided_id": chi.URLParam(r, "cityId")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid city id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"city_id": cityID})
	handlerLogger.Info("Processing request to get properties by city", nil)

	views, err := h.getByCityUC.Execute(r.Context(), cityID)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	handlerLogger.Info("Successfully retrieved properties by city", port.Fields{"count": len(views)})
	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(views))
}
