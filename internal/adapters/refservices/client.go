package refservices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"property-service/internal/contextkeys"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

// ExistenceClient - HTTP-клиент проверки существования сущности в
// сервисе-владельце (агенты, города, типы недвижимости). Один вызов -
// одна проверка: GET {base}/api/v1/{resource}/{id}/exists.
type ExistenceClient struct {
	baseURL    string // Например, "http://agent-service:8081"
	resource   string // "agents", "cities", "property-types"
	kind       string // имя сущности для логов: "agent", "city", ...
	httpClient *http.Client
	cache      *existsCache
}

// NewExistenceClient - конструктор.
func NewExistenceClient(baseURL, resource, kind string, cacheTTL time.Duration) *ExistenceClient {
	return &ExistenceClient{
		baseURL:    baseURL,
		resource:   resource,
		kind:       kind,
		httpClient: &http.Client{},
		cache:      newExistsCache(cacheTTL),
	}
}

// doRequest - внутренний хелпер: прокидывает trace_id и общие заголовки.
func (c *ExistenceClient) doRequest(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// Exists спрашивает сервис-владелец, существует ли идентификатор.
// Любой не-true ответ, включая буквальный null и пустое тело, трактуется
// как "не найдено" - явной веткой, без приведения к bool. Сетевая
// ошибка или не-200 статус пробрасываются и прерывают операцию записи
// вызывающего: ретраев и fallback'а нет.
func (c *ExistenceClient) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "ExistenceClient",
		"resource":  c.resource,
		"id":        id,
	})

	// Кэш хранит только подтвержденные положительные ответы.
	if c.cache.has(id) {
		clientLogger.Debug("Existence confirmed from cache", nil)
		return true, nil
	}

	url := fmt.Sprintf("%s/api/v1/%s/%s/exists", c.baseURL, c.resource, id)
	resp, err := c.doRequest(ctx, http.MethodGet, url)
	if err != nil {
		clientLogger.Error("Failed to call existence endpoint", err, port.Fields{"url": url})
		return false, fmt.Errorf("failed to call %s service: %w", c.kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%s service returned non-200 status: %d, body: %s", c.kind, resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from existence endpoint", err, port.Fields{"status_code": resp.StatusCode})
		return false, err
	}

	// Декодируем в *bool: nil остается nil и для null в теле,
	// и для пустого тела.
	var exists *bool
	if err := json.NewDecoder(resp.Body).Decode(&exists); err != nil && err != io.EOF {
		clientLogger.Error("Failed to decode existence response", err, nil)
		return false, fmt.Errorf("failed to decode %s service response: %w", c.kind, err)
	}

	if exists == nil || !*exists {
		clientLogger.Warn("Entity not confirmed by owning service", port.Fields{"null_response": exists == nil})
		return false, nil
	}

	c.cache.put(id)
	return true, nil
}

// ReferenceChecker реализует port.ReferenceCheckerPort поверх трех
// клиентов существования.
type ReferenceChecker struct {
	agents        *ExistenceClient
	cities        *ExistenceClient
	propertyTypes *ExistenceClient
}

// NewReferenceChecker - конструктор.
func NewReferenceChecker(agentServiceURL, cityServiceURL, propertyTypeServiceURL string, cacheTTL time.Duration) *ReferenceChecker {
	return &ReferenceChecker{
		agents:        NewExistenceClient(agentServiceURL, "agents", "agent", cacheTTL),
		cities:        NewExistenceClient(cityServiceURL, "cities", "city", cacheTTL),
		propertyTypes: NewExistenceClient(propertyTypeServiceURL, "property-types", "property type", cacheTTL),
	}
}

func (r *ReferenceChecker) AgentExists(ctx context.Context, agentID uuid.UUID) (bool, error) {
	return r.agents.Exists(ctx, agentID)
}

func (r *ReferenceChecker) CityExists(ctx context.Context, cityID uuid.UUID) (bool, error) {
	return r.cities.Exists(ctx, cityID)
}

func (r *ReferenceChecker) PropertyTypeExists(ctx context.Context, propertyTypeID uuid.UUID) (bool, error) {
	return r.propertyTypes.Exists(ctx, propertyTypeID)
}
