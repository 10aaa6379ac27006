package postgres_adapter

import (
	"context"
	"fmt"
	"time"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Колонки агрегата. price отдается текстом, чтобы decimal собирался
// из точного представления NUMERIC, минуя float64.
const propertyColumns = `p.id, p.title, COALESCE(p.description, ''), p.price::text,
	p.agent_id, p.city_id, p.property_type_id, p.status,
	p.bedrooms, p.bathrooms, p.square_feet, COALESCE(p.address, ''),
	p.is_featured, p.created_at, p.updated_at`

// PostgresPropertyRepository реализует PropertyRepositoryPort для PostgreSQL.
// Каждый метод чтения возвращает агрегаты с полностью загруженными
// дочерними коллекциями: ленивых прокси выше этой границы нет.
type PostgresPropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPropertyRepository - конструктор.
func NewPostgresPropertyRepository(pool *pgxpool.Pool) (*PostgresPropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPropertyRepository{pool: pool}, nil
}

// FindAll возвращает все объявления с детьми.
func (r *PostgresPropertyRepository) FindAll(ctx context.Context) ([]domain.Property, error) {
	return r.findMany(ctx, "")
}

// FindByID возвращает одно объявление или PropertyNotFoundError.
func (r *PostgresPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	properties, err := r.findMany(ctx, "WHERE p.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return nil, &domain.PropertyNotFoundError{ID: id}
	}
	return &properties[0], nil
}

func (r *PostgresPropertyRepository) FindByAgentID(ctx context.Context, agentID uuid.UUID) ([]domain.Property, error) {
	return r.findMany(ctx, "WHERE p.agent_id = $1", agentID)
}

func (r *PostgresPropertyRepository) FindByCityID(ctx context.Context, cityID uuid.UUID) ([]domain.Property, error) {
	return r.findMany(ctx, "WHERE p.city_id = $1", cityID)
}

func (r *PostgresPropertyRepository) FindFeatured(ctx context.Context) ([]domain.Property, error) {
	return r.findMany(ctx, "WHERE p.is_featured = TRUE")
}

// Search выполняет фильтрованный запрос. Построение WHERE-части
// делегировано query builder'у; текстовый поиск регистронезависимый
// (ILIKE).
func (r *PostgresPropertyRepository) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	whereClause, args := applySearchFilters(filters)
	return r.findMany(ctx, whereClause, args...)
}

// findMany - общий путь чтения: выборка строк properties, затем
// дозагрузка детей одним запросом на коллекцию.
func (r *PostgresPropertyRepository) findMany(ctx context.Context, whereClause string, args ...interface{}) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "findMany",
	})

	query := fmt.Sprintf(
		"SELECT %s FROM properties p %s ORDER BY p.created_at ASC, p.id ASC",
		propertyColumns, whereClause,
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		var priceText string
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &priceText,
			&p.AgentID, &p.CityID, &p.PropertyTypeID, &p.Status,
			&p.Bedrooms, &p.Bathrooms, &p.SquareFeet, &p.Address,
			&p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		p.Price, err = decimal.NewFromString(priceText)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price %q: %w", priceText, err)
		}
		p.Images = []domain.PropertyImage{}
		p.Features = []domain.PropertyFeature{}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during properties iteration", err, nil)
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}

	if err := r.loadChildren(ctx, properties); err != nil {
		return nil, err
	}

	return properties, nil
}

// loadChildren дозагружает изображения и особенности для пачки
// объявлений. Изображения отдаются по display_order, поэтому первый
// URL в представлении - главное фото.
func (r *PostgresPropertyRepository) loadChildren(ctx context.Context, properties []domain.Property) error {
	if len(properties) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]*domain.Property, len(properties))
	ids := make([]uuid.UUID, 0, len(properties))
	for i := range properties {
		index[properties[i].ID] = &properties[i]
		ids = append(ids, properties[i].ID)
	}

	imagesQuery := `SELECT id, property_id, image_url, is_primary, display_order
		FROM property_images WHERE property_id = ANY($1)
		ORDER BY display_order ASC, id ASC`
	imageRows, err := r.pool.Query(ctx, imagesQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to query property images: %w", err)
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var image domain.PropertyImage
		if err := imageRows.Scan(&image.ID, &image.PropertyID, &image.ImageURL, &image.IsPrimary, &image.DisplayOrder); err != nil {
			return fmt.Errorf("failed to scan property image: %w", err)
		}
		if parent, ok := index[image.PropertyID]; ok {
			parent.Images = append(parent.Images, image)
		}
	}
	if err := imageRows.Err(); err != nil {
		return fmt.Errorf("error during property images iteration: %w", err)
	}

	featuresQuery := `SELECT id, property_id, feature_name, COALESCE(description, '')
		FROM property_features WHERE property_id = ANY($1)
		ORDER BY id ASC`
	featureRows, err := r.pool.Query(ctx, featuresQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to query property features: %w", err)
	}
	defer featureRows.Close()

	for featureRows.Next() {
		var feature domain.PropertyFeature
		if err := featureRows.Scan(&feature.ID, &feature.PropertyID, &feature.FeatureName, &feature.Description); err != nil {
			return fmt.Errorf("failed to scan property feature: %w", err)
		}
		if parent, ok := index[feature.PropertyID]; ok {
			parent.Features = append(parent.Features, feature)
		}
	}
	if err := featureRows.Err(); err != nil {
		return fmt.Errorf("error during property features iteration: %w", err)
	}

	return nil
}

// Save вставляет новую запись (ID не заполнен) или обновляет
// существующую, и в той же транзакции пересобирает дочерние таблицы
// один в один с переданным агрегатом: записи, которых в агрегате нет,
// удаляются. created_at выставляется один раз при вставке, updated_at
// обновляется на каждой записи.
func (r *PostgresPropertyRepository) Save(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "Save",
	})

	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	repoLogger = repoLogger.WithFields(port.Fields{"property_id": property.ID})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	upsertQuery := `INSERT INTO properties (
			id, title, description, price, agent_id, city_id, property_type_id,
			status, bedrooms, bathrooms, square_feet, address, is_featured,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			agent_id = EXCLUDED.agent_id,
			city_id = EXCLUDED.city_id,
			property_type_id = EXCLUDED.property_type_id,
			status = EXCLUDED.status,
			bedrooms = EXCLUDED.bedrooms,
			bathrooms = EXCLUDED.bathrooms,
			square_feet = EXCLUDED.square_feet,
			address = EXCLUDED.address,
			is_featured = EXCLUDED.is_featured,
			updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at`

	err = tx.QueryRow(ctx, upsertQuery,
		property.ID, property.Title, property.Description, property.Price.String(),
		property.AgentID, property.CityID, property.PropertyTypeID,
		string(property.Status), property.Bedrooms, property.Bathrooms,
		property.SquareFeet, property.Address, property.IsFeatured, now,
	).Scan(&property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to upsert property", err, nil)
		return fmt.Errorf("failed to upsert property: %w", err)
	}

	// Полная пересборка дочерних таблиц: так "осиротевшие" записи
	// гарантированно не переживают сохранение.
	if _, err := tx.Exec(ctx, `DELETE FROM property_images WHERE property_id = $1`, property.ID); err != nil {
		repoLogger.Error("Failed to clear property images", err, nil)
		return fmt.Errorf("failed to clear property images: %w", err)
	}
	for i := range property.Images {
		image := &property.Images[i]
		if image.ID == uuid.Nil {
			image.ID = uuid.New()
		}
		image.PropertyID = property.ID
		_, err := tx.Exec(ctx,
			`INSERT INTO property_images (id, property_id, image_url, is_primary, display_order)
			 VALUES ($1, $2, $3, $4, $5)`,
			image.ID, image.PropertyID, image.ImageURL, image.IsPrimary, image.DisplayOrder,
		)
		if err != nil {
			repoLogger.Error("Failed to insert property image", err, nil)
			return fmt.Errorf("failed to insert property image: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM property_features WHERE property_id = $1`, property.ID); err != nil {
		repoLogger.Error("Failed to clear property features", err, nil)
		return fmt.Errorf("failed to clear property features: %w", err)
	}
	for i := range property.Features {
		feature := &property.Features[i]
		if feature.ID == uuid.Nil {
			feature.ID = uuid.New()
		}
		feature.PropertyID = property.ID
		_, err := tx.Exec(ctx,
			`INSERT INTO property_features (id, property_id, feature_name, description)
			 VALUES ($1, $2, $3, $4)`,
			feature.ID, feature.PropertyID, feature.FeatureName, feature.Description,
		)
		if err != nil {
			repoLogger.Error("Failed to insert property feature", err, nil)
			return fmt.Errorf("failed to insert property feature: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit transaction", err, nil)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Property saved", port.Fields{
		"images":   len(property.Images),
		"features": len(property.Features),
	})
	return nil
}

// Delete удаляет объявление и каскадно все дочерние записи в одной
// транзакции.
func (r *PostgresPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "Delete",
		"property_id": id,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM property_images WHERE property_id = $1`, id); err != nil {
		repoLogger.Error("Failed to delete property images", err, nil)
		return fmt.Errorf("failed to delete property images: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM property_features WHERE property_id = $1`, id); err != nil {
		repoLogger.Error("Failed to delete property features", err, nil)
		return fmt.Errorf("failed to delete property features: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return &domain.PropertyNotFoundError{ID: id}
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit transaction", err, nil)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Property deleted", nil)
	return nil
}
