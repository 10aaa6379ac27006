package usecase

import (
	"strings"

	"property-service/internal/core/domain"
)

// Здесь собрана вся политика маппинга между входными данными, агрегатом
// и плоским представлением: дефолты, отбрасывание пустых значений,
// нумерация изображений и правила частичного обновления.

// buildProperty собирает новый агрегат из входных данных создания.
// IsFeatured принудительно false, что бы ни пришло в запросе.
func buildProperty(input domain.PropertyCreateInput) domain.Property {
	property := domain.Property{
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		AgentID:        input.AgentID,
		CityID:         input.CityID,
		PropertyTypeID: input.PropertyTypeID,
		Status:         input.Status,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		SquareFeet:     input.SquareFeet,
		Address:        input.Address,
		IsFeatured:     false,
	}

	property.Features = buildFeatures(input.Features)
	property.Images = buildImages(input.ImageURLs)

	return property
}

// buildFeatures строит коллекцию особенностей: trim, пустые имена
// отбрасываются и никогда не сохраняются.
func buildFeatures(names []string) []domain.PropertyFeature {
	features := make([]domain.PropertyFeature, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		features = append(features, domain.PropertyFeature{FeatureName: trimmed})
	}
	return features
}

// buildImages строит коллекцию изображений в порядке входного списка:
// trim, пустые URL отбрасываются, display_order - последовательный
// индекс уже после фильтрации. Главным помечается ровно элемент с
// display_order == 0.
func buildImages(urls []string) []domain.PropertyImage {
	images := make([]domain.PropertyImage, 0, len(urls))
	for _, url := range urls {
		trimmed := strings.TrimSpace(url)
		if trimmed == "" {
			continue
		}
		order := len(images)
		images = append(images, domain.PropertyImage{
			ImageURL:     trimmed,
			IsPrimary:    order == 0,
			DisplayOrder: order,
		})
	}
	return images
}

// applyUpdate накладывает частичное обновление на существующий агрегат.
// nil-поля не трогают текущие значения. Non-nil список особенностей
// (даже пустой) полностью заменяет коллекцию. Изображения обновлением
// не затрагиваются вовсе - они неизменяемы после создания.
func applyUpdate(property *domain.Property, input domain.PropertyUpdateInput) {
	if input.AgentID != nil {
		property.AgentID = *input.AgentID
	}
	if input.CityID != nil {
		property.CityID = *input.CityID
	}
	if input.PropertyTypeID != nil {
		property.PropertyTypeID = *input.PropertyTypeID
	}
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Status != nil {
		property.Status = *input.Status
	}
	if input.Bedrooms != nil {
		property.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = input.Bathrooms
	}
	if input.SquareFeet != nil {
		property.SquareFeet = input.SquareFeet
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Features != nil {
		property.Features = buildFeatures(*input.Features)
	}
}

// toView схлопывает агрегат в плоское представление. Порядок URL -
// текущий порядок коллекции (хранилище отдает её по display_order),
// пустые URL и имена отбрасываются.
func toView(property *domain.Property) *domain.PropertyView {
	imageURLs := make([]string, 0, len(property.Images))
	for _, image := range property.Images {
		if strings.TrimSpace(image.ImageURL) == "" {
			continue
		}
		imageURLs = append(imageURLs, image.ImageURL)
	}

	features := make([]string, 0, len(property.Features))
	for _, feature := range property.Features {
		if strings.TrimSpace(feature.FeatureName) == "" {
			continue
		}
		features = append(features, feature.FeatureName)
	}

	return &domain.PropertyView{
		ID:             property.ID,
		Title:          property.Title,
		Description:    property.Description,
		Price:          property.Price,
		AgentID:        property.AgentID,
		CityID:         property.CityID,
		PropertyTypeID: property.PropertyTypeID,
		Status:         property.Status,
		Bedrooms:       property.Bedrooms,
		Bathrooms:      property.Bathrooms,
		SquareFeet:     property.SquareFeet,
		Address:        property.Address,
		IsFeatured:     property.IsFeatured,
		CreatedAt:      property.CreatedAt,
		UpdatedAt:      property.UpdatedAt,
		ImageURLs:      imageURLs,
		Features:       features,
	}
}

// toViewList конвертирует список агрегатов.
func toViewList(properties []domain.Property) []domain.PropertyView {
	views := make([]domain.PropertyView, 0, len(properties))
	for i := range properties {
		views = append(views, *toView(&properties[i]))
	}
	return views
}
