package postgres_adapter

import (
	"fmt"
	"strings"

	"property-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// build собирает финальный WHERE (пустая строка, если условий нет).
func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// applySearchFilters разбирает фильтры поиска и строит WHERE-часть.
// Отсутствующий фильтр не добавляет условия, заданные комбинируются
// через AND.
func applySearchFilters(filters domain.SearchFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Текст ищется подстрокой в title ИЛИ description. ILIKE - поиск
	// регистронезависимый.
	if filters.Text != "" {
		qb.conditions = append(qb.conditions,
			fmt.Sprintf("(p.title ILIKE $%d OR p.description ILIKE $%d)", qb.argID, qb.argID))
		qb.args = append(qb.args, "%"+filters.Text+"%")
		qb.argID++
	}

	if filters.CityID != nil {
		qb.addCondition("%s = $%d", "p.city_id", *filters.CityID)
	}

	if filters.PropertyTypeID != nil {
		qb.addCondition("%s = $%d", "p.property_type_id", *filters.PropertyTypeID)
	}

	// Верхняя граница цены передается текстом, чтобы NUMERIC сравнивался
	// без прохода через float.
	if filters.MaxPrice != nil {
		qb.addCondition("%s <= $%d", "p.price", filters.MaxPrice.String())
	}

	return qb.build()
}
