// Package repo provides type-parametrized CRUD over the content entities.
// Entity-specific repositories declare their filterable and orderable columns
// up front and compose specialized queries on top.
package repo

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound reports an absent entity id. Persistence-layer failures
// (constraint violations, connection errors) propagate as-is.
var ErrNotFound = errors.New("record not found")

// ListParams carries listing arguments. Filters apply equality predicates;
// keys not declared in Filterable and nil values are silently ignored rather
// than rejected.
type ListParams struct {
	Skip      int
	Limit     int
	OrderBy   string
	Direction string
	Filters   map[string]any
}

// Repository is configured per entity type. DefaultOrder is a full order
// expression (e.g. `"order" ASC` or `created_at DESC`) applied when no valid
// explicit ordering is requested. `id ASC` is always appended as the final
// tie-breaker so pagination stays deterministic.
type Repository[T any] struct {
	DefaultOrder string
	Filterable   map[string]string
	Orderable    map[string]string
	MaxLimit     int
}

func (r Repository[T]) Get(db *gorm.DB, id uint) (*T, error) {
	var m T
	err := db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r Repository[T]) List(db *gorm.DB, p ListParams) ([]T, error) {
	q := db.Model(new(T))

	for key, val := range p.Filters {
		col, ok := r.Filterable[key]
		if !ok || val == nil {
			continue
		}
		q = q.Where(col+" = ?", val)
	}

	q = r.ApplyOrder(q, p.OrderBy, p.Direction)

	skip := p.Skip
	if skip < 0 {
		skip = 0
	}
	limit := r.clampLimit(p.Limit)

	var out []T
	if err := q.Offset(skip).Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyOrder adds the ordering clauses for a listing query: the requested
// column when declared orderable, otherwise the entity's default order, and
// always `id ASC` last.
func (r Repository[T]) ApplyOrder(q *gorm.DB, orderBy, direction string) *gorm.DB {
	ordered := false
	if orderBy != "" {
		if col, ok := r.Orderable[orderBy]; ok {
			dir := "ASC"
			if strings.EqualFold(direction, "desc") {
				dir = "DESC"
			}
			q = q.Order(fmt.Sprintf("%s %s", col, dir))
			ordered = true
		}
	}
	if !ordered && r.DefaultOrder != "" {
		q = q.Order(r.DefaultOrder)
	}
	return q.Order("id ASC")
}

// Create persists the entity, including any populated child associations.
// GORM runs the parent and child inserts in a single transaction, so a child
// failure rolls back the parent row.
func (r Repository[T]) Create(db *gorm.DB, m *T) error {
	return db.Create(m).Error
}

// Update merges only the given columns into the stored entity and returns
// the refreshed row. Columns absent from fields keep their current values.
func (r Repository[T]) Update(db *gorm.DB, id uint, fields map[string]any) (*T, error) {
	var m T
	err := db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := db.Model(&m).Updates(fields).Error; err != nil {
			return nil, err
		}
		if err := db.First(&m, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// Delete removes the entity; owned children go with it via the database
// cascade constraints.
func (r Repository[T]) Delete(db *gorm.DB, id uint) error {
	res := db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r Repository[T]) clampLimit(limit int) int {
	max := r.MaxLimit
	if max <= 0 {
		max = 100
	}
	if limit < 1 || limit > max {
		return max
	}
	return limit
}

// FilterColumns keeps only the entries of a request body whose keys appear
// in the allowed column set, producing the partial-update map for Update.
func FilterColumns(body map[string]any, allowed map[string]bool) map[string]any {
	out := make(map[string]any, len(body))
	for k, v := range body {
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}

// Columns builds an allowed-column set from a list of column names.
func Columns(names ...string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}
