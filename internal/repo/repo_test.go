package repo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Category string
	Order    int `gorm:"column:order;not null;default:0"`

	Gadgets []gadget `gorm:"constraint:OnDelete:CASCADE;"`
}

type gadget struct {
	ID       uint `gorm:"primaryKey"`
	WidgetID uint `gorm:"not null;index"`
	Label    string
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&widget{}, &gadget{}))
	return db
}

var widgetRepo = Repository[widget]{
	DefaultOrder: `"order" ASC`,
	Filterable:   map[string]string{"category": "category"},
	Orderable:    map[string]string{"name": "name", "order": `"order"`},
	MaxLimit:     50,
}

func TestCreateAndGet(t *testing.T) {
	db := testDB(t)

	w := widget{Name: "alpha", Category: "tools"}
	require.NoError(t, widgetRepo.Create(db, &w))
	require.NotZero(t, w.ID)

	got, err := widgetRepo.Get(db, w.ID)
	require.NoError(t, err)
	require.Equal(t, "alpha", got.Name)
	require.Equal(t, "tools", got.Category)
}

func TestGetNotFound(t *testing.T) {
	db := testDB(t)
	_, err := widgetRepo.Get(db, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateWithChildrenIsAtomicUnit(t *testing.T) {
	db := testDB(t)

	w := widget{Name: "parent", Gadgets: []gadget{{Label: "a"}, {Label: "b"}}}
	require.NoError(t, widgetRepo.Create(db, &w))

	var count int64
	require.NoError(t, db.Model(&gadget{}).Where("widget_id = ?", w.ID).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestUpdateMergesOnlyGivenColumns(t *testing.T) {
	db := testDB(t)

	w := widget{Name: "alpha", Category: "tools", Order: 3}
	require.NoError(t, widgetRepo.Create(db, &w))

	got, err := widgetRepo.Update(db, w.ID, map[string]any{"name": "beta"})
	require.NoError(t, err)
	require.Equal(t, "beta", got.Name)
	require.Equal(t, "tools", got.Category)
	require.Equal(t, 3, got.Order)
}

func TestUpdateEmptyFieldsIsNoop(t *testing.T) {
	db := testDB(t)

	w := widget{Name: "alpha"}
	require.NoError(t, widgetRepo.Create(db, &w))

	got, err := widgetRepo.Update(db, w.ID, map[string]any{})
	require.NoError(t, err)
	require.Equal(t, "alpha", got.Name)
}

func TestUpdateNotFound(t *testing.T) {
	db := testDB(t)
	_, err := widgetRepo.Update(db, 42, map[string]any{"name": "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := testDB(t)

	w := widget{Name: "alpha"}
	require.NoError(t, widgetRepo.Create(db, &w))
	require.NoError(t, widgetRepo.Delete(db, w.ID))

	_, err := widgetRepo.Get(db, w.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, widgetRepo.Delete(db, w.ID), ErrNotFound)
}

func TestDeleteCascadesToChildren(t *testing.T) {
	db := testDB(t)

	w := widget{Name: "parent", Gadgets: []gadget{{Label: "a"}, {Label: "b"}}}
	require.NoError(t, widgetRepo.Create(db, &w))
	require.NoError(t, widgetRepo.Delete(db, w.ID))

	var count int64
	require.NoError(t, db.Model(&gadget{}).Where("widget_id = ?", w.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestListFilterAndOrder(t *testing.T) {
	db := testDB(t)

	for i, c := range []string{"tools", "toys", "tools"} {
		w := widget{Name: fmt.Sprintf("w%d", i), Category: c, Order: 10 - i}
		require.NoError(t, widgetRepo.Create(db, &w))
	}

	items, err := widgetRepo.List(db, ListParams{Limit: 50, Filters: map[string]any{"category": "tools"}})
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Default order is "order" ASC.
	require.Equal(t, "w2", items[0].Name)
	require.Equal(t, "w0", items[1].Name)

	items, err = widgetRepo.List(db, ListParams{Limit: 50, OrderBy: "name", Direction: "desc"})
	require.NoError(t, err)
	require.Equal(t, "w2", items[0].Name)
}

func TestListIgnoresUnknownAndNilFilters(t *testing.T) {
	db := testDB(t)

	require.NoError(t, widgetRepo.Create(db, &widget{Name: "alpha"}))

	items, err := widgetRepo.List(db, ListParams{
		Limit: 50,
		Filters: map[string]any{
			"nope":     "x",
			"category": nil,
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestListPaginationIsCompleteAndDisjoint(t *testing.T) {
	db := testDB(t)

	// Equal order values force the id tie-breaker to keep pages stable.
	for i := 0; i < 10; i++ {
		require.NoError(t, widgetRepo.Create(db, &widget{Name: fmt.Sprintf("w%d", i), Order: 1}))
	}

	seen := map[uint]bool{}
	for skip := 0; skip < 10; skip += 3 {
		page, err := widgetRepo.List(db, ListParams{Skip: skip, Limit: 3})
		require.NoError(t, err)
		for _, w := range page {
			require.False(t, seen[w.ID], "id %d returned twice", w.ID)
			seen[w.ID] = true
		}
	}
	require.Len(t, seen, 10)
}

func TestListClampsLimit(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 60; i++ {
		require.NoError(t, widgetRepo.Create(db, &widget{Name: fmt.Sprintf("w%d", i)}))
	}

	items, err := widgetRepo.List(db, ListParams{Limit: 500})
	require.NoError(t, err)
	require.Len(t, items, 50)

	items, err = widgetRepo.List(db, ListParams{Limit: 0})
	require.NoError(t, err)
	require.Len(t, items, 50)
}

func TestFilterColumns(t *testing.T) {
	allowed := Columns("name", "order")
	out := FilterColumns(map[string]any{
		"name":  "x",
		"id":    99,
		"bogus": true,
	}, allowed)
	require.Equal(t, map[string]any{"name": "x"}, out)
}
