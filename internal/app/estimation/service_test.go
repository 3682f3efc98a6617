package estimation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateLineItemsMissingCostItem(t *testing.T) {
	src := &fakeSource{
		project:    &Project{ID: 42, ContingencyPercentage: 10},
		categories: testCategories(),
		subElements: map[uint]*CategoryRef{
			3: {ID: 1, Code: "1", Name: "Substructure"},
		},
		items: map[uint]*CatalogItem{
			7: {
				ID: 7, Description: "Piling", Unit: "m",
				MaterialUnitCost: 100, WasteFactor: 1.0, SubElementID: 3,
			},
		},
		lines: []LineItem{
			NewCatalogLine(1, 2, CatalogRef{CostItemID: 7}),
			NewCatalogLine(2, 5, CatalogRef{CostItemID: 999}), // Расценка удалена
			NewCustomLine(3, 1, CustomFields{UnitRate: 50, CategoryID: 2}),
		},
	}
	svc := NewService(src)

	calcs, warnings, err := svc.CalculateLineItems(42)
	require.NoError(t, err)

	// Битая строка исключена, остальные посчитаны
	require.Len(t, calcs, 2)
	require.Len(t, warnings, 1)
	require.Equal(t, uint(2), warnings[0].LineItemID)
	require.Equal(t, uint(999), warnings[0].CostItemID)

	// Итог по проекту при этом считается без ошибок
	total, err := svc.CalculateProjectTotal(42)
	require.NoError(t, err)
	require.Equal(t, 250.0, total.Subtotal) // 100×2 + 50, битая строка не в счете
}

func TestCalculateLineItemsSourceError(t *testing.T) {
	wantErr := errors.New("connection refused")
	svc := NewService(&fakeSource{linesErr: wantErr})

	_, _, err := svc.CalculateLineItems(42)
	require.ErrorIs(t, err, wantErr)
}

func TestCalculateLineItemsUnknownSubElement(t *testing.T) {
	// Суб-элемент без элемента затрат: строка не теряется,
	// она уходит в Unclassified на этапе группировки
	src := &fakeSource{
		categories: testCategories(),
		items: map[uint]*CatalogItem{
			7: {ID: 7, Description: "Orphan item", Unit: "nr",
				MaterialUnitCost: 10, WasteFactor: 1.0, SubElementID: 55},
		},
		lines: []LineItem{
			NewCatalogLine(1, 1, CatalogRef{CostItemID: 7}),
		},
	}
	svc := NewService(src)

	calcs, warnings, err := svc.CalculateLineItems(42)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, calcs, 1)

	totals, err := svc.CalculateCategoryTotals(42, calcs)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	require.Equal(t, UnclassifiedCategoryID, totals[0].CategoryID)
	require.Equal(t, 10.0, totals[0].Subtotal)
}

func TestCalculateComponentBreakdown(t *testing.T) {
	src := &fakeSource{
		categories: testCategories(),
		subElements: map[uint]*CategoryRef{
			3: {ID: 1, Code: "1", Name: "Substructure"},
		},
		items: map[uint]*CatalogItem{
			7: {ID: 7, Description: "Concrete slab", Unit: "m3",
				MaterialUnitCost: 100, ManagementUnitCost: 10, ContractorUnitCost: 50,
				WasteFactor: 1.05, ContractorRequired: true, SubElementID: 3},
		},
		lines: []LineItem{
			NewCatalogLine(1, 2, CatalogRef{CostItemID: 7}),
		},
		components: map[uint][]Component{
			1: {
				{Type: "material", UnitRate: 90, WasteFactor: 1.1},
				{Type: "labor", UnitRate: 40, WasteFactor: 1.0},
				{Type: "plant", UnitRate: 25, WasteFactor: 1.0},
			},
		},
	}
	svc := NewService(src)

	got, err := svc.CalculateComponentBreakdown(42, 1)
	require.NoError(t, err)
	require.Len(t, got.Components, 3)

	// 2×90×1.1 + 2×40 + 2×25 = 198 + 80 + 50
	require.InDelta(t, 328.0, got.ComponentTotal, 1e-9)
	// Основная формула для сравнения: 100×2×1.05 + 10×2 + 50×2
	require.InDelta(t, 330.0, got.CatalogTotal, 1e-9)
}

func TestCalculateComponentBreakdownUnknownLine(t *testing.T) {
	svc := NewService(&fakeSource{
		lines: []LineItem{NewCustomLine(1, 1, CustomFields{UnitRate: 5, CategoryID: 1})},
	})

	_, err := svc.CalculateComponentBreakdown(42, 777)
	require.ErrorIs(t, err, ErrLineItemNotFound)
}
