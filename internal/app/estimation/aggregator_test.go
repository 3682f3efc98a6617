package estimation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCategories() []CategoryRef {
	return []CategoryRef{
		{ID: 1, Code: "1", Name: "Substructure"},
		{ID: 2, Code: "2", Name: "Superstructure"},
		{ID: 3, Code: "3", Name: "Finishes"},
	}
}

func TestCalculateCategoryTotals(t *testing.T) {
	src := &fakeSource{categories: testCategories()}
	svc := NewService(src)

	calcs := []LineItemCalculation{
		{LineItemID: 1, CategoryID: 2, LineTotal: 300, ContractorTotal: 100},
		{LineItemID: 2, CategoryID: 1, LineTotal: 150, ContractorTotal: 0},
		{LineItemID: 3, CategoryID: 2, LineTotal: 50, ContractorTotal: 0},
	}

	totals, err := svc.CalculateCategoryTotals(42, calcs)
	require.NoError(t, err)

	// Отсортировано по коду, элемент "3" без строк отсутствует
	require.Len(t, totals, 2)

	require.Equal(t, "1", totals[0].Code)
	require.Equal(t, 1, totals[0].LineCount)
	require.Equal(t, 150.0, totals[0].Subtotal)
	require.Equal(t, 0.0, totals[0].ContractorItemsSubtotal)

	require.Equal(t, "2", totals[1].Code)
	require.Equal(t, 2, totals[1].LineCount)
	require.Equal(t, 350.0, totals[1].Subtotal)
	require.Equal(t, 100.0, totals[1].ContractorItemsSubtotal)
	require.Len(t, totals[1].LineItems, 2)
}

func TestCalculateCategoryTotalsUnclassified(t *testing.T) {
	src := &fakeSource{categories: testCategories()}
	svc := NewService(src)

	// Строка с неизвестным элементом не теряется, а попадает в Unclassified
	calcs := []LineItemCalculation{
		{LineItemID: 1, CategoryID: 1, LineTotal: 100},
		{LineItemID: 2, CategoryID: 99, LineTotal: 40},
		{LineItemID: 3, CategoryID: 77, LineTotal: 60},
	}

	totals, err := svc.CalculateCategoryTotals(42, calcs)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	last := totals[len(totals)-1]
	require.Equal(t, UnclassifiedCategoryID, last.CategoryID)
	require.Equal(t, "ZZ", last.Code)
	require.Equal(t, 2, last.LineCount)
	require.Equal(t, 100.0, last.Subtotal)

	// Сверка: ни одна строка не потеряна и не посчитана дважды
	sum := 0.0
	for _, ct := range totals {
		sum += ct.Subtotal
	}
	require.Equal(t, 200.0, sum)
}

func TestCalculateProjectTotal(t *testing.T) {
	// Два элемента с итогами 1000 и 500, 10% непредвиденных, площадь 100 м2
	src := &fakeSource{
		project: &Project{
			ID:                    42,
			FloorArea:             floatPtr(100),
			ContingencyPercentage: 10,
		},
		categories: testCategories(),
		lines: []LineItem{
			NewCustomLine(1, 1, CustomFields{Description: "Groundworks package", Unit: "sum", UnitRate: 1000, CategoryID: 1}),
			NewCustomLine(2, 1, CustomFields{Description: "Roofing package", Unit: "sum", UnitRate: 500, CategoryID: 2}),
		},
	}
	svc := NewService(src)

	total, err := svc.CalculateProjectTotal(42)
	require.NoError(t, err)

	require.Equal(t, 1500.0, total.Subtotal)
	require.Equal(t, 150.0, total.ContingencyAmount)
	require.Equal(t, 10.0, total.ContingencyPercentage)
	require.Equal(t, 1650.0, total.GrandTotal)
	require.NotNil(t, total.CostPerArea)
	require.InDelta(t, 16.5, *total.CostPerArea, 1e-9)

	// Произвольные строки не несут подрядных затрат
	require.Equal(t, 0.0, total.ContractorCostTotal)
	require.Equal(t, 1500.0, total.NonContractorCostTotal)
}

func TestCalculateProjectTotalContractorSplit(t *testing.T) {
	src := &fakeSource{
		project: &Project{ID: 42, ContingencyPercentage: 10},
		categories: testCategories(),
		subElements: map[uint]*CategoryRef{
			3: {ID: 1, Code: "1", Name: "Substructure"},
		},
		items: map[uint]*CatalogItem{
			7: {
				ID: 7, Description: "Piling", Unit: "m",
				MaterialUnitCost: 100, ManagementUnitCost: 10, ContractorUnitCost: 50,
				WasteFactor: 1.05, ContractorRequired: true, SubElementID: 3,
			},
			8: {
				ID: 8, Description: "Blockwork", Unit: "m2",
				MaterialUnitCost: 30, ManagementUnitCost: 5, ContractorUnitCost: 20,
				WasteFactor: 1.1, ContractorRequired: false, SubElementID: 3,
			},
		},
		lines: []LineItem{
			NewCatalogLine(1, 2, CatalogRef{CostItemID: 7}),
			NewCatalogLine(2, 4, CatalogRef{CostItemID: 8}),
			NewCustomLine(3, 3, CustomFields{UnitRate: 75, CategoryID: 2}),
		},
	}
	svc := NewService(src)

	total, err := svc.CalculateProjectTotal(42)
	require.NoError(t, err)

	// Подрядная доля и работы собственными силами в сумме дают subtotal
	require.InEpsilon(t, total.Subtotal, total.ContractorCostTotal+total.NonContractorCostTotal, 1e-6)
	require.Equal(t, 100.0, total.ContractorCostTotal) // 50 × 2, только строка с признаком

	// Сверка с итогами по элементам
	calcs, _, err := svc.CalculateLineItems(42)
	require.NoError(t, err)
	categoryTotals, err := svc.CalculateCategoryTotals(42, calcs)
	require.NoError(t, err)

	sum := 0.0
	for _, ct := range categoryTotals {
		sum += ct.Subtotal
	}
	require.Equal(t, sum, total.Subtotal)
}

func TestCalculateProjectTotalCostPerArea(t *testing.T) {
	tests := []struct {
		name      string
		floorArea *float64
		wantNil   bool
	}{
		{name: "площадь не задана", floorArea: nil, wantNil: true},
		{name: "нулевая площадь", floorArea: floatPtr(0), wantNil: true},
		{name: "отрицательная площадь", floorArea: floatPtr(-5), wantNil: true},
		{name: "нормальная площадь", floorArea: floatPtr(250), wantNil: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{
				project:    &Project{ID: 42, FloorArea: tt.floorArea, ContingencyPercentage: 10},
				categories: testCategories(),
				lines: []LineItem{
					NewCustomLine(1, 1, CustomFields{UnitRate: 1000, CategoryID: 1}),
				},
			}
			svc := NewService(src)

			total, err := svc.CalculateProjectTotal(42)
			require.NoError(t, err)

			if tt.wantNil {
				require.Nil(t, total.CostPerArea)
			} else {
				require.NotNil(t, total.CostPerArea)
				require.InDelta(t, total.GrandTotal / *tt.floorArea, *total.CostPerArea, 1e-9)
			}
		})
	}
}

func TestCalculateProjectTotalNotFound(t *testing.T) {
	svc := NewService(&fakeSource{})

	_, err := svc.CalculateProjectTotal(404)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCalculateProjectTotalIdempotent(t *testing.T) {
	src := &fakeSource{
		project: &Project{ID: 42, FloorArea: floatPtr(120), ContingencyPercentage: 12.5},
		categories: testCategories(),
		subElements: map[uint]*CategoryRef{
			3: {ID: 1, Code: "1", Name: "Substructure"},
		},
		items: map[uint]*CatalogItem{
			7: {
				ID: 7, Description: "Piling", Unit: "m",
				MaterialUnitCost: 99.99, ManagementUnitCost: 7.77, ContractorUnitCost: 55.55,
				WasteFactor: 1.15, ContractorRequired: true, SubElementID: 3,
			},
		},
		lines: []LineItem{
			NewCatalogLine(1, 3.5, CatalogRef{CostItemID: 7}),
			NewCustomLine(2, 2, CustomFields{UnitRate: 123.45, CategoryID: 2}),
		},
	}
	svc := NewService(src)

	first, err := svc.CalculateProjectTotal(42)
	require.NoError(t, err)
	second, err := svc.CalculateProjectTotal(42)
	require.NoError(t, err)

	// Повторный вызов на тех же данных дает побитово тот же результат
	require.Equal(t, first, second)
}
