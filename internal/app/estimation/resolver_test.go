package estimation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCatalogLine(t *testing.T) {
	item := CatalogItem{
		ID:                 7,
		Description:        "Brick wall 215mm",
		Unit:               "m2",
		MaterialUnitCost:   100,
		ManagementUnitCost: 10,
		ContractorUnitCost: 50,
		WasteFactor:        1.05,
		ContractorRequired: true,
		SubElementID:       3,
	}

	t.Run("без override", func(t *testing.T) {
		line := NewCatalogLine(1, 2, CatalogRef{CostItemID: 7})
		got := resolveCatalogLine(line, item, 4)

		require.Equal(t, NormalizedLine{
			LineItemID:         1,
			Description:        "Brick wall 215mm",
			Quantity:           2,
			Unit:               "m2",
			MaterialUnitCost:   100,
			ManagementUnitCost: 10,
			ContractorUnitCost: 50,
			WasteFactor:        1.05,
			ContractorRequired: true,
			CategoryID:         4,
		}, got)
	})

	t.Run("override заменяет только материальную стоимость", func(t *testing.T) {
		line := NewCatalogLine(1, 2, CatalogRef{CostItemID: 7, UnitCostOverride: floatPtr(80)})
		got := resolveCatalogLine(line, item, 4)

		require.Equal(t, 80.0, got.MaterialUnitCost)
		require.Equal(t, 10.0, got.ManagementUnitCost)
		require.Equal(t, 50.0, got.ContractorUnitCost)
		require.Equal(t, 1.05, got.WasteFactor)
		require.True(t, got.ContractorRequired)
	})
}

func TestResolveCustomLine(t *testing.T) {
	line := NewCustomLine(9, 3, CustomFields{
		Description: "Scaffolding hire",
		Unit:        "wk",
		UnitRate:    75,
		CategoryID:  12,
	})
	got := resolveCustomLine(line)

	// Произвольные строки: ни накладных, ни подрядчика, ни отходов
	require.Equal(t, NormalizedLine{
		LineItemID:       9,
		Description:      "Scaffolding hire",
		Quantity:         3,
		Unit:             "wk",
		MaterialUnitCost: 75,
		WasteFactor:      1.0,
		CategoryID:       12,
	}, got)
}

func TestLineItemVariant(t *testing.T) {
	catalog := NewCatalogLine(1, 2, CatalogRef{CostItemID: 7})
	custom := NewCustomLine(2, 3, CustomFields{UnitRate: 75, CategoryID: 1})

	_, ok := catalog.Custom()
	require.False(t, ok)
	_, ok = catalog.Catalog()
	require.True(t, ok)

	_, ok = custom.Catalog()
	require.False(t, ok)
	_, ok = custom.Custom()
	require.True(t, ok)
}
