package estimation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCosts(t *testing.T) {
	tests := []struct {
		name string
		line NormalizedLine

		wantMaterial   float64
		wantManagement float64
		wantContractor float64
		wantLineTotal  float64
	}{
		{
			name: "расценка с подрядчиком",
			line: NormalizedLine{
				Quantity:           2,
				MaterialUnitCost:   100,
				ManagementUnitCost: 10,
				ContractorUnitCost: 50,
				WasteFactor:        1.05,
				ContractorRequired: true,
			},
			wantMaterial:   210.0,
			wantManagement: 20,
			wantContractor: 100,
			wantLineTotal:  330,
		},
		{
			name: "та же расценка без подрядчика",
			line: NormalizedLine{
				Quantity:           2,
				MaterialUnitCost:   100,
				ManagementUnitCost: 10,
				ContractorUnitCost: 50,
				WasteFactor:        1.05,
				ContractorRequired: false,
			},
			wantMaterial:   210.0,
			wantManagement: 20,
			wantContractor: 0,
			wantLineTotal:  230,
		},
		{
			name: "произвольная строка",
			line: NormalizedLine{
				Quantity:         3,
				MaterialUnitCost: 75,
				WasteFactor:      1.0,
			},
			wantMaterial:   225,
			wantManagement: 0,
			wantContractor: 0,
			wantLineTotal:  225,
		},
		{
			name: "ставка подрядчика игнорируется без признака",
			line: NormalizedLine{
				Quantity:           4,
				MaterialUnitCost:   12.5,
				ContractorUnitCost: 999,
				WasteFactor:        1.0,
			},
			wantMaterial:   50,
			wantManagement: 0,
			wantContractor: 0,
			wantLineTotal:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeCosts(tt.line)

			require.InDelta(t, tt.wantMaterial, got.MaterialTotal, 1e-9)
			require.InDelta(t, tt.wantManagement, got.ManagementTotal, 1e-9)
			require.InDelta(t, tt.wantContractor, got.ContractorTotal, 1e-9)
			require.InDelta(t, tt.wantLineTotal, got.LineTotal, 1e-9)

			// Сумма составляющих равна итогу строки побитово
			require.Equal(t, got.MaterialTotal+got.ManagementTotal+got.ContractorTotal, got.LineTotal)
		})
	}
}

func TestComputeCostsContractorGating(t *testing.T) {
	// Для любой строки без признака подрядчика contractor_total строго ноль
	rates := []float64{0, 1, 17.3, 250, 99999.99}
	for _, rate := range rates {
		got := computeCosts(NormalizedLine{
			Quantity:           5,
			MaterialUnitCost:   10,
			ContractorUnitCost: rate,
			WasteFactor:        1.1,
			ContractorRequired: false,
		})
		require.Zero(t, got.ContractorTotal)
	}
}
