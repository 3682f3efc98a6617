package estimation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAgeBand(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{0, "0-10"},
		{9, "0-10"},
		{10, "10-20"},
		{19, "10-20"},
		{20, "20-30"},
		{29, "20-30"},
		{30, "30+"},
		{85, "30+"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ageBand(tt.age), "age %d", tt.age)
	}
}

func TestConditionBand(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{1, "1-2"},
		{2, "1-2"},
		{3, "3"},
		{4, "4-5"},
		{5, "4-5"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, conditionBand(tt.rating), "rating %d", tt.rating)
	}
}

func benchmarkSource() *fakeSource {
	return &fakeSource{
		project: &Project{
			ID:                    42,
			FloorArea:             floatPtr(100),
			ContingencyPercentage: 10,
			Region:                strPtr("london"),
			BuildingAge:           intPtr(25),
			ConditionRating:       intPtr(3),
		},
		categories: testCategories(),
		lines: []LineItem{
			NewCustomLine(1, 1, CustomFields{UnitRate: 1200, CategoryID: 1}),
		},
	}
}

func TestCompareToHistoricData(t *testing.T) {
	src := benchmarkSource()
	src.historic = []HistoricRecord{
		{CostPerArea: 10, SampleSize: 4},
		{CostPerArea: 15, SampleSize: 12}, // Наибольшая выборка - побеждает
		{CostPerArea: 20, SampleSize: 7},
	}
	svc := NewService(src)

	got := svc.CompareToHistoricData(42, 1)

	require.NotNil(t, got.EstimatedCostPerArea)
	require.InDelta(t, 12.0, *got.EstimatedCostPerArea, 1e-9) // 1200 / 100

	require.NotNil(t, got.HistoricCostPerArea)
	require.Equal(t, 15.0, *got.HistoricCostPerArea)

	require.NotNil(t, got.VariancePercent)
	require.InDelta(t, -20.0, *got.VariancePercent, 1e-9) // (12 - 15) / 15 × 100

	// Фильтры собраны из классификации проекта
	require.Len(t, src.historicCalls, 1)
	call := src.historicCalls[0]
	require.Equal(t, uint(1), call.categoryID)
	require.Equal(t, "london", *call.region)
	require.Equal(t, "20-30", *call.ageBand)
	require.Equal(t, "3", *call.conditionBand)
}

func TestCompareToHistoricDataBelowThreshold(t *testing.T) {
	src := benchmarkSource()
	src.historic = []HistoricRecord{
		{CostPerArea: 15, SampleSize: 2}, // Меньше порога в 3 объекта
	}
	svc := NewService(src)

	got := svc.CompareToHistoricData(42, 1)

	require.NotNil(t, got.EstimatedCostPerArea)
	require.Nil(t, got.HistoricCostPerArea)
	require.Nil(t, got.VariancePercent)
}

func TestCompareToHistoricDataMissingInputs(t *testing.T) {
	t.Run("нет площади", func(t *testing.T) {
		src := benchmarkSource()
		src.project.FloorArea = nil
		src.historic = []HistoricRecord{{CostPerArea: 15, SampleSize: 5}}
		svc := NewService(src)

		got := svc.CompareToHistoricData(42, 1)
		require.Nil(t, got.EstimatedCostPerArea)
		require.NotNil(t, got.HistoricCostPerArea)
		require.Nil(t, got.VariancePercent)
	})

	t.Run("нет строк по элементу", func(t *testing.T) {
		src := benchmarkSource()
		src.historic = []HistoricRecord{{CostPerArea: 15, SampleSize: 5}}
		svc := NewService(src)

		got := svc.CompareToHistoricData(42, 3) // Элемент без строк
		require.Nil(t, got.EstimatedCostPerArea)
		require.Nil(t, got.VariancePercent)
	})

	t.Run("нет исторических записей", func(t *testing.T) {
		src := benchmarkSource()
		svc := NewService(src)

		got := svc.CompareToHistoricData(42, 1)
		require.NotNil(t, got.EstimatedCostPerArea)
		require.Nil(t, got.HistoricCostPerArea)
		require.Nil(t, got.VariancePercent)
	})

	t.Run("проект не найден - не ошибка", func(t *testing.T) {
		svc := NewService(&fakeSource{})

		got := svc.CompareToHistoricData(404, 1)
		require.NotNil(t, got)
		require.Nil(t, got.EstimatedCostPerArea)
		require.Nil(t, got.HistoricCostPerArea)
		require.Nil(t, got.VariancePercent)
	})

	t.Run("классификация проекта пустая - фильтры не передаются", func(t *testing.T) {
		src := benchmarkSource()
		src.project.Region = nil
		src.project.BuildingAge = nil
		src.project.ConditionRating = nil
		src.historic = []HistoricRecord{{CostPerArea: 15, SampleSize: 5}}
		svc := NewService(src)

		svc.CompareToHistoricData(42, 1)

		require.Len(t, src.historicCalls, 1)
		call := src.historicCalls[0]
		require.Nil(t, call.region)
		require.Nil(t, call.ageBand)
		require.Nil(t, call.conditionBand)
	})
}
