package estimation

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// Строки с неизвестным элементом затрат собираются в отдельную группу,
// чтобы итоги всегда сходились с суммой активных строк
const (
	UnclassifiedCategoryID uint = 0
	unclassifiedCode            = "ZZ"
	unclassifiedName            = "Unclassified"
)

// CalculateCategoryTotals группирует рассчитанные строки по элементам затрат.
// Результат отсортирован по коду элемента по возрастанию; элементы без строк
// в вывод не попадают
func (s *Service) CalculateCategoryTotals(projectID uint, calcs []LineItemCalculation) ([]CategoryTotal, error) {
	categories, err := s.src.GetCategories()
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]CategoryRef, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	groups := make(map[uint]*CategoryTotal)
	for _, calc := range calcs {
		ref, known := byID[calc.CategoryID]
		if !known {
			ref = CategoryRef{ID: UnclassifiedCategoryID, Code: unclassifiedCode, Name: unclassifiedName}
		}

		group, exists := groups[ref.ID]
		if !exists {
			group = &CategoryTotal{
				CategoryID: ref.ID,
				Code:       ref.Code,
				Name:       ref.Name,
			}
			groups[ref.ID] = group
		}

		group.LineItems = append(group.LineItems, calc)
		group.LineCount++
		group.Subtotal += calc.LineTotal
		group.ContractorItemsSubtotal += calc.ContractorTotal
	}

	totals := make([]CategoryTotal, 0, len(groups))
	for _, group := range groups {
		totals = append(totals, *group)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Code < totals[j].Code
	})

	return totals, nil
}

// CalculateProjectTotal считает итог по проекту: сумма по элементам,
// непредвиденные расходы, стоимость за м2 и разделение на подрядные
// затраты и работы собственными силами
func (s *Service) CalculateProjectTotal(projectID uint) (*ProjectEstimateTotal, error) {
	project, err := s.src.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	calcs, _, err := s.CalculateLineItems(projectID)
	if err != nil {
		return nil, err
	}

	categoryTotals, err := s.CalculateCategoryTotals(projectID, calcs)
	if err != nil {
		return nil, err
	}

	subtotal := 0.0
	contractorTotal := 0.0
	for _, ct := range categoryTotals {
		subtotal += ct.Subtotal
		contractorTotal += ct.ContractorItemsSubtotal
	}

	contingencyAmount := subtotal * (project.ContingencyPercentage / 100)
	grandTotal := subtotal + contingencyAmount

	var costPerArea *float64
	if project.FloorArea != nil && *project.FloorArea > 0 {
		v := grandTotal / *project.FloorArea
		costPerArea = &v
	}

	nonContractorTotal := subtotal - contractorTotal

	// Перекрестная проверка: независимая сумма материалов и накладных
	// должна совпадать с долей без подрядчика
	independent := 0.0
	for _, c := range calcs {
		independent += c.MaterialTotal + c.ManagementTotal
	}
	if !approxEqual(independent, nonContractorTotal, 1e-6) {
		logrus.Warnf("project %d: non-contractor total mismatch: %.6f vs %.6f",
			projectID, nonContractorTotal, independent)
	}

	return &ProjectEstimateTotal{
		Subtotal:               subtotal,
		ContingencyPercentage:  project.ContingencyPercentage,
		ContingencyAmount:      contingencyAmount,
		GrandTotal:             grandTotal,
		CostPerArea:            costPerArea,
		ContractorCostTotal:    contractorTotal,
		NonContractorCostTotal: nonContractorTotal,
	}, nil
}

// approxEqual сравнивает с относительной погрешностью
func approxEqual(a, b, relTol float64) bool {
	diff := math.Abs(a - b)
	if diff == 0 {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= scale*relTol
}
