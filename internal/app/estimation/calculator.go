package estimation

// computeCosts - чистая функция расчета стоимости одной строки.
// Вход считается провалидированным: quantity > 0, ставки неотрицательные,
// коэффициент отходов в пределах 1.0-2.0.
//
// Формулы:
//   material_total   = материальная ставка × количество × коэффициент отходов
//   management_total = ставка накладных × количество
//   contractor_total = ставка подрядчика × количество (если подрядчик требуется, иначе 0)
//   line_total       = сумма трех составляющих
func computeCosts(n NormalizedLine) LineCosts {
	materialTotal := n.MaterialUnitCost * n.Quantity * n.WasteFactor
	managementTotal := n.ManagementUnitCost * n.Quantity

	contractorTotal := 0.0
	if n.ContractorRequired {
		contractorTotal = n.ContractorUnitCost * n.Quantity
	}

	return LineCosts{
		MaterialTotal:   materialTotal,
		ManagementTotal: managementTotal,
		ContractorTotal: contractorTotal,
		LineTotal:       materialTotal + managementTotal + contractorTotal,
	}
}
