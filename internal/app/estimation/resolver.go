package estimation

// Резолвер приводит строку сметы к нормализованному виду,
// пригодному для калькулятора.
//
// Правила:
//   - строка из справочника: материальная стоимость = override если задан,
//     иначе из справочника; накладные, подрядчик, коэффициент отходов и
//     признак подрядчика берутся из расценки без изменений;
//   - произвольная строка: материальная стоимость = введенная ставка,
//     накладные и подрядчик = 0, коэффициент отходов = 1.0.

// resolveCatalogLine нормализует строку со ссылкой на справочник
func resolveCatalogLine(line LineItem, item CatalogItem, categoryID uint) NormalizedLine {
	ref, _ := line.Catalog()

	materialCost := item.MaterialUnitCost
	if ref.UnitCostOverride != nil {
		materialCost = *ref.UnitCostOverride
	}

	return NormalizedLine{
		LineItemID:         line.ID,
		Description:        item.Description,
		Quantity:           line.Quantity,
		Unit:               item.Unit,
		MaterialUnitCost:   materialCost,
		ManagementUnitCost: item.ManagementUnitCost,
		ContractorUnitCost: item.ContractorUnitCost,
		WasteFactor:        item.WasteFactor,
		ContractorRequired: item.ContractorRequired,
		CategoryID:         categoryID,
	}
}

// resolveCustomLine нормализует произвольную строку.
// Произвольные строки не несут накладных расходов и затрат подрядчика,
// отходы не начисляются
func resolveCustomLine(line LineItem) NormalizedLine {
	fields, _ := line.Custom()

	return NormalizedLine{
		LineItemID:         line.ID,
		Description:        fields.Description,
		Quantity:           line.Quantity,
		Unit:               fields.Unit,
		MaterialUnitCost:   fields.UnitRate,
		ManagementUnitCost: 0,
		ContractorUnitCost: 0,
		WasteFactor:        1.0,
		ContractorRequired: false,
		CategoryID:         fields.CategoryID,
	}
}
