package estimation

// CalculateComponentBreakdown считает детализацию строки по компонентам
// (материалы/труд/техника): сумма quantity × rate × waste factor по активным
// компонентам. Это альтернативный, более подробный расчет - в итоги
// по элементам затрат он не попадает, только детальный просмотр
func (s *Service) CalculateComponentBreakdown(projectID, lineItemID uint) (*ComponentBreakdown, error) {
	lines, err := s.src.GetActiveLineItems(projectID)
	if err != nil {
		return nil, err
	}

	var target *LineItem
	for i := range lines {
		if lines[i].ID == lineItemID {
			target = &lines[i]
			break
		}
	}
	if target == nil {
		return nil, ErrLineItemNotFound
	}

	components, err := s.src.GetActiveComponents(lineItemID)
	if err != nil {
		return nil, err
	}

	breakdown := &ComponentBreakdown{
		LineItemID: lineItemID,
		Components: make([]ComponentDetail, 0, len(components)),
	}
	for _, c := range components {
		total := target.Quantity * c.UnitRate * c.WasteFactor
		breakdown.Components = append(breakdown.Components, ComponentDetail{
			Type:        c.Type,
			UnitRate:    c.UnitRate,
			WasteFactor: c.WasteFactor,
			Total:       total,
		})
		breakdown.ComponentTotal += total
	}

	// Итог по основной формуле для сравнения двух путей расчета
	normalized, warn, err := s.resolveLine(*target)
	if err != nil {
		return nil, err
	}
	if warn == nil {
		breakdown.CatalogTotal = computeCosts(normalized).LineTotal
	}

	return breakdown, nil
}
