package estimation

// Минимальный размер выборки, при котором историческая запись считается надежной
const minReliableSampleSize = 3

// ageBand переводит возраст здания в диапазон исторической базы
func ageBand(age int) string {
	switch {
	case age < 10:
		return "0-10"
	case age < 20:
		return "10-20"
	case age < 30:
		return "20-30"
	default:
		return "30+"
	}
}

// conditionBand переводит оценку состояния (1-5) в диапазон исторической базы
func conditionBand(rating int) string {
	switch {
	case rating <= 2:
		return "1-2"
	case rating == 3:
		return "3"
	default:
		return "4-5"
	}
}

// CompareToHistoricData сравнивает оценку за м2 по элементу затрат
// с историческими данными. Справочный расчет: любое отсутствующее значение
// (площадь, итог по элементу, историческая запись) дает null в зависимых полях,
// ошибки наружу не отдаются
func (s *Service) CompareToHistoricData(projectID, categoryID uint) *BenchmarkComparison {
	result := &BenchmarkComparison{}

	project, err := s.src.GetProject(projectID)
	if err != nil {
		return result
	}

	// Оценка за м2: итог по элементу / площадь
	if project.FloorArea != nil && *project.FloorArea > 0 {
		calcs, _, err := s.CalculateLineItems(projectID)
		if err == nil {
			categoryTotals, err := s.CalculateCategoryTotals(projectID, calcs)
			if err == nil {
				for _, ct := range categoryTotals {
					if ct.CategoryID == categoryID {
						v := ct.Subtotal / *project.FloorArea
						result.EstimatedCostPerArea = &v
						break
					}
				}
			}
		}
	}

	// Историческая стоимость: среди отфильтрованных записей побеждает
	// запись с наибольшей выборкой, выборки меньше порога отбрасываются
	var region, age, condition *string
	if project.Region != nil && *project.Region != "" {
		region = project.Region
	}
	if project.BuildingAge != nil {
		band := ageBand(*project.BuildingAge)
		age = &band
	}
	if project.ConditionRating != nil {
		band := conditionBand(*project.ConditionRating)
		condition = &band
	}

	records, err := s.src.QueryHistoric(categoryID, region, age, condition)
	if err == nil {
		best := -1
		for i, record := range records {
			if record.SampleSize < minReliableSampleSize {
				continue
			}
			if best == -1 || record.SampleSize > records[best].SampleSize {
				best = i
			}
		}
		if best >= 0 {
			v := records[best].CostPerArea
			result.HistoricCostPerArea = &v
		}
	}

	if result.EstimatedCostPerArea != nil && result.HistoricCostPerArea != nil &&
		*result.HistoricCostPerArea != 0 {
		v := (*result.EstimatedCostPerArea - *result.HistoricCostPerArea) /
			*result.HistoricCostPerArea * 100
		result.VariancePercent = &v
	}

	return result
}
