package estimation

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Service - ядро расчета сметы. Не хранит состояния между вызовами,
// весь доступ к данным через DataSource
type Service struct {
	src DataSource
}

func NewService(src DataSource) *Service {
	return &Service{src: src}
}

// CalculateLineItems рассчитывает стоимость всех активных строк проекта.
// Строки с потерянной ссылкой на справочник исключаются из результата
// и возвращаются как предупреждения, расчет остальных строк продолжается
func (s *Service) CalculateLineItems(projectID uint) ([]LineItemCalculation, []IntegrityWarning, error) {
	lines, err := s.src.GetActiveLineItems(projectID)
	if err != nil {
		return nil, nil, err
	}

	calcs := make([]LineItemCalculation, 0, len(lines))
	warnings := make([]IntegrityWarning, 0)

	for _, line := range lines {
		normalized, warn, err := s.resolveLine(line)
		if err != nil {
			return nil, nil, err
		}
		if warn != nil {
			logrus.Warnf("line item %d references missing cost item %d, excluded from totals",
				warn.LineItemID, warn.CostItemID)
			warnings = append(warnings, *warn)
			continue
		}

		costs := computeCosts(normalized)
		calcs = append(calcs, LineItemCalculation{
			LineItemID:      normalized.LineItemID,
			Description:     normalized.Description,
			Quantity:        normalized.Quantity,
			Unit:            normalized.Unit,
			CategoryID:      normalized.CategoryID,
			MaterialTotal:   costs.MaterialTotal,
			ManagementTotal: costs.ManagementTotal,
			ContractorTotal: costs.ContractorTotal,
			LineTotal:       costs.LineTotal,
		})
	}

	return calcs, warnings, nil
}

// resolveLine - единая точка нормализации строки и определения элемента затрат.
// Для строк из справочника элемент определяется через суб-элемент расценки,
// для произвольных берется напрямую из строки
func (s *Service) resolveLine(line LineItem) (NormalizedLine, *IntegrityWarning, error) {
	if line.Kind == KindCustom {
		return resolveCustomLine(line), nil, nil
	}

	ref, ok := line.Catalog()
	if !ok {
		// Строка без варианта - битые данные, исключаем как и потерянную ссылку
		return NormalizedLine{}, &IntegrityWarning{
			LineItemID: line.ID,
			Message:    "строка не содержит ни ссылки на справочник, ни произвольных полей",
		}, nil
	}

	item, err := s.src.GetCostItem(ref.CostItemID)
	if err != nil {
		if errors.Is(err, ErrCostItemNotFound) {
			return NormalizedLine{}, &IntegrityWarning{
				LineItemID: line.ID,
				CostItemID: ref.CostItemID,
				Message:    "расценка удалена или отсутствует в справочнике",
			}, nil
		}
		return NormalizedLine{}, nil, err
	}

	categoryID := uint(0)
	category, err := s.src.GetCategoryForSubElement(item.SubElementID)
	if err == nil && category != nil {
		categoryID = category.ID
	}

	return resolveCatalogLine(line, *item, categoryID), nil, nil
}
