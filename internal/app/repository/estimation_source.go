package repository

import (
	"boq-backend/internal/app/ds"
	"boq-backend/internal/app/estimation"
	"errors"

	"gorm.io/gorm"
)

// EstimationSource - адаптер репозитория под источник данных ядра расчета.
// Ядро работает со снимками, а не с моделями GORM
type EstimationSource struct {
	repo *Repository
}

func NewEstimationSource(repo *Repository) *EstimationSource {
	return &EstimationSource{repo: repo}
}

func (s *EstimationSource) GetProject(id uint) (*estimation.Project, error) {
	project, err := s.repo.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, estimation.ErrProjectNotFound
		}
		return nil, err
	}

	return &estimation.Project{
		ID:                    project.ID,
		FloorArea:             project.FloorArea,
		ContingencyPercentage: project.ContingencyPercentage,
		Region:                project.Region,
		BuildingAge:           project.BuildingAge,
		ConditionRating:       project.ConditionRating,
	}, nil
}

func (s *EstimationSource) GetActiveLineItems(projectID uint) ([]estimation.LineItem, error) {
	rows, err := s.repo.GetActiveLineItems(projectID)
	if err != nil {
		return nil, err
	}

	lines := make([]estimation.LineItem, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, convertLineItem(row))
	}
	return lines, nil
}

// convertLineItem переводит строку БД в вариантный тип ядра.
// Строка без ссылки и без произвольных полей станет строкой со ссылкой
// на несуществующую расценку - ядро отсеет ее с предупреждением
func convertLineItem(row ds.ProjectLineItem) estimation.LineItem {
	if row.CostItemID == nil && row.CustomUnitRate != nil && row.CustomCategoryID != nil {
		description := ""
		if row.CustomDescription != nil {
			description = *row.CustomDescription
		}
		unit := ""
		if row.CustomUnit != nil {
			unit = *row.CustomUnit
		}
		return estimation.NewCustomLine(row.ID, row.Quantity, estimation.CustomFields{
			Description: description,
			Unit:        unit,
			UnitRate:    *row.CustomUnitRate,
			CategoryID:  *row.CustomCategoryID,
		})
	}

	costItemID := uint(0)
	if row.CostItemID != nil {
		costItemID = *row.CostItemID
	}
	return estimation.NewCatalogLine(row.ID, row.Quantity, estimation.CatalogRef{
		CostItemID:       costItemID,
		UnitCostOverride: row.UnitCostOverride,
	})
}

func (s *EstimationSource) GetCostItem(id uint) (*estimation.CatalogItem, error) {
	item, err := s.repo.GetCostItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, estimation.ErrCostItemNotFound
		}
		return nil, err
	}

	return &estimation.CatalogItem{
		ID:                 item.ID,
		Code:               item.Code,
		Description:        item.Description,
		Unit:               item.Unit,
		MaterialUnitCost:   item.MaterialUnitCost,
		ManagementUnitCost: item.ManagementUnitCost,
		ContractorUnitCost: item.ContractorUnitCost,
		WasteFactor:        item.WasteFactor,
		ContractorRequired: item.IsContractorRequired,
		SubElementID:       item.SubElementID,
	}, nil
}

func (s *EstimationSource) GetCategoryForSubElement(subElementID uint) (*estimation.CategoryRef, error) {
	category, err := s.repo.GetCategoryForSubElement(subElementID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return &estimation.CategoryRef{
		ID:   category.ID,
		Code: category.Code,
		Name: category.Name,
	}, nil
}

func (s *EstimationSource) GetCategories() ([]estimation.CategoryRef, error) {
	categories, err := s.repo.GetCategories()
	if err != nil {
		return nil, err
	}

	refs := make([]estimation.CategoryRef, len(categories))
	for i, c := range categories {
		refs[i] = estimation.CategoryRef{ID: c.ID, Code: c.Code, Name: c.Name}
	}
	return refs, nil
}

func (s *EstimationSource) QueryHistoric(categoryID uint, region, ageBand, conditionBand *string) ([]estimation.HistoricRecord, error) {
	rows, err := s.repo.QueryHistoric(categoryID, region, ageBand, conditionBand)
	if err != nil {
		return nil, err
	}

	records := make([]estimation.HistoricRecord, len(rows))
	for i, row := range rows {
		records[i] = estimation.HistoricRecord{
			CostPerArea: row.CostPerArea,
			SampleSize:  row.SampleSize,
		}
	}
	return records, nil
}

func (s *EstimationSource) GetActiveComponents(lineItemID uint) ([]estimation.Component, error) {
	rows, err := s.repo.GetActiveComponents(lineItemID)
	if err != nil {
		return nil, err
	}

	components := make([]estimation.Component, len(rows))
	for i, row := range rows {
		components[i] = estimation.Component{
			Type:        row.ComponentType,
			UnitRate:    row.UnitRate,
			WasteFactor: row.WasteFactor,
		}
	}
	return components, nil
}
