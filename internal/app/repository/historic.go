package repository

import (
	"boq-backend/internal/app/ds"
)

// Методы для исторической базы стоимости

// Создать историческую запись
func (r *Repository) CreateHistoricCost(record *ds.HistoricCost) error {
	return r.db.Create(record).Error
}

// Выбрать исторические записи по элементу затрат с необязательными фильтрами
// по региону, возрасту и состоянию здания
func (r *Repository) QueryHistoric(categoryID uint, region, ageBand, conditionBand *string) ([]ds.HistoricCost, error) {
	query := r.db.Where("category_id = ?", categoryID)

	if region != nil {
		query = query.Where("region = ?", *region)
	}
	if ageBand != nil {
		query = query.Where("building_age_band = ?", *ageBand)
	}
	if conditionBand != nil {
		query = query.Where("condition_band = ?", *conditionBand)
	}

	var records []ds.HistoricCost
	err := query.Order("sample_size DESC").Find(&records).Error
	return records, err
}

// Получить все записи по элементу (для сюрвейеров)
func (r *Repository) GetHistoricForCategory(categoryID uint) ([]ds.HistoricCost, error) {
	var records []ds.HistoricCost
	err := r.db.Where("category_id = ?", categoryID).Order("region, building_age_band").Find(&records).Error
	return records, err
}
