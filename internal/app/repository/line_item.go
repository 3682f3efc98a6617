package repository

import (
	"boq-backend/internal/app/ds"
	"errors"
	"time"
)

// Методы для работы со строками сметы

// Добавить строку со ссылкой на справочник
func (r *Repository) AddCatalogLineItem(projectID, costItemID uint, quantity float64, override *float64, notes string, createdByID uint) (*ds.ProjectLineItem, error) {
	line := ds.ProjectLineItem{
		ProjectID:        projectID,
		CostItemID:       &costItemID,
		Quantity:         quantity,
		UnitCostOverride: override,
		Notes:            notes,
		IsActive:         true,
		CreatedByID:      createdByID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	err := r.db.Create(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Добавить произвольную строку
func (r *Repository) AddCustomLineItem(projectID uint, description, unit string, unitRate float64, categoryID uint, quantity float64, notes string, createdByID uint) (*ds.ProjectLineItem, error) {
	line := ds.ProjectLineItem{
		ProjectID:         projectID,
		CustomDescription: &description,
		CustomUnit:        &unit,
		CustomUnitRate:    &unitRate,
		CustomCategoryID:  &categoryID,
		Quantity:          quantity,
		Notes:             notes,
		IsActive:          true,
		CreatedByID:       createdByID,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	err := r.db.Create(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Получить строку по ID
func (r *Repository) GetLineItemByID(id uint) (*ds.ProjectLineItem, error) {
	var line ds.ProjectLineItem
	err := r.db.First(&line, id).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Получить активные строки проекта (неактивные хранятся для аудита)
func (r *Repository) GetActiveLineItems(projectID uint) ([]ds.ProjectLineItem, error) {
	var lines []ds.ProjectLineItem
	err := r.db.Where("project_id = ? AND is_active = ?", projectID, true).
		Order("id").Find(&lines).Error
	return lines, err
}

// Обновить строку: количество, override, заметки
func (r *Repository) UpdateLineItem(id uint, quantity *float64, override *float64, notes *string) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if quantity != nil {
		updates["quantity"] = *quantity
	}
	if override != nil {
		updates["unit_cost_override"] = *override
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	return r.db.Model(&ds.ProjectLineItem{}).Where("id = ? AND is_active = ?", id, true).Updates(updates).Error
}

// SQL операция для логического удаления строки (строка остается для аудита)
func (r *Repository) DeactivateLineItem(id uint) error {
	result := r.db.Exec("UPDATE project_line_items SET is_active = false, updated_at = NOW() WHERE id = ? AND is_active = true", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("строку нельзя удалить - неверный ID или уже удалена")
	}

	return nil
}

// Методы для компонентов строки (материалы/труд/техника)

// Добавить компонент к строке
func (r *Repository) AddComponent(lineItemID uint, componentType string, unitRate, wasteFactor float64) (*ds.CostComponent, error) {
	component := ds.CostComponent{
		LineItemID:    lineItemID,
		ComponentType: componentType,
		UnitRate:      unitRate,
		WasteFactor:   wasteFactor,
		IsActive:      true,
	}

	err := r.db.Create(&component).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// Получить активные компоненты строки
func (r *Repository) GetActiveComponents(lineItemID uint) ([]ds.CostComponent, error) {
	var components []ds.CostComponent
	err := r.db.Where("line_item_id = ? AND is_active = ?", lineItemID, true).
		Order("id").Find(&components).Error
	return components, err
}

// Обновить компонент
func (r *Repository) UpdateComponent(id uint, unitRate, wasteFactor *float64) error {
	updates := make(map[string]interface{})
	if unitRate != nil {
		updates["unit_rate"] = *unitRate
	}
	if wasteFactor != nil {
		updates["waste_factor"] = *wasteFactor
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.CostComponent{}).Where("id = ? AND is_active = ?", id, true).Updates(updates).Error
}

// Деактивировать компонент
func (r *Repository) DeactivateComponent(id uint) error {
	return r.db.Model(&ds.CostComponent{}).Where("id = ?", id).Update("is_active", false).Error
}
