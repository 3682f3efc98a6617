package repository

import (
	"boq-backend/internal/app/ds"
	"database/sql"
	"errors"
)

// Методы для работы со справочником расценок

// CategoryWithSubElements - элемент затрат вместе с его суб-элементами
type CategoryWithSubElements struct {
	ID          uint
	Code        string
	Name        string
	SubElements []ds.SubElement
}

// Получить все элементы затрат с суб-элементами, в порядке кодов
func (r *Repository) GetCategories() ([]CategoryWithSubElements, error) {
	var categories []ds.CostCategory
	err := r.db.Order("code").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	var subElements []ds.SubElement
	err = r.db.Order("code").Find(&subElements).Error
	if err != nil {
		return nil, err
	}

	// Раскладываем суб-элементы по элементам
	byCategory := make(map[uint][]ds.SubElement)
	for _, se := range subElements {
		byCategory[se.CategoryID] = append(byCategory[se.CategoryID], se)
	}

	result := make([]CategoryWithSubElements, len(categories))
	for i, c := range categories {
		result[i] = CategoryWithSubElements{
			ID:          c.ID,
			Code:        c.Code,
			Name:        c.Name,
			SubElements: byCategory[c.ID],
		}
	}
	return result, nil
}

// Получить элемент затрат для суб-элемента (join через суб-элемент)
func (r *Repository) GetCategoryForSubElement(subElementID uint) (*ds.CostCategory, error) {
	// Используем курсор
	query := `SELECT c.id, c.code, c.name
	          FROM cost_categories c
	          JOIN sub_elements se ON se.category_id = c.id
	          WHERE se.id = $1`

	row := r.db.Raw(query, subElementID).Row()

	var category ds.CostCategory
	err := row.Scan(&category.ID, &category.Code, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Возвращаем nil, если записи нет
		}
		return nil, err
	}
	return &category, nil
}

// Получить расценки с фильтрацией по библиотеке, элементу затрат и поиском по описанию
func (r *Repository) GetCostItems(library string, categoryID uint, search string) ([]ds.CostItem, error) {
	query := r.db.Where("is_deleted = ?", false)

	if library != "" {
		query = query.Where("library = ?", library)
	}
	if categoryID > 0 {
		query = query.Where("sub_element_id IN (?)",
			r.db.Model(&ds.SubElement{}).Select("id").Where("category_id = ?", categoryID))
	}
	if search != "" {
		query = query.Where("description ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var items []ds.CostItem
	err := query.Order("code").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Получить расценку по ID
func (r *Repository) GetCostItemByID(id uint) (*ds.CostItem, error) {
	var item ds.CostItem
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Проверить существование расценки
func (r *Repository) CostItemExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.CostItem{}).Where("id = ? AND is_deleted = ?", id, false).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Создать пользовательскую расценку (библиотека custom)
func (r *Repository) CreateCostItem(item *ds.CostItem) error {
	item.Library = "custom"
	return r.db.Create(item).Error
}

// Обновить расценку (частичное обновление через указатели)
func (r *Repository) UpdateCostItem(id uint, description *string, materialCost, managementCost, contractorCost, wasteFactor *float64, contractorRequired *bool) error {
	updates := make(map[string]interface{})
	if description != nil {
		updates["description"] = *description
	}
	if materialCost != nil {
		updates["material_unit_cost"] = *materialCost
	}
	if managementCost != nil {
		updates["management_unit_cost"] = *managementCost
	}
	if contractorCost != nil {
		updates["contractor_unit_cost"] = *contractorCost
	}
	if wasteFactor != nil {
		updates["waste_factor"] = *wasteFactor
	}
	if contractorRequired != nil {
		updates["is_contractor_required"] = *contractorRequired
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.CostItem{}).Where("id = ?", id).Updates(updates).Error
}

// SQL операция для логического удаления расценки
func (r *Repository) DeleteCostItem(id uint) error {
	result := r.db.Exec("UPDATE cost_items SET is_deleted = true WHERE id = ? AND is_deleted = false", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("расценку нельзя удалить - неверный ID или уже удалена")
	}

	return nil
}
