package repository

import (
	"boq-backend/internal/app/ds"
	"errors"
	"time"
)

// Методы для работы с проектами

// Создать проект
func (r *Repository) CreateProject(name string, ownerID uint, floorArea *float64, contingency float64, region *string, buildingAge, conditionRating *int) (*ds.Project, error) {
	project := ds.Project{
		Name:                  name,
		OwnerID:               ownerID,
		CreatedAt:             time.Now(),
		FloorArea:             floorArea,
		ContingencyPercentage: contingency,
		Region:                region,
		BuildingAge:           buildingAge,
		ConditionRating:       conditionRating,
	}

	err := r.db.Create(&project).Error
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Получить проект по ID (только если он не удален)
func (r *Repository) GetProjectByID(id uint) (*ds.Project, error) {
	var project ds.Project
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Получить проекты пользователя
func (r *Repository) GetProjectsForUser(ownerID uint) ([]ds.Project, error) {
	var projects []ds.Project
	err := r.db.Where("owner_id = ? AND is_deleted = ?", ownerID, false).
		Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Получить все проекты (для сюрвейеров и администраторов)
func (r *Repository) GetAllProjects() ([]ds.Project, error) {
	var projects []ds.Project
	err := r.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Обновить настройки проекта (частичное обновление через указатели)
func (r *Repository) UpdateProject(id uint, name *string, floorArea *float64, contingency *float64, region *string, buildingAge, conditionRating *int) error {
	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if floorArea != nil {
		updates["floor_area"] = *floorArea
	}
	if contingency != nil {
		updates["contingency_percentage"] = *contingency
	}
	if region != nil {
		updates["region"] = *region
	}
	if buildingAge != nil {
		updates["building_age"] = *buildingAge
	}
	if conditionRating != nil {
		updates["condition_rating"] = *conditionRating
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Project{}).Where("id = ? AND is_deleted = ?", id, false).Updates(updates).Error
}

// SQL операция для логического удаления проекта
func (r *Repository) DeleteProject(id uint) error {
	result := r.db.Exec("UPDATE projects SET is_deleted = true WHERE id = ? AND is_deleted = false", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("проект нельзя удалить - неверный ID или уже удален")
	}

	return nil
}
