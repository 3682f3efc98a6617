package ds

import "time"

// 5. Таблица строк сметы (проект-расценка)
// Строка ссылается ЛИБО на расценку из справочника (CostItemID),
// ЛИБО заполняется вручную (Custom* поля) - ровно одно из двух
type ProjectLineItem struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"not null;index"`
	// Вариант (а): ссылка на справочник
	CostItemID *uint `gorm:"index"`
	// Вариант (б): произвольная строка
	CustomDescription *string  `gorm:"type:text"`
	CustomUnit        *string  `gorm:"type:varchar(10)"`
	CustomUnitRate    *float64 `gorm:"type:decimal(12,2)"`
	CustomCategoryID  *uint

	Quantity         float64  `gorm:"type:decimal(12,3);not null"` // Всегда > 0
	UnitCostOverride *float64 `gorm:"type:decimal(12,2)"`          // Заменяет только материальную стоимость
	Notes            string   `gorm:"type:text"`
	IsActive         bool     `gorm:"type:boolean;default:true;not null"` // Логическое удаление
	CreatedByID      uint     `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Project   Project   `gorm:"foreignKey:ProjectID"`
	CostItem  *CostItem `gorm:"foreignKey:CostItemID"`
	CreatedBy User      `gorm:"foreignKey:CreatedByID"`
}

// 6. Таблица компонентов строки (альтернативная детализация: материалы/труд/техника)
// Не участвует в итогах по элементам, только детальный просмотр
type CostComponent struct {
	ID            uint    `gorm:"primaryKey"`
	LineItemID    uint    `gorm:"not null;index"`
	ComponentType string  `gorm:"type:varchar(20);not null"` // material, labor, plant
	UnitRate      float64 `gorm:"type:decimal(12,2);not null"`
	WasteFactor   float64 `gorm:"type:decimal(4,2);default:1.0"`
	IsActive      bool    `gorm:"type:boolean;default:true;not null"`

	LineItem ProjectLineItem `gorm:"foreignKey:LineItemID"`
}
