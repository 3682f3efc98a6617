package ds

import "time"

// 4. Таблица проектов (смет)
type Project struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	OwnerID   uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	IsDeleted bool      `gorm:"type:boolean;default:false;not null"`
	// Поля по предметной области
	FloorArea             *float64 `gorm:"type:decimal(12,2)"`           // Площадь в м2, nullable
	ContingencyPercentage float64  `gorm:"type:decimal(5,2);default:10"` // Процент на непредвиденные расходы
	Region                *string  `gorm:"type:varchar(50)"`             // Для сравнения с историческими данными
	BuildingAge           *int     `gorm:"type:int"`                     // Возраст здания в годах
	ConditionRating       *int     `gorm:"type:int"`                     // Оценка состояния 1-5

	Owner User `gorm:"foreignKey:OwnerID"`
}
