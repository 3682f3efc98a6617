package ds

// 7. Таблица исторических данных о стоимости за м2
// Заполняется сюрвейерами по завершенным объектам
type HistoricCost struct {
	ID              uint    `gorm:"primaryKey"`
	CategoryID      uint    `gorm:"not null;index"`
	Region          string  `gorm:"type:varchar(50);not null"`
	BuildingAgeBand string  `gorm:"type:varchar(10);not null"` // 0-10, 10-20, 20-30, 30+
	ConditionBand   string  `gorm:"type:varchar(10);not null"` // 1-2, 3, 4-5
	CostPerArea     float64 `gorm:"type:decimal(12,2);not null"`
	SampleSize      int     `gorm:"type:int;not null"` // Количество объектов в выборке

	Category CostCategory `gorm:"foreignKey:CategoryID"`
}
