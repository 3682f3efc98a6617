package ds

// 1. Таблица элементов затрат (верхний уровень иерархии BCIS)
type CostCategory struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"type:varchar(10);unique;not null"` // Код элемента, например "1" или "2.1"
	Name string `gorm:"type:varchar(100);not null"`
}

// 2. Таблица суб-элементов, каждый принадлежит ровно одному элементу
type SubElement struct {
	ID         uint   `gorm:"primaryKey"`
	Code       string `gorm:"type:varchar(10);not null"`
	Name       string `gorm:"type:varchar(100);not null"`
	CategoryID uint   `gorm:"not null;index"`

	Category CostCategory `gorm:"foreignKey:CategoryID"`
}

// 3. Таблица расценок - ТОЛЬКО справочная информация (BCIS, NRM2, Spons, custom)
// После первичной загрузки записи не изменяются
type CostItem struct {
	ID                   uint    `gorm:"primaryKey"`
	Code                 string  `gorm:"type:varchar(30);unique;not null"`
	Description          string  `gorm:"type:text;not null"`
	Unit                 string  `gorm:"type:varchar(10);not null"`    // m, m2, m3, nr, kg
	MaterialUnitCost     float64 `gorm:"type:decimal(12,2);not null"`  // Стоимость материалов за единицу
	ManagementUnitCost   float64 `gorm:"type:decimal(12,2);default:0"` // Накладные расходы за единицу
	ContractorUnitCost   float64 `gorm:"type:decimal(12,2);default:0"` // Стоимость подрядчика за единицу
	WasteFactor          float64 `gorm:"type:decimal(4,2);default:1.05"` // Коэффициент отходов 1.0-2.0
	IsContractorRequired bool    `gorm:"type:boolean;default:false;not null"`
	IsDeleted            bool    `gorm:"type:boolean;default:false;not null"`
	Library              string  `gorm:"type:varchar(20);not null"` // bcis, nrm2, spons, custom
	SubElementID         uint    `gorm:"not null;index"`

	SubElement SubElement `gorm:"foreignKey:SubElementID"`
}
