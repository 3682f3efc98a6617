package estimation

// Тип строки сметы: из справочника или произвольная
type LineKind int

const (
	KindCatalog LineKind = iota
	KindCustom
)

// Ссылка на расценку из справочника
type CatalogRef struct {
	CostItemID       uint
	UnitCostOverride *float64 // Заменяет только материальную стоимость
}

// Поля произвольной строки (вводятся вручную)
type CustomFields struct {
	Description string
	Unit        string
	UnitRate    float64
	CategoryID  uint
}

// LineItem - строка сметы. Ровно одно из двух: ссылка на справочник
// или произвольные поля. Создается только через NewCatalogLine / NewCustomLine,
// чтобы исключить невалидные комбинации на уровне типа.
type LineItem struct {
	ID       uint
	Kind     LineKind
	Quantity float64 // Всегда > 0, проверяется до вызова ядра

	catalog *CatalogRef
	custom  *CustomFields
}

// NewCatalogLine создает строку со ссылкой на расценку справочника
func NewCatalogLine(id uint, quantity float64, ref CatalogRef) LineItem {
	return LineItem{
		ID:       id,
		Kind:     KindCatalog,
		Quantity: quantity,
		catalog:  &ref,
	}
}

// NewCustomLine создает произвольную строку
func NewCustomLine(id uint, quantity float64, fields CustomFields) LineItem {
	return LineItem{
		ID:       id,
		Kind:     KindCustom,
		Quantity: quantity,
		custom:   &fields,
	}
}

// Catalog возвращает ссылку на справочник для строк KindCatalog
func (l LineItem) Catalog() (CatalogRef, bool) {
	if l.Kind != KindCatalog || l.catalog == nil {
		return CatalogRef{}, false
	}
	return *l.catalog, true
}

// Custom возвращает произвольные поля для строк KindCustom
func (l LineItem) Custom() (CustomFields, bool) {
	if l.Kind != KindCustom || l.custom == nil {
		return CustomFields{}, false
	}
	return *l.custom, true
}

// CatalogItem - снимок расценки из справочника
type CatalogItem struct {
	ID                 uint
	Code               string
	Description        string
	Unit               string
	MaterialUnitCost   float64
	ManagementUnitCost float64
	ContractorUnitCost float64
	WasteFactor        float64 // 1.0-2.0
	ContractorRequired bool
	SubElementID       uint
}

// Project - настройки проекта, влияющие на расчет
type Project struct {
	ID                    uint
	FloorArea             *float64
	ContingencyPercentage float64
	Region                *string
	BuildingAge           *int
	ConditionRating       *int
}

// CategoryRef - элемент затрат (узел иерархии)
type CategoryRef struct {
	ID   uint
	Code string
	Name string
}

// HistoricRecord - историческая запись стоимости за м2
type HistoricRecord struct {
	CostPerArea float64
	SampleSize  int
}

// Component - компонент строки (материалы/труд/техника)
type Component struct {
	Type        string
	UnitRate    float64
	WasteFactor float64
}

// NormalizedLine - нормализованная строка после резолвера,
// единственный вход калькулятора
type NormalizedLine struct {
	LineItemID         uint
	Description        string
	Quantity           float64
	Unit               string
	MaterialUnitCost   float64 // С учетом override
	ManagementUnitCost float64
	ContractorUnitCost float64
	WasteFactor        float64
	ContractorRequired bool
	CategoryID         uint
}

// LineCosts - результат калькулятора для одной строки
type LineCosts struct {
	MaterialTotal   float64
	ManagementTotal float64
	ContractorTotal float64
	LineTotal       float64
}

// LineItemCalculation - рассчитанная строка сметы
type LineItemCalculation struct {
	LineItemID      uint    `json:"line_item_id"`
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	CategoryID      uint    `json:"category_id"`
	MaterialTotal   float64 `json:"material_total"`
	ManagementTotal float64 `json:"management_total"`
	ContractorTotal float64 `json:"contractor_total"`
	LineTotal       float64 `json:"line_total"`
}

// CategoryTotal - итог по одному элементу затрат
type CategoryTotal struct {
	CategoryID              uint                  `json:"category_id"`
	Code                    string                `json:"code"`
	Name                    string                `json:"name"`
	LineCount               int                   `json:"line_count"`
	LineItems               []LineItemCalculation `json:"line_items"`
	Subtotal                float64               `json:"subtotal"`
	ContractorItemsSubtotal float64               `json:"contractor_items_subtotal"`
}

// ProjectEstimateTotal - итог по проекту
type ProjectEstimateTotal struct {
	Subtotal               float64  `json:"subtotal"`
	ContingencyPercentage  float64  `json:"contingency_percentage"`
	ContingencyAmount      float64  `json:"contingency_amount"`
	GrandTotal             float64  `json:"grand_total"`
	CostPerArea            *float64 `json:"cost_per_area"` // null если площадь не задана
	ContractorCostTotal    float64  `json:"contractor_cost_total"`
	NonContractorCostTotal float64  `json:"non_contractor_cost_total"`
}

// BenchmarkComparison - сравнение с историческими данными.
// Любое отсутствующее значение дает null в зависимых полях, это не ошибка
type BenchmarkComparison struct {
	EstimatedCostPerArea *float64 `json:"estimated_cost_per_area"`
	HistoricCostPerArea  *float64 `json:"historic_cost_per_area"`
	VariancePercent      *float64 `json:"variance_percent"`
}

// ComponentBreakdown - детализация строки по компонентам (альтернативный расчет)
type ComponentBreakdown struct {
	LineItemID     uint              `json:"line_item_id"`
	Components     []ComponentDetail `json:"components"`
	ComponentTotal float64           `json:"component_total"`
	CatalogTotal   float64           `json:"catalog_total"` // Итог по основной формуле, для сравнения
}

// ComponentDetail - одна компонентная позиция детализации
type ComponentDetail struct {
	Type        string  `json:"type"`
	UnitRate    float64 `json:"unit_rate"`
	WasteFactor float64 `json:"waste_factor"`
	Total       float64 `json:"total"` // quantity × rate × waste factor
}

// IntegrityWarning - строка ссылается на отсутствующую расценку.
// Строка исключается из итогов, расчет остальных продолжается
type IntegrityWarning struct {
	LineItemID uint   `json:"line_item_id"`
	CostItemID uint   `json:"cost_item_id"`
	Message    string `json:"message"`
}

// DataSource - доступ к данным для ядра расчета.
// Внедряется снаружи, ядро не знает про БД
type DataSource interface {
	GetProject(id uint) (*Project, error)
	GetActiveLineItems(projectID uint) ([]LineItem, error)
	GetCostItem(id uint) (*CatalogItem, error)
	GetCategoryForSubElement(subElementID uint) (*CategoryRef, error)
	GetCategories() ([]CategoryRef, error)
	QueryHistoric(categoryID uint, region, ageBand, conditionBand *string) ([]HistoricRecord, error)
	GetActiveComponents(lineItemID uint) ([]Component, error)
}
