package dto

import (
	"time"

	"boq-backend/internal/app/estimation"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Справочник расценок ============

type CostItemResponse struct {
	ID                   uint    `json:"id"`
	Code                 string  `json:"code"`
	Description          string  `json:"description"`
	Unit                 string  `json:"unit"`
	MaterialUnitCost     float64 `json:"material_unit_cost"`
	ManagementUnitCost   float64 `json:"management_unit_cost"`
	ContractorUnitCost   float64 `json:"contractor_unit_cost"`
	WasteFactor          float64 `json:"waste_factor"`
	IsContractorRequired bool    `json:"is_contractor_required"`
	Library              string  `json:"library"` // bcis, nrm2, spons, custom
	SubElementID         uint    `json:"sub_element_id"`
}

type CostItemListResponse struct {
	Items []CostItemResponse `json:"items"`
	Total int                `json:"total"`
}

type CreateCostItemRequest struct {
	Code                 string  `json:"code" binding:"required"`
	Description          string  `json:"description" binding:"required"`
	Unit                 string  `json:"unit" binding:"required"`
	MaterialUnitCost     float64 `json:"material_unit_cost" binding:"required,gte=0"`
	ManagementUnitCost   float64 `json:"management_unit_cost" binding:"gte=0"`
	ContractorUnitCost   float64 `json:"contractor_unit_cost" binding:"gte=0"`
	WasteFactor          float64 `json:"waste_factor" binding:"omitempty,gte=1.0,lte=2.0"`
	IsContractorRequired bool    `json:"is_contractor_required"`
	SubElementID         uint    `json:"sub_element_id" binding:"required"`
}

type UpdateCostItemRequest struct {
	Description          *string  `json:"description"`
	MaterialUnitCost     *float64 `json:"material_unit_cost" binding:"omitempty,gte=0"`
	ManagementUnitCost   *float64 `json:"management_unit_cost" binding:"omitempty,gte=0"`
	ContractorUnitCost   *float64 `json:"contractor_unit_cost" binding:"omitempty,gte=0"`
	WasteFactor          *float64 `json:"waste_factor" binding:"omitempty,gte=1.0,lte=2.0"`
	IsContractorRequired *bool    `json:"is_contractor_required"`
}

type SubElementResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID          uint                 `json:"id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	SubElements []SubElementResponse `json:"sub_elements"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// ============ Проекты ============

type CreateProjectRequest struct {
	Name                  string   `json:"name" binding:"required,max=150"`
	FloorArea             *float64 `json:"floor_area" binding:"omitempty,gt=0"`
	ContingencyPercentage *float64 `json:"contingency_percentage" binding:"omitempty,gte=0,lte=100"`
	Region                *string  `json:"region"`
	BuildingAge           *int     `json:"building_age" binding:"omitempty,gte=0"`
	ConditionRating       *int     `json:"condition_rating" binding:"omitempty,gte=1,lte=5"`
}

type UpdateProjectRequest struct {
	Name                  *string  `json:"name" binding:"omitempty,max=150"`
	FloorArea             *float64 `json:"floor_area" binding:"omitempty,gt=0"`
	ContingencyPercentage *float64 `json:"contingency_percentage" binding:"omitempty,gte=0,lte=100"`
	Region                *string  `json:"region"`
	BuildingAge           *int     `json:"building_age" binding:"omitempty,gte=0"`
	ConditionRating       *int     `json:"condition_rating" binding:"omitempty,gte=1,lte=5"`
}

type ProjectResponse struct {
	ID                    uint      `json:"id"`
	Name                  string    `json:"name"`
	OwnerID               uint      `json:"owner_id"`
	CreatedAt             time.Time `json:"created_at"`
	FloorArea             *float64  `json:"floor_area"`
	ContingencyPercentage float64   `json:"contingency_percentage"`
	Region                *string   `json:"region,omitempty"`
	BuildingAge           *int      `json:"building_age,omitempty"`
	ConditionRating       *int      `json:"condition_rating,omitempty"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

// ============ Строки сметы ============

// Ровно одно из двух: ссылка на расценку (cost_item_id) или полный набор
// произвольных полей - проверяется в обработчике
type AddLineItemRequest struct {
	CostItemID        *uint    `json:"cost_item_id"`
	CustomDescription *string  `json:"custom_description"`
	CustomUnit        *string  `json:"custom_unit"`
	CustomUnitRate    *float64 `json:"custom_unit_rate" binding:"omitempty,gte=0"`
	CustomCategoryID  *uint    `json:"custom_category_id"`
	Quantity          float64  `json:"quantity" binding:"required,gt=0"`
	UnitCostOverride  *float64 `json:"unit_cost_override" binding:"omitempty,gte=0"`
	Notes             string   `json:"notes"`
}

type UpdateLineItemRequest struct {
	Quantity         *float64 `json:"quantity" binding:"omitempty,gt=0"`
	UnitCostOverride *float64 `json:"unit_cost_override" binding:"omitempty,gte=0"`
	Notes            *string  `json:"notes"`
}

type LineItemResponse struct {
	ID               uint     `json:"id"`
	ProjectID        uint     `json:"project_id"`
	CostItemID       *uint    `json:"cost_item_id,omitempty"`
	Description      string   `json:"description"`
	Unit             string   `json:"unit"`
	Quantity         float64  `json:"quantity"`
	UnitCostOverride *float64 `json:"unit_cost_override,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	IsActive         bool     `json:"is_active"`
}

// ============ Компоненты строки ============

type AddComponentRequest struct {
	ComponentType string  `json:"component_type" binding:"required,oneof=material labor plant"`
	UnitRate      float64 `json:"unit_rate" binding:"required,gte=0"`
	WasteFactor   float64 `json:"waste_factor" binding:"omitempty,gte=1.0,lte=2.0"`
}

type UpdateComponentRequest struct {
	UnitRate    *float64 `json:"unit_rate" binding:"omitempty,gte=0"`
	WasteFactor *float64 `json:"waste_factor" binding:"omitempty,gte=1.0,lte=2.0"`
}

type ComponentResponse struct {
	ID            uint    `json:"id"`
	ComponentType string  `json:"component_type"`
	UnitRate      float64 `json:"unit_rate"`
	WasteFactor   float64 `json:"waste_factor"`
}

// ============ Расчет сметы ============

type EstimateResponse struct {
	ProjectID      uint                             `json:"project_id"`
	LineItems      []estimation.LineItemCalculation `json:"line_items"`
	CategoryTotals []estimation.CategoryTotal       `json:"category_totals"`
	Total          *estimation.ProjectEstimateTotal `json:"total"`
	Warnings       []estimation.IntegrityWarning    `json:"warnings,omitempty"`
}

// ============ Историческая база ============

type CreateHistoricRequest struct {
	CategoryID      uint    `json:"category_id" binding:"required"`
	Region          string  `json:"region" binding:"required"`
	BuildingAgeBand string  `json:"building_age_band" binding:"required,oneof=0-10 10-20 20-30 30+"`
	ConditionBand   string  `json:"condition_band" binding:"required,oneof=1-2 3 4-5"`
	CostPerArea     float64 `json:"cost_per_area" binding:"required,gt=0"`
	SampleSize      int     `json:"sample_size" binding:"required,gte=1"`
}

type HistoricResponse struct {
	ID              uint    `json:"id"`
	CategoryID      uint    `json:"category_id"`
	Region          string  `json:"region"`
	BuildingAgeBand string  `json:"building_age_band"`
	ConditionBand   string  `json:"condition_band"`
	CostPerArea     float64 `json:"cost_per_area"`
	SampleSize      int     `json:"sample_size"`
}

// ============ Документы проекта ============

type DocumentResponse struct {
	ID        uint      `json:"id"`
	Label     string    `json:"label"`
	URL       string    `json:"url"` // Временная ссылка на файл в MinIO
	CreatedAt time.Time `json:"created_at"`
}

// ============ Пользователи ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     int    `json:"role" binding:"omitempty,gte=0,lte=2"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
