package handler

import (
	"net/http"
	"strconv"

	"boq-backend/internal/app/ds"
	"boq-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН СПРАВОЧНИК ============

// GetCategories получает иерархию элементов затрат
// @Summary Список элементов затрат
// @Description Возвращает все элементы затрат с суб-элементами в порядке кодов
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/categories [get]
func (h *APIHandler) GetCategories(c *gin.Context) {
	categories, err := h.Repository.GetCategories()
	if err != nil {
		logrus.Error("Error getting categories: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения элементов затрат")
		return
	}

	dtoCategories := make([]dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		subElements := make([]dto.SubElementResponse, len(cat.SubElements))
		for j, se := range cat.SubElements {
			subElements[j] = dto.SubElementResponse{
				ID:   se.ID,
				Code: se.Code,
				Name: se.Name,
			}
		}
		dtoCategories[i] = dto.CategoryResponse{
			ID:          cat.ID,
			Code:        cat.Code,
			Name:        cat.Name,
			SubElements: subElements,
		}
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: dtoCategories,
		Total:      len(dtoCategories),
	})
}

// GetCostItems получает список расценок
// @Summary Список расценок
// @Description Возвращает расценки с фильтрацией по библиотеке, элементу затрат и поиском
// @Tags Catalog
// @Produce json
// @Param library query string false "Библиотека (bcis, nrm2, spons, custom)"
// @Param category_id query int false "ID элемента затрат"
// @Param query query string false "Поиск по коду или описанию"
// @Success 200 {object} dto.CostItemListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cost-items [get]
func (h *APIHandler) GetCostItems(c *gin.Context) {
	library := c.Query("library")
	search := c.Query("query")

	categoryID := uint(0)
	if idStr := c.Query("category_id"); idStr != "" {
		if parsed, err := strconv.ParseUint(idStr, 10, 32); err == nil {
			categoryID = uint(parsed)
		}
	}

	items, err := h.Repository.GetCostItems(library, categoryID, search)
	if err != nil {
		logrus.Error("Error getting cost items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения расценок")
		return
	}

	dtoItems := make([]dto.CostItemResponse, len(items))
	for i, item := range items {
		dtoItems[i] = costItemToDTO(item)
	}

	c.JSON(http.StatusOK, dto.CostItemListResponse{
		Items: dtoItems,
		Total: len(dtoItems),
	})
}

// GetCostItem получает одну расценку
// @Summary Получение расценки по ID
// @Description Возвращает детальную информацию о расценке
// @Tags Catalog
// @Produce json
// @Param id path int true "ID расценки"
// @Success 200 {object} dto.CostItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cost-items/{id} [get]
func (h *APIHandler) GetCostItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID расценки")
		return
	}

	item, err := h.Repository.GetCostItemByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Расценка не найдена")
		return
	}

	c.JSON(http.StatusOK, costItemToDTO(*item))
}

// CreateCostItem создает пользовательскую расценку
// @Summary Создание расценки
// @Description Создает пользовательскую расценку в библиотеке custom (только для администраторов)
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCostItemRequest true "Данные расценки"
// @Success 201 {object} dto.CostItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cost-items [post]
func (h *APIHandler) CreateCostItem(c *gin.Context) {
	var req dto.CreateCostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	wasteFactor := req.WasteFactor
	if wasteFactor == 0 {
		wasteFactor = 1.05 // По умолчанию
	}

	item := &ds.CostItem{
		Code:                 req.Code,
		Description:          req.Description,
		Unit:                 req.Unit,
		MaterialUnitCost:     req.MaterialUnitCost,
		ManagementUnitCost:   req.ManagementUnitCost,
		ContractorUnitCost:   req.ContractorUnitCost,
		WasteFactor:          wasteFactor,
		IsContractorRequired: req.IsContractorRequired,
		SubElementID:         req.SubElementID,
	}

	if err := h.Repository.CreateCostItem(item); err != nil {
		logrus.Error("Error creating cost item: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания расценки")
		return
	}

	c.JSON(http.StatusCreated, costItemToDTO(*item))
}

// UpdateCostItem обновляет расценку
// @Summary Обновление расценки
// @Description Обновляет данные расценки (только для администраторов)
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID расценки"
// @Param request body dto.UpdateCostItemRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cost-items/{id} [put]
func (h *APIHandler) UpdateCostItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID расценки")
		return
	}

	var req dto.UpdateCostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	// Проверяем существование расценки
	exists, err := h.Repository.CostItemExists(uint(id))
	if err != nil || !exists {
		h.errorResponse(c, http.StatusNotFound, "Расценка не найдена")
		return
	}

	err = h.Repository.UpdateCostItem(uint(id), req.Description,
		req.MaterialUnitCost, req.ManagementUnitCost, req.ContractorUnitCost,
		req.WasteFactor, req.IsContractorRequired)
	if err != nil {
		logrus.Error("Error updating cost item: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления расценки")
		return
	}

	h.successResponse(c, http.StatusOK, "Расценка успешно обновлена", nil)
}

// DeleteCostItem удаляет расценку
// @Summary Удаление расценки
// @Description Логически удаляет расценку (только для администраторов)
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID расценки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cost-items/{id} [delete]
func (h *APIHandler) DeleteCostItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID расценки")
		return
	}

	if err := h.Repository.DeleteCostItem(uint(id)); err != nil {
		logrus.Error("Error deleting cost item: ", err)
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Расценка успешно удалена", nil)
}

func costItemToDTO(item ds.CostItem) dto.CostItemResponse {
	return dto.CostItemResponse{
		ID:                   item.ID,
		Code:                 item.Code,
		Description:          item.Description,
		Unit:                 item.Unit,
		MaterialUnitCost:     item.MaterialUnitCost,
		ManagementUnitCost:   item.ManagementUnitCost,
		ContractorUnitCost:   item.ContractorUnitCost,
		WasteFactor:          item.WasteFactor,
		IsContractorRequired: item.IsContractorRequired,
		Library:              item.Library,
		SubElementID:         item.SubElementID,
	}
}
