package handler

import (
	"net/http"
	"strconv"

	"boq-backend/internal/app/ds"
	"boq-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН РАСЧЕТ СМЕТЫ ============

// GetEstimate рассчитывает смету проекта
// @Summary Расчет сметы проекта
// @Description Возвращает построчный расчет, итоги по элементам затрат и общий итог проекта
// @Tags Estimate
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{id}/estimate [get]
func (h *APIHandler) GetEstimate(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	calcs, warnings, err := h.Estimator.CalculateLineItems(projectID)
	if err != nil {
		logrus.Error("Error calculating line items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчета сметы")
		return
	}

	categoryTotals, err := h.Estimator.CalculateCategoryTotals(projectID, calcs)
	if err != nil {
		logrus.Error("Error calculating category totals: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчета итогов по элементам")
		return
	}

	total, err := h.Estimator.CalculateProjectTotal(projectID)
	if err != nil {
		logrus.Error("Error calculating project total: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчета итога проекта")
		return
	}

	c.JSON(http.StatusOK, dto.EstimateResponse{
		ProjectID:      projectID,
		LineItems:      calcs,
		CategoryTotals: categoryTotals,
		Total:          total,
		Warnings:       warnings,
	})
}

// GetBenchmark сравнивает смету с исторической базой
// @Summary Сравнение с исторической базой
// @Description Сравнивает расчетную стоимость на единицу площади по элементу затрат с историческими данными
// @Tags Estimate
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param categoryId path int true "ID элемента затрат"
// @Success 200 {object} estimation.BenchmarkComparison
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/projects/{id}/benchmark/{categoryId} [get]
func (h *APIHandler) GetBenchmark(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil || categoryID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID элемента затрат")
		return
	}

	// Сравнение не падает: при нехватке данных поля ответа остаются пустыми
	comparison := h.Estimator.CompareToHistoricData(projectID, uint(categoryID))
	c.JSON(http.StatusOK, comparison)
}

// GetComponentBreakdown рассчитывает детализацию строки по компонентам
// @Summary Детализация строки по компонентам
// @Description Возвращает альтернативный расчет строки по компонентам рядом с итогом по основной формуле
// @Tags Estimate
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param lineId path int true "ID строки"
// @Success 200 {object} estimation.ComponentBreakdown
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items/{lineId}/breakdown [get]
func (h *APIHandler) GetComponentBreakdown(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	lineID, err := strconv.ParseUint(c.Param("lineId"), 10, 32)
	if err != nil || lineID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID строки")
		return
	}

	breakdown, err := h.Estimator.CalculateComponentBreakdown(projectID, uint(lineID))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Строка не найдена")
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// ============ ИСТОРИЧЕСКАЯ БАЗА ============

// CreateHistoricCost добавляет запись в историческую базу
// @Summary Добавление исторической записи
// @Description Добавляет агрегированную историческую стоимость (сюрвейеры и администраторы)
// @Tags Historic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHistoricRequest true "Данные записи"
// @Success 201 {object} dto.HistoricResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/historic-costs [post]
func (h *APIHandler) CreateHistoricCost(c *gin.Context) {
	var req dto.CreateHistoricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	record := &ds.HistoricCost{
		CategoryID:      req.CategoryID,
		Region:          req.Region,
		BuildingAgeBand: req.BuildingAgeBand,
		ConditionBand:   req.ConditionBand,
		CostPerArea:     req.CostPerArea,
		SampleSize:      req.SampleSize,
	}

	if err := h.Repository.CreateHistoricCost(record); err != nil {
		logrus.Error("Error creating historic cost: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка добавления записи")
		return
	}

	c.JSON(http.StatusCreated, historicToDTO(*record))
}

// GetHistoricCosts получает историческую базу по элементу затрат
// @Summary Историческая база по элементу затрат
// @Tags Historic
// @Produce json
// @Security BearerAuth
// @Param categoryId path int true "ID элемента затрат"
// @Success 200 {array} dto.HistoricResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/historic-costs/{categoryId} [get]
func (h *APIHandler) GetHistoricCosts(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil || categoryID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID элемента затрат")
		return
	}

	records, err := h.Repository.GetHistoricForCategory(uint(categoryID))
	if err != nil {
		logrus.Error("Error getting historic costs: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения исторической базы")
		return
	}

	result := make([]dto.HistoricResponse, len(records))
	for i, rec := range records {
		result[i] = historicToDTO(rec)
	}
	c.JSON(http.StatusOK, result)
}

func historicToDTO(rec ds.HistoricCost) dto.HistoricResponse {
	return dto.HistoricResponse{
		ID:              rec.ID,
		CategoryID:      rec.CategoryID,
		Region:          rec.Region,
		BuildingAgeBand: rec.BuildingAgeBand,
		ConditionBand:   rec.ConditionBand,
		CostPerArea:     rec.CostPerArea,
		SampleSize:      rec.SampleSize,
	}
}
