package handler

import (
	"net/http"
	"strconv"

	"boq-backend/internal/app/ds"
	"boq-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН СТРОКИ СМЕТЫ ============

// AddLineItem добавляет строку в смету проекта
// @Summary Добавление строки сметы
// @Description Добавляет строку со ссылкой на справочник либо произвольную строку (ровно один из вариантов)
// @Tags LineItems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param request body dto.AddLineItemRequest true "Данные строки"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items [post]
func (h *APIHandler) AddLineItem(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	var req dto.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	hasCatalog := req.CostItemID != nil
	hasCustom := req.CustomDescription != nil || req.CustomUnit != nil ||
		req.CustomUnitRate != nil || req.CustomCategoryID != nil

	// Строка задается ровно одним способом
	if hasCatalog == hasCustom {
		h.errorResponse(c, http.StatusBadRequest,
			"Укажите либо cost_item_id, либо произвольные поля строки, но не оба варианта")
		return
	}

	var line *ds.ProjectLineItem
	if hasCatalog {
		exists, err := h.Repository.CostItemExists(*req.CostItemID)
		if err != nil || !exists {
			h.errorResponse(c, http.StatusNotFound, "Расценка не найдена")
			return
		}

		line, err = h.Repository.AddCatalogLineItem(projectID, *req.CostItemID,
			req.Quantity, req.UnitCostOverride, req.Notes, userID)
		if err != nil {
			logrus.Error("Error adding line item: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка добавления строки")
			return
		}
	} else {
		// Для произвольной строки все четыре поля обязательны
		if req.CustomDescription == nil || req.CustomUnit == nil ||
			req.CustomUnitRate == nil || req.CustomCategoryID == nil {
			h.errorResponse(c, http.StatusBadRequest,
				"Для произвольной строки укажите описание, единицу измерения, ставку и элемент затрат")
			return
		}
		if req.UnitCostOverride != nil {
			h.errorResponse(c, http.StatusBadRequest,
				"Переопределение расценки применимо только к строкам из справочника")
			return
		}

		line, err = h.Repository.AddCustomLineItem(projectID, *req.CustomDescription,
			*req.CustomUnit, *req.CustomUnitRate, *req.CustomCategoryID,
			req.Quantity, req.Notes, userID)
		if err != nil {
			logrus.Error("Error adding custom line item: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка добавления строки")
			return
		}
	}

	resp, err := h.lineItemToDTO(*line)
	if err != nil {
		logrus.Error("Error building line item response: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка формирования ответа")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetLineItems получает активные строки сметы проекта
// @Summary Список строк сметы
// @Description Возвращает активные строки сметы проекта в порядке добавления
// @Tags LineItems
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {array} dto.LineItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items [get]
func (h *APIHandler) GetLineItems(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	lines, err := h.Repository.GetActiveLineItems(projectID)
	if err != nil {
		logrus.Error("Error getting line items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения строк")
		return
	}

	result := make([]dto.LineItemResponse, 0, len(lines))
	for _, line := range lines {
		resp, err := h.lineItemToDTO(line)
		if err != nil {
			logrus.Warnf("Skipping line item %d in response: %v", line.ID, err)
			continue
		}
		result = append(result, resp)
	}

	c.JSON(http.StatusOK, result)
}

// UpdateLineItem обновляет строку сметы
// @Summary Обновление строки сметы
// @Description Обновляет количество, переопределение расценки и заметки строки
// @Tags LineItems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param lineId path int true "ID строки"
// @Param request body dto.UpdateLineItemRequest true "Данные для обновления"
// @Success 200 {object} dto.LineItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items/{lineId} [put]
func (h *APIHandler) UpdateLineItem(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	line, ok := h.findProjectLine(c, projectID)
	if !ok {
		return
	}

	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	// Переопределение расценки применимо только к строкам из справочника
	if req.UnitCostOverride != nil && line.CostItemID == nil {
		h.errorResponse(c, http.StatusBadRequest,
			"Переопределение расценки применимо только к строкам из справочника")
		return
	}

	if err := h.Repository.UpdateLineItem(line.ID, req.Quantity, req.UnitCostOverride, req.Notes); err != nil {
		logrus.Error("Error updating line item: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления строки")
		return
	}

	updated, err := h.Repository.GetLineItemByID(line.ID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Строка не найдена")
		return
	}

	resp, err := h.lineItemToDTO(*updated)
	if err != nil {
		logrus.Error("Error building line item response: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка формирования ответа")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteLineItem деактивирует строку сметы
// @Summary Удаление строки сметы
// @Description Деактивирует строку; запись сохраняется для аудита и в расчет не входит
// @Tags LineItems
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param lineId path int true "ID строки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items/{lineId} [delete]
func (h *APIHandler) DeleteLineItem(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	line, ok := h.findProjectLine(c, projectID)
	if !ok {
		return
	}

	if err := h.Repository.DeactivateLineItem(line.ID); err != nil {
		logrus.Error("Error deactivating line item: ", err)
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Строка успешно удалена", nil)
}

// ============ КОМПОНЕНТЫ СТРОКИ ============

// AddComponent добавляет компонент к строке сметы
// @Summary Добавление компонента строки
// @Description Добавляет компонент (материалы/труд/техника) к строке для детального разбора
// @Tags Components
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param lineId path int true "ID строки"
// @Param request body dto.AddComponentRequest true "Данные компонента"
// @Success 201 {object} dto.ComponentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items/{lineId}/components [post]
func (h *APIHandler) AddComponent(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	line, ok := h.findProjectLine(c, projectID)
	if !ok {
		return
	}

	var req dto.AddComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	wasteFactor := req.WasteFactor
	if wasteFactor == 0 {
		wasteFactor = 1.0
	}

	component, err := h.Repository.AddComponent(line.ID, req.ComponentType, req.UnitRate, wasteFactor)
	if err != nil {
		logrus.Error("Error adding component: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка добавления компонента")
		return
	}

	c.JSON(http.StatusCreated, componentToDTO(*component))
}

// GetComponents получает активные компоненты строки
// @Summary Список компонентов строки
// @Tags Components
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param lineId path int true "ID строки"
// @Success 200 {array} dto.ComponentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items/{lineId}/components [get]
func (h *APIHandler) GetComponents(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	line, ok := h.findProjectLine(c, projectID)
	if !ok {
		return
	}

	components, err := h.Repository.GetActiveComponents(line.ID)
	if err != nil {
		logrus.Error("Error getting components: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения компонентов")
		return
	}

	result := make([]dto.ComponentResponse, len(components))
	for i, comp := range components {
		result[i] = componentToDTO(comp)
	}
	c.JSON(http.StatusOK, result)
}

// UpdateComponent обновляет компонент строки
// @Summary Обновление компонента строки
// @Tags Components
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param lineId path int true "ID строки"
// @Param componentId path int true "ID компонента"
// @Param request body dto.UpdateComponentRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items/{lineId}/components/{componentId} [put]
func (h *APIHandler) UpdateComponent(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	if _, ok := h.findProjectLine(c, projectID); !ok {
		return
	}

	componentID, err := strconv.ParseUint(c.Param("componentId"), 10, 32)
	if err != nil || componentID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID компонента")
		return
	}

	var req dto.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := h.Repository.UpdateComponent(uint(componentID), req.UnitRate, req.WasteFactor); err != nil {
		logrus.Error("Error updating component: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления компонента")
		return
	}

	h.successResponse(c, http.StatusOK, "Компонент успешно обновлен", nil)
}

// DeleteComponent деактивирует компонент строки
// @Summary Удаление компонента строки
// @Tags Components
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param lineId path int true "ID строки"
// @Param componentId path int true "ID компонента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/line-items/{lineId}/components/{componentId} [delete]
func (h *APIHandler) DeleteComponent(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	if _, ok := h.findProjectLine(c, projectID); !ok {
		return
	}

	componentID, err := strconv.ParseUint(c.Param("componentId"), 10, 32)
	if err != nil || componentID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID компонента")
		return
	}

	if err := h.Repository.DeactivateComponent(uint(componentID)); err != nil {
		logrus.Error("Error deactivating component: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления компонента")
		return
	}

	h.successResponse(c, http.StatusOK, "Компонент успешно удален", nil)
}

// findProjectLine разбирает ID строки из пути и проверяет принадлежность проекту
func (h *APIHandler) findProjectLine(c *gin.Context, projectID uint) (*ds.ProjectLineItem, bool) {
	lineID, err := strconv.ParseUint(c.Param("lineId"), 10, 32)
	if err != nil || lineID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID строки")
		return nil, false
	}

	line, err := h.Repository.GetLineItemByID(uint(lineID))
	if err != nil || line.ProjectID != projectID {
		h.errorResponse(c, http.StatusNotFound, "Строка не найдена")
		return nil, false
	}
	return line, true
}

// lineItemToDTO собирает ответ по строке; для строк из справочника
// описание и единица берутся из расценки
func (h *APIHandler) lineItemToDTO(line ds.ProjectLineItem) (dto.LineItemResponse, error) {
	resp := dto.LineItemResponse{
		ID:               line.ID,
		ProjectID:        line.ProjectID,
		CostItemID:       line.CostItemID,
		Quantity:         line.Quantity,
		UnitCostOverride: line.UnitCostOverride,
		Notes:            line.Notes,
		IsActive:         line.IsActive,
	}

	if line.CostItemID != nil {
		item, err := h.Repository.GetCostItemByID(*line.CostItemID)
		if err != nil {
			return resp, err
		}
		resp.Description = item.Description
		resp.Unit = item.Unit
	} else {
		if line.CustomDescription != nil {
			resp.Description = *line.CustomDescription
		}
		if line.CustomUnit != nil {
			resp.Unit = *line.CustomUnit
		}
	}
	return resp, nil
}

func componentToDTO(comp ds.CostComponent) dto.ComponentResponse {
	return dto.ComponentResponse{
		ID:            comp.ID,
		ComponentType: comp.ComponentType,
		UnitRate:      comp.UnitRate,
		WasteFactor:   comp.WasteFactor,
	}
}
