package handler

import (
	"net/http"
	"strconv"

	"boq-backend/internal/app/ds"
	"boq-backend/internal/app/dto"
	"boq-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПРОЕКТЫ ============

// CreateProject создает новый проект
// @Summary Создание проекта
// @Description Создает новый проект сметы для текущего пользователя
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Данные проекта"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects [post]
func (h *APIHandler) CreateProject(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	contingency := 10.0 // Резерв по умолчанию
	if req.ContingencyPercentage != nil {
		contingency = *req.ContingencyPercentage
	}

	project, err := h.Repository.CreateProject(req.Name, userID, req.FloorArea,
		contingency, req.Region, req.BuildingAge, req.ConditionRating)
	if err != nil {
		logrus.Error("Error creating project: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания проекта")
		return
	}

	c.JSON(http.StatusCreated, projectToDTO(*project))
}

// GetProjects получает список проектов
// @Summary Список проектов
// @Description Возвращает проекты пользователя; сюрвейеры и администраторы видят все проекты
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProjectListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects [get]
func (h *APIHandler) GetProjects(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	var projects []ds.Project
	if userRole == role.Surveyor || userRole == role.Admin {
		projects, err = h.Repository.GetAllProjects()
	} else {
		projects, err = h.Repository.GetProjectsForUser(userID)
	}
	if err != nil {
		logrus.Error("Error getting projects: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения проектов")
		return
	}

	dtoProjects := make([]dto.ProjectResponse, len(projects))
	for i, p := range projects {
		dtoProjects[i] = projectToDTO(p)
	}

	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Projects: dtoProjects,
		Total:    len(dtoProjects),
	})
}

// GetProject получает проект по ID
// @Summary Получение проекта
// @Description Возвращает проект по ID (доступен владельцу, сюрвейерам и администраторам)
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id} [get]
func (h *APIHandler) GetProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	project, err := h.Repository.GetProjectByID(projectID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Проект не найден")
		return
	}

	c.JSON(http.StatusOK, projectToDTO(*project))
}

// UpdateProject обновляет настройки проекта
// @Summary Обновление проекта
// @Description Частично обновляет настройки проекта
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param request body dto.UpdateProjectRequest true "Данные для обновления"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{id} [put]
func (h *APIHandler) UpdateProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	err := h.Repository.UpdateProject(projectID, req.Name, req.FloorArea,
		req.ContingencyPercentage, req.Region, req.BuildingAge, req.ConditionRating)
	if err != nil {
		logrus.Error("Error updating project: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления проекта")
		return
	}

	project, err := h.Repository.GetProjectByID(projectID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Проект не найден")
		return
	}

	c.JSON(http.StatusOK, projectToDTO(*project))
}

// DeleteProject удаляет проект
// @Summary Удаление проекта
// @Description Логически удаляет проект вместе с его сметой
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{id} [delete]
func (h *APIHandler) DeleteProject(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	if err := h.Repository.DeleteProject(projectID); err != nil {
		logrus.Error("Error deleting project: ", err)
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Проект успешно удален", nil)
}

// parseProjectID разбирает ID проекта из пути, при ошибке пишет ответ 400
func (h *APIHandler) parseProjectID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID проекта")
		return 0, false
	}
	return uint(id), true
}

func projectToDTO(p ds.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		OwnerID:               p.OwnerID,
		CreatedAt:             p.CreatedAt,
		FloorArea:             p.FloorArea,
		ContingencyPercentage: p.ContingencyPercentage,
		Region:                p.Region,
		BuildingAge:           p.BuildingAge,
		ConditionRating:       p.ConditionRating,
	}
}
