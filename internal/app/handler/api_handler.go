package handler

import (
	"fmt"
	"net/http"

	"boq-backend/internal/app/dto"
	"boq-backend/internal/app/estimation"
	"boq-backend/internal/app/repository"
	"boq-backend/internal/app/role"
	"boq-backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
	Estimator   *estimation.Service
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler, estimator *estimation.Service) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
		Estimator:   estimator,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Estimator, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// canAccessProject проверяет что проект существует и доступен пользователю:
// владельцу, сюрвейеру или администратору
func (h *APIHandler) canAccessProject(c *gin.Context, projectID uint) bool {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return false
	}

	project, err := h.Repository.GetProjectByID(projectID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Проект не найден")
		return false
	}

	if project.OwnerID != userID && userRole != role.Surveyor && userRole != role.Admin {
		h.errorResponse(c, http.StatusForbidden, "Нет доступа к проекту")
		return false
	}

	return true
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}
