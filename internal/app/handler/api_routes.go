package handler

import (
	"boq-backend/internal/app/middleware"
	"boq-backend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Справочник (Catalog) - публичный на чтение ============
	api.GET("/categories", h.GetCategories) // GET иерархия элементов затрат

	costItems := api.Group("/cost-items")
	{
		// Публичные эндпоинты (без авторизации)
		costItems.GET("", h.GetCostItems)    // GET список с фильтрацией
		costItems.GET("/:id", h.GetCostItem) // GET одна расценка

		// Только для администраторов (управление справочником)
		costItems.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateCostItem)       // POST создание
		costItems.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateCostItem)    // PUT изменение
		costItems.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteCostItem) // DELETE удаление
	}

	// ============ Проекты (Projects) - для авторизованных пользователей ============
	projects := api.Group("/projects")
	projects.Use(authMiddleware.WithAuthCheck(role.Estimator, role.Surveyor, role.Admin))
	{
		projects.POST("", h.CreateProject)       // POST создание
		projects.GET("", h.GetProjects)          // GET список
		projects.GET("/:id", h.GetProject)       // GET один проект
		projects.PUT("/:id", h.UpdateProject)    // PUT настройки
		projects.DELETE("/:id", h.DeleteProject) // DELETE удаление

		// Строки сметы
		projects.POST("/:id/line-items", h.AddLineItem)              // POST добавление строки
		projects.GET("/:id/line-items", h.GetLineItems)              // GET активные строки
		projects.PUT("/:id/line-items/:lineId", h.UpdateLineItem)    // PUT изменение
		projects.DELETE("/:id/line-items/:lineId", h.DeleteLineItem) // DELETE деактивация

		// Компоненты строки
		projects.POST("/:id/line-items/:lineId/components", h.AddComponent)
		projects.GET("/:id/line-items/:lineId/components", h.GetComponents)
		projects.PUT("/:id/line-items/:lineId/components/:componentId", h.UpdateComponent)
		projects.DELETE("/:id/line-items/:lineId/components/:componentId", h.DeleteComponent)

		// Расчет сметы
		projects.GET("/:id/estimate", h.GetEstimate)                              // GET полный расчет
		projects.GET("/:id/benchmark/:categoryId", h.GetBenchmark)                // GET сравнение с историей
		projects.GET("/:id/line-items/:lineId/breakdown", h.GetComponentBreakdown) // GET детализация строки

		// Документы проекта
		projects.POST("/:id/documents", h.UploadDocument)
		projects.GET("/:id/documents", h.GetDocuments)
		projects.DELETE("/:id/documents/:docId", h.DeleteDocument)
	}

	// ============ Историческая база (Historic) ============
	historic := api.Group("/historic-costs")
	{
		historic.GET("/:categoryId", authMiddleware.WithAuthCheck(role.Estimator, role.Surveyor, role.Admin), h.GetHistoricCosts)
		historic.POST("", authMiddleware.WithAuthCheck(role.Surveyor, role.Admin), h.CreateHistoricCost) // POST ведение базы сюрвейерами
	}

	// ============ Аутентификация (публичные эндпоинты) ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Estimator, role.Surveyor, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Estimator, role.Surveyor, role.Admin), h.AuthHandler.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Estimator, role.Surveyor, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
