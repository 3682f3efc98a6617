package handler

import (
	"io"
	"net/http"
	"strconv"

	"boq-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ДОКУМЕНТЫ ПРОЕКТА ============

const maxDocumentSize = 20 << 20 // 20 МБ

// UploadDocument загружает документ проекта
// @Summary Загрузка документа
// @Description Загружает документ (чертеж, фото) в MinIO и привязывает его к проекту
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param file formData file true "Файл документа"
// @Param label formData string false "Подпись документа"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{id}/documents [post]
func (h *APIHandler) UploadDocument(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не передан")
		return
	}

	if fileHeader.Size > maxDocumentSize {
		h.errorResponse(c, http.StatusBadRequest, "Файл слишком большой (максимум 20 МБ)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Не удалось открыть файл")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Не удалось прочитать файл")
		return
	}

	filename, err := h.MinIOClient.UploadFile(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading file to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки файла")
		return
	}

	label := c.PostForm("label")
	if label == "" {
		label = fileHeader.Filename
	}

	document, err := h.Repository.CreateDocument(projectID, filename, label, userID)
	if err != nil {
		logrus.Error("Error creating document record: ", err)
		// Файл уже в MinIO, убираем его чтобы не копить сирот
		if delErr := h.MinIOClient.DeleteFile(filename); delErr != nil {
			logrus.Error("Error deleting orphan file: ", delErr)
		}
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения документа")
		return
	}

	url, err := h.MinIOClient.GetFileURL(filename)
	if err != nil {
		logrus.Warn("Error generating file URL: ", err)
	}

	c.JSON(http.StatusCreated, dto.DocumentResponse{
		ID:        document.ID,
		Label:     document.Label,
		URL:       url,
		CreatedAt: document.CreatedAt,
	})
}

// GetDocuments получает документы проекта
// @Summary Список документов проекта
// @Description Возвращает документы проекта с временными ссылками на файлы
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {array} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/projects/{id}/documents [get]
func (h *APIHandler) GetDocuments(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	documents, err := h.Repository.GetProjectDocuments(projectID)
	if err != nil {
		logrus.Error("Error getting documents: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения документов")
		return
	}

	result := make([]dto.DocumentResponse, len(documents))
	for i, doc := range documents {
		url, err := h.MinIOClient.GetFileURL(doc.Filename)
		if err != nil {
			logrus.Warnf("Error generating URL for document %d: %v", doc.ID, err)
		}
		result[i] = dto.DocumentResponse{
			ID:        doc.ID,
			Label:     doc.Label,
			URL:       url,
			CreatedAt: doc.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, result)
}

// DeleteDocument удаляет документ проекта
// @Summary Удаление документа
// @Description Удаляет документ из MinIO и его запись в базе
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param docId path int true "ID документа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projects/{id}/documents/{docId} [delete]
func (h *APIHandler) DeleteDocument(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	if !h.canAccessProject(c, projectID) {
		return
	}

	docID, err := strconv.ParseUint(c.Param("docId"), 10, 32)
	if err != nil || docID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID документа")
		return
	}

	document, err := h.Repository.GetDocumentByID(uint(docID))
	if err != nil || document.ProjectID != projectID {
		h.errorResponse(c, http.StatusNotFound, "Документ не найден")
		return
	}

	if err := h.MinIOClient.DeleteFile(document.Filename); err != nil {
		logrus.Error("Error deleting file from MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления файла")
		return
	}

	if err := h.Repository.DeleteDocument(document.ID); err != nil {
		logrus.Error("Error deleting document record: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления документа")
		return
	}

	h.successResponse(c, http.StatusOK, "Документ успешно удален", nil)
}
