package repository

import (
	"boq-backend/internal/app/ds"
	"time"
)

// Методы для документов проекта

func (r *Repository) CreateDocument(projectID uint, filename, label string, uploadedByID uint) (*ds.ProjectDocument, error) {
	document := ds.ProjectDocument{
		ProjectID:    projectID,
		Filename:     filename,
		Label:        label,
		UploadedByID: uploadedByID,
		CreatedAt:    time.Now(),
	}

	err := r.db.Create(&document).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *Repository) GetProjectDocuments(projectID uint) ([]ds.ProjectDocument, error) {
	var documents []ds.ProjectDocument
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&documents).Error
	return documents, err
}

func (r *Repository) GetDocumentByID(id uint) (*ds.ProjectDocument, error) {
	var document ds.ProjectDocument
	err := r.db.First(&document, id).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *Repository) DeleteDocument(id uint) error {
	return r.db.Delete(&ds.ProjectDocument{}, id).Error
}
