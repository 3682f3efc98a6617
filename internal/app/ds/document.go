package ds

import "time"

// 8. Таблица документов проекта (чертежи, фото) - файлы лежат в MinIO
type ProjectDocument struct {
	ID           uint      `gorm:"primaryKey"`
	ProjectID    uint      `gorm:"not null;index"`
	Filename     string    `gorm:"type:varchar(255);not null"` // Имя объекта в MinIO
	Label        string    `gorm:"type:varchar(150)"`
	UploadedByID uint      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Project    Project `gorm:"foreignKey:ProjectID"`
	UploadedBy User    `gorm:"foreignKey:UploadedByID"`
}
