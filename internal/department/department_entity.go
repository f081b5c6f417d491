package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_departments_company_name,where:deleted_at IS NULL"`
	Name        string         `gorm:"size:255;not null;uniqueIndex:uq_departments_company_name,where:deleted_at IS NULL"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
