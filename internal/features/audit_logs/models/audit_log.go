package audit_logs_models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey"`
	UserID    *uint     `json:"userId"    gorm:"column:user_id"`
	ProjectID *uint     `json:"projectId" gorm:"column:project_id"`
	Message   string    `json:"message"   gorm:"column:message"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
