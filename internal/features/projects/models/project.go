package projects_models

import (
	"time"

	projects_enums "trackdesk/internal/features/projects/enums"
)

type Project struct {
	ID          uint                       `json:"id"          gorm:"column:id;primaryKey"`
	Title       string                     `json:"title"       gorm:"column:title"`
	Description string                     `json:"description" gorm:"column:description"`
	Type        projects_enums.ProjectType `json:"type"        gorm:"column:type"`
	CreatedAt   time.Time                  `json:"createdTime" gorm:"column:created_time"`
}

func (Project) TableName() string {
	return "projects"
}
