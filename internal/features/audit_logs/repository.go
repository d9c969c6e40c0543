package audit_logs

import (
	"time"

	"github.com/google/uuid"

	audit_logs_models "trackdesk/internal/features/audit_logs/models"
	"trackdesk/internal/storage"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Create(auditLog *audit_logs_models.AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetByProject(
	projectID uint,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLogDTO, error) {
	var auditLogs = make([]*AuditLogDTO, 0)

	sql := `
		SELECT
			al.id,
			al.user_id,
			al.project_id,
			al.message,
			al.created_at,
			u.username as username,
			p.title as project_title
		FROM audit_logs al
		LEFT JOIN users u ON al.user_id = u.id
		LEFT JOIN projects p ON al.project_id = p.id
		WHERE al.project_id = ?`

	args := []interface{}{projectID}

	if beforeDate != nil {
		sql += " AND al.created_at < ?"
		args = append(args, *beforeDate)
	}

	sql += " ORDER BY al.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	err := storage.GetDb().Raw(sql, args...).Scan(&auditLogs).Error

	return auditLogs, err
}

func (r *AuditLogRepository) CountByProject(projectID uint, beforeDate *time.Time) (int64, error) {
	var count int64

	query := storage.GetDb().Model(&audit_logs_models.AuditLog{}).
		Where("project_id = ?", projectID)

	if beforeDate != nil {
		query = query.Where("created_at < ?", *beforeDate)
	}

	err := query.Count(&count).Error

	return count, err
}
