package audit_logs

import (
	users_services "trackdesk/internal/features/users/services"
	"trackdesk/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository: auditLogRepository,
	logger:             logger.GetLogger(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
}
