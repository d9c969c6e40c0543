package issues

import (
	audit_logs "trackdesk/internal/features/audit_logs"
	projects_repositories "trackdesk/internal/features/projects/repositories"
	projects_services "trackdesk/internal/features/projects/services"
)

var issueRepository = &IssueRepository{}

var issueService = &IssueService{
	issueRepository,
	&projects_repositories.ProjectRepository{},
	projects_services.GetMembershipService(),
	audit_logs.GetAuditLogService(),
}

var issueController = &IssueController{
	issueService,
}

func GetIssueService() *IssueService {
	return issueService
}

func GetIssueController() *IssueController {
	return issueController
}
