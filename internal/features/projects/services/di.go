package projects_services

import (
	audit_logs "trackdesk/internal/features/audit_logs"
	projects_repositories "trackdesk/internal/features/projects/repositories"
	users_services "trackdesk/internal/features/users/services"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var contributorRepository = &projects_repositories.ContributorRepository{}

var membershipService = &MembershipService{
	contributorRepository,
	projectRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
}

var projectService = &ProjectService{
	projectRepository,
	contributorRepository,
	membershipService,
	audit_logs.GetAuditLogService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
