package comments

import (
	audit_logs "trackdesk/internal/features/audit_logs"
	"trackdesk/internal/features/issues"
	projects_repositories "trackdesk/internal/features/projects/repositories"
	projects_services "trackdesk/internal/features/projects/services"
)

var commentRepository = &CommentRepository{}

var commentService = &CommentService{
	commentRepository,
	issues.GetIssueService(),
	&projects_repositories.ProjectRepository{},
	projects_services.GetMembershipService(),
	audit_logs.GetAuditLogService(),
}

var commentController = &CommentController{
	commentService,
}

func GetCommentService() *CommentService {
	return commentService
}

func GetCommentController() *CommentController {
	return commentController
}
