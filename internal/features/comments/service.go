package comments

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"trackdesk/internal/features/access"
	audit_logs "trackdesk/internal/features/audit_logs"
	comments_models "trackdesk/internal/features/comments/models"
	"trackdesk/internal/features/issues"
	issues_models "trackdesk/internal/features/issues/models"
	projects_repositories "trackdesk/internal/features/projects/repositories"
	projects_services "trackdesk/internal/features/projects/services"
	users_models "trackdesk/internal/features/users/models"
)

type CommentService struct {
	commentRepository *CommentRepository
	issueService      *issues.IssueService
	projectRepository *projects_repositories.ProjectRepository
	membershipService *projects_services.MembershipService
	auditLogService   *audit_logs.AuditLogService
}

func (s *CommentService) CreateComment(
	projectID uint,
	issueID uint,
	request *CreateCommentRequestDTO,
	creator *users_models.User,
) (*CommentResponseDTO, error) {
	issue, err := s.getIssueOrNotFound(projectID, issueID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: creator.ID},
		access.ActionCreate,
		access.EntityComment,
		access.Context{ProjectID: projectID},
		"insufficient permissions to comment on this issue",
	)
	if err != nil {
		return nil, err
	}

	comment := &comments_models.Comment{
		ID:           uuid.New(),
		IssueID:      issueID,
		Description:  request.Description,
		AuthorUserID: creator.ID,
		CreatedAt:    time.Now().UTC(),
	}

	// The membership check runs against the issue's project, the comment
	// never references the project directly.
	if err := s.validateComment(comment, issue); err != nil {
		return nil, err
	}

	if err := s.commentRepository.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Comment added to issue: %s", issue.Title),
		&creator.ID,
		&projectID,
	)

	return commentToResponse(comment), nil
}

func (s *CommentService) GetComments(
	projectID uint,
	issueID uint,
	user *users_models.User,
) (*GetCommentsResponseDTO, error) {
	if _, err := s.getIssueOrNotFound(projectID, issueID); err != nil {
		return nil, err
	}

	err := access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionList,
		access.EntityComment,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view comments",
	)
	if err != nil {
		return nil, err
	}

	commentsList, err := s.commentRepository.GetCommentsByIssueID(issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return commentsToResponse(commentsList), nil
}

// GetProjectComments lists the comments of every issue in the project.
func (s *CommentService) GetProjectComments(
	projectID uint,
	user *users_models.User,
) (*GetCommentsResponseDTO, error) {
	if err := s.requireExistingProject(projectID); err != nil {
		return nil, err
	}

	err := access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionList,
		access.EntityComment,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view comments",
	)
	if err != nil {
		return nil, err
	}

	commentsList, err := s.commentRepository.GetCommentsByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return commentsToResponse(commentsList), nil
}

func (s *CommentService) GetComment(
	projectID uint,
	issueID uint,
	commentID uuid.UUID,
	user *users_models.User,
) (*CommentResponseDTO, error) {
	comment, err := s.getCommentOrNotFound(projectID, issueID, commentID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionRead,
		access.EntityComment,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view comment",
	)
	if err != nil {
		return nil, err
	}

	return commentToResponse(comment), nil
}

func (s *CommentService) UpdateComment(
	projectID uint,
	issueID uint,
	commentID uuid.UUID,
	request *UpdateCommentRequestDTO,
	user *users_models.User,
) (*CommentResponseDTO, error) {
	comment, err := s.getCommentOrNotFound(projectID, issueID, commentID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionUpdate,
		access.EntityComment,
		access.Context{ProjectID: projectID, CommentAuthorID: comment.AuthorUserID},
		"only the comment author can update this comment",
	)
	if err != nil {
		return nil, err
	}

	comment.Description = request.Description

	issue, err := s.issueService.GetIssueByID(issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	if err := s.validateComment(comment, issue); err != nil {
		return nil, err
	}

	if err := s.commentRepository.UpdateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return commentToResponse(comment), nil
}

func (s *CommentService) DeleteComment(
	projectID uint,
	issueID uint,
	commentID uuid.UUID,
	user *users_models.User,
) error {
	comment, err := s.getCommentOrNotFound(projectID, issueID, commentID)
	if err != nil {
		return err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionDelete,
		access.EntityComment,
		access.Context{ProjectID: projectID, CommentAuthorID: comment.AuthorUserID},
		"only the comment author can delete this comment",
	)
	if err != nil {
		return err
	}

	if err := s.commentRepository.DeleteComment(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		"Comment deleted",
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *CommentService) validateComment(
	comment *comments_models.Comment,
	issue *issues_models.Issue,
) error {
	isContributor, err := s.membershipService.IsContributor(issue.ProjectID, comment.AuthorUserID)
	if err != nil {
		return fmt.Errorf("failed to check author membership: %w", err)
	}

	if !isContributor {
		return access.NotAContributor("comment author is not a contributor of this project")
	}

	return nil
}

func (s *CommentService) requireExistingProject(projectID uint) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return access.NotFound("project not found")
	}

	return nil
}

func (s *CommentService) getIssueOrNotFound(projectID, issueID uint) (*issues_models.Issue, error) {
	if err := s.requireExistingProject(projectID); err != nil {
		return nil, err
	}

	issue, err := s.issueService.GetIssueByID(issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	if issue == nil || issue.ProjectID != projectID {
		return nil, access.NotFound("issue not found")
	}

	return issue, nil
}

func (s *CommentService) getCommentOrNotFound(
	projectID, issueID uint,
	commentID uuid.UUID,
) (*comments_models.Comment, error) {
	if _, err := s.getIssueOrNotFound(projectID, issueID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepository.GetCommentByID(commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if comment == nil || comment.IssueID != issueID {
		return nil, access.NotFound("comment not found")
	}

	return comment, nil
}

func commentToResponse(comment *comments_models.Comment) *CommentResponseDTO {
	return &CommentResponseDTO{
		ID:           comment.ID,
		IssueID:      comment.IssueID,
		Description:  comment.Description,
		AuthorUserID: comment.AuthorUserID,
		CreatedAt:    comment.CreatedAt,
	}
}

func commentsToResponse(commentsList []*comments_models.Comment) *GetCommentsResponseDTO {
	list := make([]CommentResponseDTO, len(commentsList))
	for i, comment := range commentsList {
		list[i] = *commentToResponse(comment)
	}

	return &GetCommentsResponseDTO{Comments: list}
}
