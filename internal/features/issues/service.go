package issues

import (
	"fmt"
	"time"

	"trackdesk/internal/features/access"
	audit_logs "trackdesk/internal/features/audit_logs"
	issues_models "trackdesk/internal/features/issues/models"
	projects_repositories "trackdesk/internal/features/projects/repositories"
	projects_services "trackdesk/internal/features/projects/services"
	users_models "trackdesk/internal/features/users/models"
)

type IssueService struct {
	issueRepository   *IssueRepository
	projectRepository *projects_repositories.ProjectRepository
	membershipService *projects_services.MembershipService
	auditLogService   *audit_logs.AuditLogService
}

func (s *IssueService) CreateIssue(
	projectID uint,
	request *CreateIssueRequestDTO,
	creator *users_models.User,
) (*IssueResponseDTO, error) {
	if err := s.requireExistingProject(projectID); err != nil {
		return nil, err
	}

	err := access.Require(
		s.membershipService,
		&access.Actor{UserID: creator.ID},
		access.ActionCreate,
		access.EntityIssue,
		access.Context{ProjectID: projectID},
		"insufficient permissions to create issues",
	)
	if err != nil {
		return nil, err
	}

	status := issues_models.IssueStatusTodo
	if request.Status != nil {
		status = *request.Status
	}

	assignedUserID := creator.ID
	if request.AssignedUserID != nil {
		assignedUserID = *request.AssignedUserID
	}

	issue := &issues_models.Issue{
		ProjectID:      projectID,
		Title:          request.Title,
		Description:    request.Description,
		Tag:            request.Tag,
		Status:         status,
		Priority:       request.Priority,
		AuthorUserID:   creator.ID,
		AssignedUserID: assignedUserID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.validateIssue(issue); err != nil {
		return nil, err
	}

	if err := s.issueRepository.CreateIssue(issue); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Issue created: %s", issue.Title),
		&creator.ID,
		&projectID,
	)

	return issueToResponse(issue), nil
}

func (s *IssueService) GetIssues(projectID uint, user *users_models.User) (*GetIssuesResponseDTO, error) {
	if err := s.requireExistingProject(projectID); err != nil {
		return nil, err
	}

	err := access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionList,
		access.EntityIssue,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view issues",
	)
	if err != nil {
		return nil, err
	}

	issues, err := s.issueRepository.GetIssuesByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issues: %w", err)
	}

	issuesList := make([]IssueResponseDTO, len(issues))
	for i, issue := range issues {
		issuesList[i] = *issueToResponse(issue)
	}

	return &GetIssuesResponseDTO{Issues: issuesList}, nil
}

func (s *IssueService) GetIssue(
	projectID uint,
	issueID uint,
	user *users_models.User,
) (*IssueResponseDTO, error) {
	issue, err := s.getIssueOrNotFound(projectID, issueID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionRead,
		access.EntityIssue,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view issue",
	)
	if err != nil {
		return nil, err
	}

	return issueToResponse(issue), nil
}

func (s *IssueService) UpdateIssue(
	projectID uint,
	issueID uint,
	request *UpdateIssueRequestDTO,
	user *users_models.User,
) (*IssueResponseDTO, error) {
	issue, err := s.getIssueOrNotFound(projectID, issueID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionUpdate,
		access.EntityIssue,
		access.Context{ProjectID: projectID, IssueAuthorID: issue.AuthorUserID},
		"only the issue author can update this issue",
	)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		issue.Title = *request.Title
	}

	if request.Description != nil {
		issue.Description = *request.Description
	}

	if request.Tag != nil {
		issue.Tag = *request.Tag
	}

	if request.Priority != nil {
		issue.Priority = *request.Priority
	}

	if request.Status != nil {
		issue.Status = *request.Status
	}

	if request.AssignedUserID != nil {
		issue.AssignedUserID = *request.AssignedUserID
	}

	// Membership is re-validated on every save, not only on creation, to
	// guard against stale or malicious payloads.
	if err := s.validateIssue(issue); err != nil {
		return nil, err
	}

	if err := s.issueRepository.UpdateIssue(issue); err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Issue updated: %s", issue.Title),
		&user.ID,
		&projectID,
	)

	return issueToResponse(issue), nil
}

func (s *IssueService) DeleteIssue(projectID uint, issueID uint, user *users_models.User) error {
	issue, err := s.getIssueOrNotFound(projectID, issueID)
	if err != nil {
		return err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionDelete,
		access.EntityIssue,
		access.Context{ProjectID: projectID, IssueAuthorID: issue.AuthorUserID},
		"only the issue author can delete this issue",
	)
	if err != nil {
		return err
	}

	if err := s.issueRepository.DeleteIssue(issueID); err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Issue deleted: %s", issue.Title),
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *IssueService) GetIssueByID(issueID uint) (*issues_models.Issue, error) {
	return s.issueRepository.GetIssueByID(issueID)
}

// validateIssue enforces the membership invariant: author and assigned must
// both be contributors of the issue's project whenever the issue is written.
func (s *IssueService) validateIssue(issue *issues_models.Issue) error {
	if !issue.Tag.IsValid() {
		return access.Validation("invalid issue tag")
	}

	if !issue.Status.IsValid() {
		return access.Validation("invalid issue status")
	}

	if !issue.Priority.IsValid() {
		return access.Validation("invalid issue priority")
	}

	isAuthorContributor, err := s.membershipService.IsContributor(issue.ProjectID, issue.AuthorUserID)
	if err != nil {
		return fmt.Errorf("failed to check author membership: %w", err)
	}

	if !isAuthorContributor {
		return access.NotAContributor("issue author is not a contributor of this project")
	}

	isAssignedContributor, err := s.membershipService.IsContributor(issue.ProjectID, issue.AssignedUserID)
	if err != nil {
		return fmt.Errorf("failed to check assignee membership: %w", err)
	}

	if !isAssignedContributor {
		return access.NotAContributor("assigned user is not a contributor of this project")
	}

	return nil
}

func (s *IssueService) requireExistingProject(projectID uint) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return access.NotFound("project not found")
	}

	return nil
}

func (s *IssueService) getIssueOrNotFound(projectID, issueID uint) (*issues_models.Issue, error) {
	if err := s.requireExistingProject(projectID); err != nil {
		return nil, err
	}

	issue, err := s.issueRepository.GetIssueByID(issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	if issue == nil || issue.ProjectID != projectID {
		return nil, access.NotFound("issue not found")
	}

	return issue, nil
}

func issueToResponse(issue *issues_models.Issue) *IssueResponseDTO {
	return &IssueResponseDTO{
		ID:             issue.ID,
		ProjectID:      issue.ProjectID,
		Title:          issue.Title,
		Description:    issue.Description,
		Tag:            issue.Tag,
		Status:         issue.Status,
		Priority:       issue.Priority,
		AuthorUserID:   issue.AuthorUserID,
		AssignedUserID: issue.AssignedUserID,
		CreatedAt:      issue.CreatedAt,
	}
}
