package projects_services

import (
	"fmt"
	"time"

	"trackdesk/internal/features/access"
	audit_logs "trackdesk/internal/features/audit_logs"
	projects_dto "trackdesk/internal/features/projects/dto"
	projects_enums "trackdesk/internal/features/projects/enums"
	projects_models "trackdesk/internal/features/projects/models"
	projects_repositories "trackdesk/internal/features/projects/repositories"
	users_models "trackdesk/internal/features/users/models"
	users_services "trackdesk/internal/features/users/services"
)

// MembershipService owns the contributor relation and answers the
// membership queries the authorization layer runs on every decision.
type MembershipService struct {
	contributorRepository *projects_repositories.ContributorRepository
	projectRepository     *projects_repositories.ProjectRepository
	userService           *users_services.UserService
	auditLogService       *audit_logs.AuditLogService
}

func (s *MembershipService) IsContributor(projectID uint, userID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	contributor, err := s.contributorRepository.GetContributorByUserAndProject(userID, projectID)
	if err != nil {
		return false, err
	}

	return contributor != nil, nil
}

func (s *MembershipService) IsAuthor(projectID uint, userID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	contributor, err := s.contributorRepository.GetContributorByUserAndProject(userID, projectID)
	if err != nil {
		return false, err
	}

	return contributor != nil && contributor.Role == projects_enums.ContributorRoleAuthor, nil
}

func (s *MembershipService) GetContributors(
	projectID uint,
	user *users_models.User,
) (*projects_dto.GetContributorsResponseDTO, error) {
	if err := s.requireExistingProject(projectID); err != nil {
		return nil, err
	}

	err := access.Require(
		s,
		&access.Actor{UserID: user.ID},
		access.ActionList,
		access.EntityContributor,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view project contributors",
	)
	if err != nil {
		return nil, err
	}

	contributors, err := s.contributorRepository.GetProjectContributors(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project contributors: %w", err)
	}

	contributorsList := make([]projects_dto.ContributorResponseDTO, len(contributors))
	for i, contributor := range contributors {
		contributorsList[i] = *contributor
	}

	return &projects_dto.GetContributorsResponseDTO{
		Contributors: contributorsList,
	}, nil
}

func (s *MembershipService) AddContributor(
	projectID uint,
	targetUserID uint,
	request *projects_dto.AddContributorRequestDTO,
	addedBy *users_models.User,
) (*projects_dto.ContributorResponseDTO, error) {
	if err := s.requireExistingProject(projectID); err != nil {
		return nil, err
	}

	err := access.Require(
		s,
		&access.Actor{UserID: addedBy.ID},
		access.ActionCreate,
		access.EntityContributor,
		access.Context{ProjectID: projectID},
		"insufficient permissions to add contributors",
	)
	if err != nil {
		return nil, err
	}

	targetUser, err := s.userService.GetUserByID(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if targetUser == nil {
		return nil, access.NotFound("user not found")
	}

	role := projects_enums.ContributorRoleContributor
	if request.Role != nil {
		role = *request.Role
	}

	if !role.IsValid() {
		return nil, access.Validation("invalid contributor role")
	}

	contributor := &projects_models.Contributor{
		UserID:    targetUserID,
		ProjectID: projectID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.validateContributor(contributor); err != nil {
		return nil, err
	}

	if err := s.contributorRepository.CreateContributor(contributor); err != nil {
		return nil, fmt.Errorf("failed to add contributor: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Contributor added: %s as %s", targetUser.Username, role),
		&addedBy.ID,
		&projectID,
	)

	return &projects_dto.ContributorResponseDTO{
		ID:        contributor.ID,
		UserID:    contributor.UserID,
		Username:  targetUser.Username,
		Role:      contributor.Role,
		CreatedAt: contributor.CreatedAt,
	}, nil
}

func (s *MembershipService) RemoveContributor(
	projectID uint,
	targetUserID uint,
	removedBy *users_models.User,
) error {
	if err := s.requireExistingProject(projectID); err != nil {
		return err
	}

	err := access.Require(
		s,
		&access.Actor{UserID: removedBy.ID},
		access.ActionDelete,
		access.EntityContributor,
		access.Context{ProjectID: projectID},
		"insufficient permissions to remove contributors",
	)
	if err != nil {
		return err
	}

	existing, err := s.contributorRepository.GetContributorByUserAndProject(targetUserID, projectID)
	if err != nil {
		return fmt.Errorf("failed to get contributor: %w", err)
	}

	if existing == nil {
		return access.NotFound("user is not a contributor of this project")
	}

	if existing.Role == projects_enums.ContributorRoleAuthor {
		return access.Validation("the project author cannot be removed")
	}

	targetUser, err := s.userService.GetUserByID(targetUserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.contributorRepository.RemoveContributor(targetUserID, projectID); err != nil {
		return fmt.Errorf("failed to remove contributor: %w", err)
	}

	if targetUser != nil {
		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Contributor removed: %s", targetUser.Username),
			&removedBy.ID,
			&projectID,
		)
	}

	return nil
}

// validateContributor enforces the single author invariant and the one
// record per (user, project) pair rule before the write is committed.
func (s *MembershipService) validateContributor(contributor *projects_models.Contributor) error {
	existing, err := s.contributorRepository.GetContributorByUserAndProject(
		contributor.UserID,
		contributor.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to check existing contributor: %w", err)
	}

	if existing != nil && existing.ID != contributor.ID {
		return access.Validation("user is already a contributor of this project")
	}

	if contributor.Role == projects_enums.ContributorRoleAuthor {
		author, err := s.contributorRepository.GetProjectAuthor(contributor.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to check project author: %w", err)
		}

		if author != nil && author.ID != contributor.ID {
			return access.DuplicateAuthor("this project already has an author")
		}
	}

	return nil
}

func (s *MembershipService) requireExistingProject(projectID uint) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return access.NotFound("project not found")
	}

	return nil
}
