package services

import (
	"projectconnect/internal/logger"
	"projectconnect/internal/models"
	"projectconnect/internal/repositories"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"
)

// MembershipService owns the state machine for the relationship between a
// user and a project:
//
//	NONE --requestToJoin--> REQUESTED --acceptRequest--> MEMBER
//	NONE --inviteToProject--> INVITED --registerInProject--> MEMBER
//	REQUESTED --rejectRequest--> NONE
//	INVITED --rejectInvite--> NONE
//
// MEMBER is terminal (leaving a project is not modeled). Every operation
// re-derives the current state from freshly loaded records and refuses to
// apply when the precondition no longer holds, so a retried or concurrent
// duplicate of an already-applied transition reports a failure instead of
// corrupting the lists. The actor is always an explicit argument; there is
// no ambient notion of a current user.
type MembershipService interface {
	RequestToJoin(actor, projectName string) (*dto.MembershipResponse, error)
	InviteToProject(actor, username, projectName string) (*dto.MembershipResponse, error)
	AcceptRequest(actor, username, projectName string) (*dto.MembershipResponse, error)
	RejectRequest(actor, username, projectName string) (*dto.MembershipResponse, error)
	RegisterInProject(actor, projectName string) (*dto.MembershipResponse, error)
	RejectInvite(actor, projectName string) (*dto.MembershipResponse, error)
}

type membershipService struct {
	userRepo            repositories.UserRepository
	projectRepo         repositories.ProjectRepository
	notificationService NotificationService
}

func NewMembershipService(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	notificationService NotificationService,
) MembershipService {
	return &membershipService{
		userRepo:            userRepo,
		projectRepo:         projectRepo,
		notificationService: notificationService,
	}
}

// RequestToJoin moves (actor, project) from NONE to REQUESTED and notifies
// the project creator.
func (s *membershipService) RequestToJoin(actor, projectName string) (*dto.MembershipResponse, error) {
	user, project, err := s.loadPair(actor, projectName)
	if err != nil {
		return nil, err
	}

	if state := project.MembershipStateOf(actor); state != models.MembershipNone {
		return nil, apperrors.NewInvalidTransitionError(
			"cannot request to join: relationship already " + string(state))
	}

	project.SetRequesterNames(append(project.RequesterNames(), actor))
	user.SetRequestNames(append(user.RequestNames(), projectName))

	if err := s.savePair(user, project); err != nil {
		return nil, err
	}

	s.notify(s.notificationService.NotifyNewRequest(actor, project.Creator, projectName))
	return successResponse(user, project), nil
}

// InviteToProject moves (username, project) from NONE to INVITED. Creator
// only.
func (s *membershipService) InviteToProject(actor, username, projectName string) (*dto.MembershipResponse, error) {
	user, project, err := s.loadPair(username, projectName)
	if err != nil {
		return nil, err
	}

	if project.Creator != actor {
		return nil, apperrors.NewUnauthorizedActorError("only the project creator can send invites")
	}

	if state := project.MembershipStateOf(username); state != models.MembershipNone {
		return nil, apperrors.NewInvalidTransitionError(
			"cannot invite: relationship already " + string(state))
	}

	project.SetInviteeNames(append(project.InviteeNames(), username))
	user.SetInvitationNames(append(user.InvitationNames(), projectName))

	if err := s.savePair(user, project); err != nil {
		return nil, err
	}

	s.notify(s.notificationService.NotifyNewInvite(actor, username, projectName))
	return successResponse(user, project), nil
}

// AcceptRequest moves (username, project) from REQUESTED to MEMBER. Creator
// only.
func (s *membershipService) AcceptRequest(actor, username, projectName string) (*dto.MembershipResponse, error) {
	user, project, err := s.loadPair(username, projectName)
	if err != nil {
		return nil, err
	}

	if project.Creator != actor {
		return nil, apperrors.NewUnauthorizedActorError("only the project creator can accept join requests")
	}

	if state := project.MembershipStateOf(username); state != models.MembershipRequested {
		return nil, apperrors.NewInvalidTransitionError(
			"cannot accept request: relationship is " + string(state))
	}

	// Move, never copy: the username may occupy only one list at a time.
	project.SetRequesterNames(removeName(project.RequesterNames(), username))
	project.SetMemberNames(append(project.MemberNames(), username))
	user.SetRequestNames(removeName(user.RequestNames(), projectName))
	user.SetProjectNames(append(user.ProjectNames(), projectName))

	if err := s.savePair(user, project); err != nil {
		return nil, err
	}

	s.notify(s.notificationService.NotifyAcceptedRequest(actor, username, projectName))
	return successResponse(user, project), nil
}

// RejectRequest moves (username, project) from REQUESTED back to NONE.
// Creator only.
func (s *membershipService) RejectRequest(actor, username, projectName string) (*dto.MembershipResponse, error) {
	user, project, err := s.loadPair(username, projectName)
	if err != nil {
		return nil, err
	}

	if project.Creator != actor {
		return nil, apperrors.NewUnauthorizedActorError("only the project creator can reject join requests")
	}

	if state := project.MembershipStateOf(username); state != models.MembershipRequested {
		return nil, apperrors.NewInvalidTransitionError(
			"cannot reject request: relationship is " + string(state))
	}

	project.SetRequesterNames(removeName(project.RequesterNames(), username))
	user.SetRequestNames(removeName(user.RequestNames(), projectName))

	if err := s.savePair(user, project); err != nil {
		return nil, err
	}

	s.notify(s.notificationService.NotifyRejectedRequest(actor, username, projectName))
	return successResponse(user, project), nil
}

// RegisterInProject is the invited user accepting: INVITED to MEMBER. The
// project creator is notified.
func (s *membershipService) RegisterInProject(actor, projectName string) (*dto.MembershipResponse, error) {
	user, project, err := s.loadPair(actor, projectName)
	if err != nil {
		return nil, err
	}

	if state := project.MembershipStateOf(actor); state != models.MembershipInvited {
		return nil, apperrors.NewInvalidTransitionError(
			"cannot register: relationship is " + string(state))
	}

	project.SetInviteeNames(removeName(project.InviteeNames(), actor))
	project.SetMemberNames(append(project.MemberNames(), actor))
	user.SetInvitationNames(removeName(user.InvitationNames(), projectName))
	user.SetProjectNames(append(user.ProjectNames(), projectName))

	if err := s.savePair(user, project); err != nil {
		return nil, err
	}

	s.notify(s.notificationService.NotifyAcceptedInvite(actor, project.Creator, projectName))
	return successResponse(user, project), nil
}

// RejectInvite moves (actor, project) from INVITED back to NONE. The
// project creator is notified.
func (s *membershipService) RejectInvite(actor, projectName string) (*dto.MembershipResponse, error) {
	user, project, err := s.loadPair(actor, projectName)
	if err != nil {
		return nil, err
	}

	if state := project.MembershipStateOf(actor); state != models.MembershipInvited {
		return nil, apperrors.NewInvalidTransitionError(
			"cannot reject invite: relationship is " + string(state))
	}

	project.SetInviteeNames(removeName(project.InviteeNames(), actor))
	user.SetInvitationNames(removeName(user.InvitationNames(), projectName))

	if err := s.savePair(user, project); err != nil {
		return nil, err
	}

	s.notify(s.notificationService.NotifyRejectedInvite(actor, project.Creator, projectName))
	return successResponse(user, project), nil
}

// --- helpers ---

func (s *membershipService) loadPair(username, projectName string) (*models.User, *models.Project, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.NewNotFoundError("user", "User not found: "+username)
		}
		return nil, nil, err
	}

	project, err := s.projectRepo.FindByName(projectName)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, nil, apperrors.NewNotFoundError("project", "Project not found: "+projectName)
		}
		return nil, nil, err
	}

	return user, project, nil
}

func (s *membershipService) savePair(user *models.User, project *models.Project) error {
	if err := s.projectRepo.Update(project); err != nil {
		return err
	}
	if err := s.userRepo.Update(user); err != nil {
		// The project write already landed; surface the failure so the
		// caller retries and the precondition check resolves the skew.
		logger.Error("membership: user update failed after project update",
			"username", user.Username, "project", project.Name, "error", err)
		return err
	}
	return nil
}

// notify logs fan-out failures instead of failing the transition; the
// state change is already durable at this point.
func (s *membershipService) notify(err error) {
	if err != nil {
		logger.Warn("membership: notification fan-out failed", "error", err)
	}
}

func removeName(list []string, name string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}

func successResponse(user *models.User, project *models.Project) *dto.MembershipResponse {
	return &dto.MembershipResponse{
		Success: true,
		User:    dto.NewUserResponse(user),
		Project: dto.NewProjectResponse(project),
	}
}
