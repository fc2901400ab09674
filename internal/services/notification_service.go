package services

import (
	"fmt"

	"projectconnect/internal/email"
	"projectconnect/internal/logger"
	"projectconnect/internal/models"
	"projectconnect/internal/repositories"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"
)

type NotificationService interface {
	ListForUser(username string) ([]*dto.NotificationResponse, error)
	Dismiss(actor, notificationID string) error

	// Factory methods, one per lifecycle event. sender is the user whose
	// action produced the event, recipient the counterparty.
	NotifyNewRequest(sender, recipient, projectName string) error
	NotifyNewInvite(sender, recipient, projectName string) error
	NotifyAcceptedRequest(sender, recipient, projectName string) error
	NotifyRejectedRequest(sender, recipient, projectName string) error
	NotifyAcceptedInvite(sender, recipient, projectName string) error
	NotifyRejectedInvite(sender, recipient, projectName string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

func (s *notificationService) ListForUser(username string) ([]*dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindForRecipient(username)
	if err != nil {
		return nil, err
	}
	return dto.NewNotificationResponses(notifications), nil
}

// Dismiss removes a notification. Only the recipient may dismiss;
// anything else reports NotFound so ids cannot be probed.
func (s *notificationService) Dismiss(actor, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return err
	}

	if notification.Recipient != actor {
		return apperrors.NewNotFoundError("notification", "Notification not found")
	}

	if err := s.notificationRepo.Delete(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return err
	}
	return nil
}

// --- Factory methods ---

func (s *notificationService) NotifyNewRequest(sender, recipient, projectName string) error {
	return s.create(sender, recipient, projectName, models.OperationNewRequest,
		fmt.Sprintf("%s wants to join %s.", sender, projectName))
}

func (s *notificationService) NotifyNewInvite(sender, recipient, projectName string) error {
	return s.create(sender, recipient, projectName, models.OperationNewInvite,
		fmt.Sprintf("%s wants you to join %s.", sender, projectName))
}

func (s *notificationService) NotifyAcceptedRequest(sender, recipient, projectName string) error {
	return s.create(sender, recipient, projectName, models.OperationAcceptedRequest, "")
}

func (s *notificationService) NotifyRejectedRequest(sender, recipient, projectName string) error {
	return s.create(sender, recipient, projectName, models.OperationRejectedRequest, "")
}

func (s *notificationService) NotifyAcceptedInvite(sender, recipient, projectName string) error {
	return s.create(sender, recipient, projectName, models.OperationAcceptedInvite, "")
}

func (s *notificationService) NotifyRejectedInvite(sender, recipient, projectName string) error {
	return s.create(sender, recipient, projectName, models.OperationRejectedInvite, "")
}

// create persists the notification and, for events that open a pending
// state, sends a best-effort email copy. Email failures are logged only.
func (s *notificationService) create(sender, recipient, projectName string, op models.Operation, emailBody string) error {
	notification := &models.Notification{
		Recipient:   recipient,
		Sender:      sender,
		Operation:   op,
		ProjectName: projectName,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return err
	}

	if emailBody != "" && s.emailProvider != nil {
		s.sendEmailCopy(recipient, projectName, emailBody)
	}
	return nil
}

func (s *notificationService) sendEmailCopy(recipient, projectName, body string) {
	user, err := s.userRepo.FindByUsername(recipient)
	if err != nil || user.Email == "" {
		return
	}

	err = s.emailProvider.Send(&email.Email{
		To:      []string{user.Email},
		Subject: fmt.Sprintf("ProjectConnect: activity on %s", projectName),
		Body:    body,
	})
	if err != nil {
		logger.Warn("failed to send notification email", "recipient", recipient, "error", err)
	}
}
