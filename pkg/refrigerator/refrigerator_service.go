package refrigerator

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
	"sigkihan-server/pkg/push"
	"sigkihan-server/pkg/user"
)

type (
	// InvitationMailer sends the invitation link to the invitee.
	InvitationMailer interface {
		SendInvitationMail(toEmail, inviterName, refrigeratorName, code string) error
	}

	RefrigeratorService interface {
		CreateRefrigerator(ctx context.Context, userID string, req domain.CreateRefrigeratorRequest) (domain.RefrigeratorResponse, error)
		GetRefrigerators(ctx context.Context, userID string) ([]domain.RefrigeratorResponse, error)
		GetRefrigerator(ctx context.Context, userID, refrigeratorID string) (domain.RefrigeratorResponse, error)
		UpdateRefrigerator(ctx context.Context, userID, refrigeratorID string, req domain.UpdateRefrigeratorRequest) error
		DeleteRefrigerator(ctx context.Context, userID, refrigeratorID string) error

		RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error)

		CreateInvitation(ctx context.Context, userID, refrigeratorID string, req domain.CreateInvitationRequest) (domain.CreateInvitationResponse, error)
		ResolveInvitation(ctx context.Context, userID, code string, req domain.ResolveInvitationRequest) (domain.InvitationResponse, error)
		GetInvitations(ctx context.Context, userID string) ([]domain.InvitationResponse, error)

		RemoveMember(ctx context.Context, userID, refrigeratorID, memberID string) error
		LeaveRefrigerator(ctx context.Context, userID, refrigeratorID string) error
	}

	refrigeratorService struct {
		refrigeratorRepository RefrigeratorRepository
		userRepository         user.UserRepository
		mailer                 InvitationMailer
		publisher              push.Publisher
	}
)

func NewRefrigeratorService(refrigeratorRepository RefrigeratorRepository, userRepository user.UserRepository, mailer InvitationMailer, publisher push.Publisher) RefrigeratorService {
	return &refrigeratorService{
		refrigeratorRepository: refrigeratorRepository,
		userRepository:         userRepository,
		mailer:                 mailer,
		publisher:              publisher,
	}
}

func (s *refrigeratorService) CreateRefrigerator(ctx context.Context, userID string, req domain.CreateRefrigeratorRequest) (domain.RefrigeratorResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RefrigeratorResponse{}, domain.ErrParseUUID
	}

	fridge := &entities.Refrigerator{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.refrigeratorRepository.CreateWithOwner(ctx, fridge, ownerID); err != nil {
		return domain.RefrigeratorResponse{}, err
	}

	created, err := s.refrigeratorRepository.GetRefrigeratorByID(ctx, fridge.ID.String())
	if err != nil {
		return domain.RefrigeratorResponse{}, err
	}

	return refrigeratorResponse(created), nil
}

func (s *refrigeratorService) GetRefrigerators(ctx context.Context, userID string) ([]domain.RefrigeratorResponse, error) {
	fridges, err := s.refrigeratorRepository.GetRefrigerators(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RefrigeratorResponse, 0, len(fridges))
	for _, fridge := range fridges {
		responses = append(responses, refrigeratorResponse(fridge))
	}
	return responses, nil
}

func (s *refrigeratorService) GetRefrigerator(ctx context.Context, userID, refrigeratorID string) (domain.RefrigeratorResponse, error) {
	fridge, err := s.getAccessibleRefrigerator(ctx, userID, refrigeratorID)
	if err != nil {
		return domain.RefrigeratorResponse{}, err
	}
	return refrigeratorResponse(fridge), nil
}

func (s *refrigeratorService) UpdateRefrigerator(ctx context.Context, userID, refrigeratorID string, req domain.UpdateRefrigeratorRequest) error {
	fridge, err := s.getAccessibleRefrigerator(ctx, userID, refrigeratorID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		fridge.Name = req.Name
	}
	if req.Description != "" {
		fridge.Description = req.Description
	}

	return s.refrigeratorRepository.UpdateRefrigerator(ctx, fridge)
}

func (s *refrigeratorService) DeleteRefrigerator(ctx context.Context, userID, refrigeratorID string) error {
	if err := s.requireOwner(ctx, userID, refrigeratorID); err != nil {
		return err
	}
	return s.refrigeratorRepository.DeleteRefrigerator(ctx, refrigeratorID)
}

// RoleOf reports the caller's role in the refrigerator. It returns
// ErrRefrigeratorNotFound when the refrigerator does not exist and
// ErrNoRefrigeratorAccess when the caller is not on its access list.
func (s *refrigeratorService) RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error) {
	if _, err := s.refrigeratorRepository.GetRefrigeratorByID(ctx, refrigeratorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RoleNone, domain.ErrRefrigeratorNotFound
		}
		return domain.RoleNone, err
	}

	access, err := s.refrigeratorRepository.GetAccess(ctx, userID, refrigeratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RoleNone, domain.ErrNoRefrigeratorAccess
		}
		return domain.RoleNone, err
	}

	return access.Role, nil
}

func (s *refrigeratorService) CreateInvitation(ctx context.Context, userID, refrigeratorID string, req domain.CreateInvitationRequest) (domain.CreateInvitationResponse, error) {
	if err := s.requireOwner(ctx, userID, refrigeratorID); err != nil {
		return domain.CreateInvitationResponse{}, err
	}

	inviter, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.CreateInvitationResponse{}, err
	}

	fridge, err := s.refrigeratorRepository.GetRefrigeratorByID(ctx, refrigeratorID)
	if err != nil {
		return domain.CreateInvitationResponse{}, err
	}

	invitation := &entities.RefrigeratorInvitation{
		ID:             uuid.New(),
		RefrigeratorID: fridge.ID,
		InviterID:      inviter.ID,
		InviteeEmail:   req.Email,
		Code:           uuid.NewString(),
		Status:         domain.InvitationPending,
	}

	if err := s.refrigeratorRepository.CreateInvitation(ctx, invitation); err != nil {
		return domain.CreateInvitationResponse{}, err
	}

	// Delivery is best-effort: the invitation row is the source of truth and
	// the invitee can still see it in their pending list.
	if err := s.mailer.SendInvitationMail(req.Email, inviter.Name, fridge.Name, invitation.Code); err != nil {
		log.Printf("failed to send invitation mail to %s: %v", req.Email, err)
	}

	if invitee, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		event := push.InviteEvent{
			InvitationID: invitation.ID.String(),
			Refrigerator: fridge.Name,
			Inviter:      inviter.Name,
			Status:       invitation.Status,
			CreatedAt:    invitation.CreatedAt,
		}
		if err := s.publisher.PublishInviteEvent(invitee.ID.String(), event); err != nil {
			log.Printf("failed to publish invite event: %v", err)
		}
	}

	return domain.CreateInvitationResponse{
		ID:   invitation.ID.String(),
		Code: invitation.Code,
	}, nil
}

// ResolveInvitation moves a pending invitation to its terminal status. An
// already-resolved invitation is a conflict, never a second transition.
func (s *refrigeratorService) ResolveInvitation(ctx context.Context, userID, code string, req domain.ResolveInvitationRequest) (domain.InvitationResponse, error) {
	if req.Status != domain.InvitationAccepted && req.Status != domain.InvitationDeclined {
		return domain.InvitationResponse{}, domain.ErrInvalidStatus
	}

	invitation, err := s.refrigeratorRepository.GetInvitationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InvitationResponse{}, domain.ErrInvitationNotFound
		}
		return domain.InvitationResponse{}, err
	}

	if invitation.Status != domain.InvitationPending {
		return domain.InvitationResponse{}, domain.ErrInvitationResolved
	}

	caller, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.InvitationResponse{}, err
	}

	invitation.Status = req.Status

	var grantAccessTo *uuid.UUID
	if req.Status == domain.InvitationAccepted {
		grantAccessTo = &caller.ID
	}

	if err := s.refrigeratorRepository.ResolveInvitation(ctx, invitation, grantAccessTo); err != nil {
		return domain.InvitationResponse{}, err
	}

	return invitationResponse(invitation), nil
}

func (s *refrigeratorService) GetInvitations(ctx context.Context, userID string) ([]domain.InvitationResponse, error) {
	caller, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	invitations, err := s.refrigeratorRepository.GetPendingInvitations(ctx, caller.Email)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.InvitationResponse, 0, len(invitations))
	for _, invitation := range invitations {
		responses = append(responses, invitationResponse(invitation))
	}
	return responses, nil
}

func (s *refrigeratorService) RemoveMember(ctx context.Context, userID, refrigeratorID, memberID string) error {
	if err := s.requireOwner(ctx, userID, refrigeratorID); err != nil {
		return err
	}

	access, err := s.refrigeratorRepository.GetAccess(ctx, memberID, refrigeratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}

	if access.Role == domain.RoleOwner {
		return domain.ErrCannotRemoveOwner
	}

	return s.refrigeratorRepository.DeleteAccess(ctx, access.ID.String())
}

func (s *refrigeratorService) LeaveRefrigerator(ctx context.Context, userID, refrigeratorID string) error {
	role, err := s.RoleOf(ctx, userID, refrigeratorID)
	if err != nil {
		return err
	}

	if role == domain.RoleOwner {
		return domain.ErrOwnerCannotLeave
	}

	access, err := s.refrigeratorRepository.GetAccess(ctx, userID, refrigeratorID)
	if err != nil {
		return err
	}

	return s.refrigeratorRepository.DeleteAccess(ctx, access.ID.String())
}

func (s *refrigeratorService) getAccessibleRefrigerator(ctx context.Context, userID, refrigeratorID string) (*entities.Refrigerator, error) {
	fridge, err := s.refrigeratorRepository.GetRefrigeratorByID(ctx, refrigeratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefrigeratorNotFound
		}
		return nil, err
	}

	if _, err := s.refrigeratorRepository.GetAccess(ctx, userID, refrigeratorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoRefrigeratorAccess
		}
		return nil, err
	}

	return fridge, nil
}

func (s *refrigeratorService) requireOwner(ctx context.Context, userID, refrigeratorID string) error {
	role, err := s.RoleOf(ctx, userID, refrigeratorID)
	if err != nil {
		return err
	}
	if role != domain.RoleOwner {
		return domain.ErrNotRefrigeratorOwner
	}
	return nil
}

func refrigeratorResponse(fridge *entities.Refrigerator) domain.RefrigeratorResponse {
	res := domain.RefrigeratorResponse{
		ID:          fridge.ID.String(),
		Name:        fridge.Name,
		Description: fridge.Description,
		Members:     []domain.RefrigeratorMember{},
		CreatedAt:   fridge.CreatedAt,
	}

	for _, access := range fridge.AccessList {
		if access.User == nil {
			continue
		}
		member := domain.RefrigeratorMember{
			ID:    access.User.ID.String(),
			Email: access.User.Email,
			Name:  access.User.Name,
		}
		if access.Role == domain.RoleOwner {
			owner := member
			res.Owner = &owner
			continue
		}
		res.Members = append(res.Members, member)
	}

	return res
}

func invitationResponse(invitation *entities.RefrigeratorInvitation) domain.InvitationResponse {
	res := domain.InvitationResponse{
		ID:        invitation.ID.String(),
		Status:    invitation.Status,
		CreatedAt: invitation.CreatedAt,
	}
	if invitation.Refrigerator != nil {
		res.Refrigerator = invitation.Refrigerator.Name
	}
	if invitation.Inviter != nil {
		res.Inviter = invitation.Inviter.Name
	}
	return res
}
