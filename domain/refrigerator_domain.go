package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRefrigerator = "refrigerator created successfully"
	MessageSuccessGetRefrigerator    = "refrigerator retrieved successfully"
	MessageSuccessUpdateRefrigerator = "refrigerator updated successfully"
	MessageSuccessDeleteRefrigerator = "refrigerator deleted successfully"
	MessageSuccessCreateInvitation   = "invitation sent successfully"
	MessageSuccessResolveInvitation  = "invitation resolved successfully"
	MessageSuccessGetInvitations     = "invitations retrieved successfully"
	MessageSuccessRemoveMember       = "member removed successfully"
	MessageSuccessLeaveRefrigerator  = "left refrigerator successfully"

	MessageFailedCreateRefrigerator = "failed to create refrigerator"
	MessageFailedGetRefrigerator    = "failed to retrieve refrigerator"
	MessageFailedUpdateRefrigerator = "failed to update refrigerator"
	MessageFailedDeleteRefrigerator = "failed to delete refrigerator"
	MessageFailedCreateInvitation   = "failed to create invitation"
	MessageFailedResolveInvitation  = "failed to resolve invitation"
	MessageFailedGetInvitations     = "failed to retrieve invitations"
	MessageFailedRemoveMember       = "failed to remove member"
	MessageFailedLeaveRefrigerator  = "failed to leave refrigerator"

	ErrRefrigeratorNotFound = errors.New("refrigerator not found")
	ErrNoRefrigeratorAccess = errors.New("no access to this refrigerator")
	ErrNotRefrigeratorOwner = errors.New("not the owner of this refrigerator")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationResolved   = errors.New("invitation already resolved")
	ErrInvalidStatus        = errors.New("status must be accepted or declined")
	ErrMemberNotFound       = errors.New("member not found")
	ErrCannotRemoveOwner    = errors.New("cannot remove the owner")
	ErrOwnerCannotLeave     = errors.New("owner cannot leave their refrigerator")
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

type (
	CreateRefrigeratorRequest struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateRefrigeratorRequest struct {
		Name        string `json:"name" validate:"omitempty,max=100"`
		Description string `json:"description" validate:"omitempty"`
	}

	RefrigeratorMember struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	RefrigeratorResponse struct {
		ID          string               `json:"id"`
		Name        string               `json:"name"`
		Description string               `json:"description,omitempty"`
		Owner       *RefrigeratorMember  `json:"owner"`
		Members     []RefrigeratorMember `json:"members"`
		CreatedAt   time.Time            `json:"created_at"`
	}

	CreateInvitationRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	CreateInvitationResponse struct {
		ID   string `json:"id"`
		Code string `json:"code"`
	}

	ResolveInvitationRequest struct {
		Status string `json:"status" validate:"required,oneof=accepted declined"`
	}

	InvitationResponse struct {
		ID           string    `json:"id"`
		Refrigerator string    `json:"refrigerator"`
		Inviter      string    `json:"inviter"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
