package domain

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
	RoleNone   = "none"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)

// StatusCode maps sentinel errors onto the API error taxonomy. Anything
// unknown is treated as an internal failure.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrRefrigeratorNotFound),
		errors.Is(err, ErrFoodNotFound),
		errors.Is(err, ErrDefaultFoodNotFound),
		errors.Is(err, ErrInvitationNotFound),
		errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrMemoNotFound),
		errors.Is(err, ErrNoUnreadNotifications):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNotRefrigeratorOwner),
		errors.Is(err, ErrNoRefrigeratorAccess),
		errors.Is(err, ErrOwnerCannotLeave),
		errors.Is(err, ErrCannotRemoveOwner),
		errors.Is(err, ErrNotMemoAuthor):
		return fiber.StatusForbidden
	case errors.Is(err, ErrInvitationResolved):
		return fiber.StatusConflict
	case errors.Is(err, ErrOracleUnavailable),
		errors.Is(err, ErrKakaoUnavailable):
		return fiber.StatusBadGateway
	case errors.Is(err, ErrParseUUID),
		errors.Is(err, ErrMissingFoodFields),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrNotEnoughQuantity),
		errors.Is(err, ErrInvalidAction),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrCatalogFoodRename),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMessageRequired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
