package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sigkihan-server/domain"
	"sigkihan-server/internal/api/presenters"
	"sigkihan-server/pkg/refrigerator"
)

type (
	RefrigeratorHandler interface {
		CreateRefrigerator(c *fiber.Ctx) error
		GetRefrigerators(c *fiber.Ctx) error
		GetRefrigerator(c *fiber.Ctx) error
		UpdateRefrigerator(c *fiber.Ctx) error
		DeleteRefrigerator(c *fiber.Ctx) error
		CreateInvitation(c *fiber.Ctx) error
		ResolveInvitation(c *fiber.Ctx) error
		GetInvitations(c *fiber.Ctx) error
		RemoveMember(c *fiber.Ctx) error
		LeaveRefrigerator(c *fiber.Ctx) error
	}

	refrigeratorHandler struct {
		refrigeratorService refrigerator.RefrigeratorService
		validator           *validator.Validate
	}
)

func NewRefrigeratorHandler(refrigeratorService refrigerator.RefrigeratorService, validator *validator.Validate) RefrigeratorHandler {
	return &refrigeratorHandler{
		refrigeratorService: refrigeratorService,
		validator:           validator,
	}
}

func (h *refrigeratorHandler) CreateRefrigerator(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRefrigeratorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRefrigerator, err)
	}

	res, err := h.refrigeratorService.CreateRefrigerator(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedCreateRefrigerator, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRefrigerator)
}

func (h *refrigeratorHandler) GetRefrigerators(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.refrigeratorService.GetRefrigerators(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetRefrigerator, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRefrigerator)
}

func (h *refrigeratorHandler) GetRefrigerator(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")

	res, err := h.refrigeratorService.GetRefrigerator(c.Context(), userID, refrigeratorID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetRefrigerator, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRefrigerator)
}

func (h *refrigeratorHandler) UpdateRefrigerator(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	req := new(domain.UpdateRefrigeratorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRefrigerator, err)
	}

	if err := h.refrigeratorService.UpdateRefrigerator(c.Context(), userID, refrigeratorID, *req); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedUpdateRefrigerator, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRefrigerator)
}

func (h *refrigeratorHandler) DeleteRefrigerator(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")

	if err := h.refrigeratorService.DeleteRefrigerator(c.Context(), userID, refrigeratorID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedDeleteRefrigerator, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRefrigerator)
}

func (h *refrigeratorHandler) CreateInvitation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	req := new(domain.CreateInvitationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvitation, err)
	}

	res, err := h.refrigeratorService.CreateInvitation(c.Context(), userID, refrigeratorID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedCreateInvitation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateInvitation)
}

func (h *refrigeratorHandler) ResolveInvitation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	code := c.Params("code")
	req := new(domain.ResolveInvitationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveInvitation, err)
	}

	res, err := h.refrigeratorService.ResolveInvitation(c.Context(), userID, code, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedResolveInvitation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveInvitation)
}

func (h *refrigeratorHandler) GetInvitations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.refrigeratorService.GetInvitations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetInvitations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInvitations)
}

func (h *refrigeratorHandler) RemoveMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	memberID := c.Params("member_id")

	if err := h.refrigeratorService.RemoveMember(c.Context(), userID, refrigeratorID, memberID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedRemoveMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMember)
}

func (h *refrigeratorHandler) LeaveRefrigerator(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")

	if err := h.refrigeratorService.LeaveRefrigerator(c.Context(), userID, refrigeratorID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedLeaveRefrigerator, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLeaveRefrigerator)
}
