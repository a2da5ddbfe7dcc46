package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sigkihan-server/domain"
	"sigkihan-server/internal/api/presenters"
	"sigkihan-server/pkg/notification"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		GetPopupNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		CreateNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")

	res, err := h.notificationService.GetNotifications(c.Context(), userID, refrigeratorID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) GetPopupNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")

	res, err := h.notificationService.GetPopupNotifications(c.Context(), userID, refrigeratorID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	req := new(domain.MarkAsReadRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAsRead, err)
	}

	if err := h.notificationService.MarkAsRead(c.Context(), userID, refrigeratorID, *req); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedMarkAsRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAsRead)
}

func (h *notificationHandler) CreateNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")

	created, err := h.notificationService.ScanRefrigerator(c.Context(), userID, refrigeratorID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedCreateNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"created": created}, fiber.StatusCreated, domain.MessageSuccessCreateNotifications)
}
