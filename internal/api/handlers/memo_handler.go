package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sigkihan-server/domain"
	"sigkihan-server/internal/api/presenters"
	"sigkihan-server/pkg/memo"
)

type (
	MemoHandler interface {
		CreateMemo(c *fiber.Ctx) error
		GetMemos(c *fiber.Ctx) error
		UpdateMemo(c *fiber.Ctx) error
		DeleteMemo(c *fiber.Ctx) error
	}

	memoHandler struct {
		memoService memo.MemoService
		validator   *validator.Validate
	}
)

func NewMemoHandler(memoService memo.MemoService, validator *validator.Validate) MemoHandler {
	return &memoHandler{
		memoService: memoService,
		validator:   validator,
	}
}

func (h *memoHandler) CreateMemo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	req := new(domain.CreateMemoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMemo, err)
	}

	res, err := h.memoService.CreateMemo(c.Context(), userID, refrigeratorID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedCreateMemo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMemo)
}

func (h *memoHandler) GetMemos(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")

	res, err := h.memoService.GetMemos(c.Context(), userID, refrigeratorID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedGetMemos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMemos)
}

func (h *memoHandler) UpdateMemo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	memoID := c.Params("memo_id")
	req := new(domain.UpdateMemoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMemo, err)
	}

	res, err := h.memoService.UpdateMemo(c.Context(), userID, refrigeratorID, memoID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedUpdateMemo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMemo)
}

func (h *memoHandler) DeleteMemo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	memoID := c.Params("memo_id")

	if err := h.memoService.DeleteMemo(c.Context(), userID, refrigeratorID, memoID); err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedDeleteMemo, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMemo)
}
