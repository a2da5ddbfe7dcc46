package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMemo = "memo created successfully"
	MessageSuccessGetMemos   = "memos retrieved successfully"
	MessageSuccessUpdateMemo = "memo updated successfully"
	MessageSuccessDeleteMemo = "memo deleted successfully"

	MessageFailedCreateMemo = "failed to create memo"
	MessageFailedGetMemos   = "failed to retrieve memos"
	MessageFailedUpdateMemo = "failed to update memo"
	MessageFailedDeleteMemo = "failed to delete memo"

	ErrMemoNotFound  = errors.New("memo not found")
	ErrNotMemoAuthor = errors.New("only the author can modify this memo")
)

type (
	CreateMemoRequest struct {
		Content string `json:"content" validate:"required"`
	}

	UpdateMemoRequest struct {
		Content string `json:"content" validate:"required"`
	}

	MemoResponse struct {
		ID         string    `json:"id"`
		Content    string    `json:"content"`
		AuthorID   string    `json:"author_id"`
		AuthorName string    `json:"author_name"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}
)
