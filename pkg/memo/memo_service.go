package memo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
)

type (
	// AccessChecker reports the caller's role in a refrigerator, failing with
	// the not-found / no-access sentinels.
	AccessChecker interface {
		RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error)
	}

	MemoService interface {
		CreateMemo(ctx context.Context, userID, refrigeratorID string, req domain.CreateMemoRequest) (domain.MemoResponse, error)
		GetMemos(ctx context.Context, userID, refrigeratorID string) ([]domain.MemoResponse, error)
		UpdateMemo(ctx context.Context, userID, refrigeratorID, memoID string, req domain.UpdateMemoRequest) (domain.MemoResponse, error)
		DeleteMemo(ctx context.Context, userID, refrigeratorID, memoID string) error
	}

	memoService struct {
		memoRepository MemoRepository
		access         AccessChecker
	}
)

func NewMemoService(memoRepository MemoRepository, access AccessChecker) MemoService {
	return &memoService{
		memoRepository: memoRepository,
		access:         access,
	}
}

func (s *memoService) CreateMemo(ctx context.Context, userID, refrigeratorID string, req domain.CreateMemoRequest) (domain.MemoResponse, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return domain.MemoResponse{}, err
	}

	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MemoResponse{}, domain.ErrParseUUID
	}
	fridgeID, err := uuid.Parse(refrigeratorID)
	if err != nil {
		return domain.MemoResponse{}, domain.ErrParseUUID
	}

	memo := &entities.Memo{
		ID:             uuid.New(),
		RefrigeratorID: fridgeID,
		UserID:         authorID,
		Content:        req.Content,
	}

	if err := s.memoRepository.CreateMemo(ctx, memo); err != nil {
		return domain.MemoResponse{}, err
	}

	return memoResponse(memo), nil
}

func (s *memoService) GetMemos(ctx context.Context, userID, refrigeratorID string) ([]domain.MemoResponse, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	memos, err := s.memoRepository.GetMemos(ctx, refrigeratorID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MemoResponse, 0, len(memos))
	for _, memo := range memos {
		responses = append(responses, memoResponse(memo))
	}
	return responses, nil
}

func (s *memoService) UpdateMemo(ctx context.Context, userID, refrigeratorID, memoID string, req domain.UpdateMemoRequest) (domain.MemoResponse, error) {
	memo, err := s.getAuthoredMemo(ctx, userID, refrigeratorID, memoID)
	if err != nil {
		return domain.MemoResponse{}, err
	}

	memo.Content = req.Content
	if err := s.memoRepository.UpdateMemo(ctx, memo); err != nil {
		return domain.MemoResponse{}, err
	}

	return memoResponse(memo), nil
}

func (s *memoService) DeleteMemo(ctx context.Context, userID, refrigeratorID, memoID string) error {
	memo, err := s.getAuthoredMemo(ctx, userID, refrigeratorID, memoID)
	if err != nil {
		return err
	}
	return s.memoRepository.DeleteMemo(ctx, memo.ID.String())
}

// getAuthoredMemo loads the memo and rejects callers other than its author.
func (s *memoService) getAuthoredMemo(ctx context.Context, userID, refrigeratorID, memoID string) (*entities.Memo, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	memo, err := s.memoRepository.GetMemoByID(ctx, refrigeratorID, memoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemoNotFound
		}
		return nil, err
	}

	if memo.UserID.String() != userID {
		return nil, domain.ErrNotMemoAuthor
	}
	return memo, nil
}

func memoResponse(memo *entities.Memo) domain.MemoResponse {
	res := domain.MemoResponse{
		ID:        memo.ID.String(),
		Content:   memo.Content,
		AuthorID:  memo.UserID.String(),
		CreatedAt: memo.CreatedAt,
		UpdatedAt: memo.UpdatedAt,
	}
	if memo.User != nil {
		res.AuthorName = memo.User.Name
	}
	return res
}
