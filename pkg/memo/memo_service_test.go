package memo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
)

type mockMemoRepository struct {
	createMemo  func(ctx context.Context, memo *entities.Memo) error
	getMemos    func(ctx context.Context, refrigeratorID string) ([]*entities.Memo, error)
	getMemoByID func(ctx context.Context, refrigeratorID, memoID string) (*entities.Memo, error)
	updateMemo  func(ctx context.Context, memo *entities.Memo) error
	deleteMemo  func(ctx context.Context, id string) error
}

func (m *mockMemoRepository) CreateMemo(ctx context.Context, memo *entities.Memo) error {
	return m.createMemo(ctx, memo)
}

func (m *mockMemoRepository) GetMemos(ctx context.Context, refrigeratorID string) ([]*entities.Memo, error) {
	return m.getMemos(ctx, refrigeratorID)
}

func (m *mockMemoRepository) GetMemoByID(ctx context.Context, refrigeratorID, memoID string) (*entities.Memo, error) {
	return m.getMemoByID(ctx, refrigeratorID, memoID)
}

func (m *mockMemoRepository) UpdateMemo(ctx context.Context, memo *entities.Memo) error {
	return m.updateMemo(ctx, memo)
}

func (m *mockMemoRepository) DeleteMemo(ctx context.Context, id string) error {
	return m.deleteMemo(ctx, id)
}

type mockAccessChecker struct {
	err error
}

func (m *mockAccessChecker) RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error) {
	if m.err != nil {
		return domain.RoleNone, m.err
	}
	return domain.RoleMember, nil
}

func TestUpdateMemoAuthorOnly(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	fridgeID := uuid.New()
	memoID := uuid.New()

	repo := &mockMemoRepository{
		getMemoByID: func(ctx context.Context, refrigeratorID, id string) (*entities.Memo, error) {
			return &entities.Memo{ID: memoID, RefrigeratorID: fridgeID, UserID: author, Content: "우유 사기"}, nil
		},
	}

	service := NewMemoService(repo, &mockAccessChecker{})

	_, err := service.UpdateMemo(context.Background(), stranger.String(), fridgeID.String(), memoID.String(), domain.UpdateMemoRequest{Content: "바꿔치기"})
	if !errors.Is(err, domain.ErrNotMemoAuthor) {
		t.Fatalf("expected ErrNotMemoAuthor, got %v", err)
	}
}

func TestUpdateMemoByAuthor(t *testing.T) {
	author := uuid.New()
	fridgeID := uuid.New()
	memoID := uuid.New()

	var saved *entities.Memo
	repo := &mockMemoRepository{
		getMemoByID: func(ctx context.Context, refrigeratorID, id string) (*entities.Memo, error) {
			return &entities.Memo{ID: memoID, RefrigeratorID: fridgeID, UserID: author, Content: "우유 사기"}, nil
		},
		updateMemo: func(ctx context.Context, memo *entities.Memo) error {
			saved = memo
			return nil
		},
	}

	service := NewMemoService(repo, &mockAccessChecker{})

	res, err := service.UpdateMemo(context.Background(), author.String(), fridgeID.String(), memoID.String(), domain.UpdateMemoRequest{Content: "계란도 사기"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Content != "계란도 사기" {
		t.Errorf("expected updated content persisted, got %+v", saved)
	}
	if res.Content != "계란도 사기" {
		t.Errorf("unexpected response content: %s", res.Content)
	}
}

func TestDeleteMemoNotFound(t *testing.T) {
	repo := &mockMemoRepository{
		getMemoByID: func(ctx context.Context, refrigeratorID, id string) (*entities.Memo, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	service := NewMemoService(repo, &mockAccessChecker{})

	err := service.DeleteMemo(context.Background(), uuid.NewString(), uuid.NewString(), uuid.NewString())
	if !errors.Is(err, domain.ErrMemoNotFound) {
		t.Fatalf("expected ErrMemoNotFound, got %v", err)
	}
}

func TestCreateMemoRequiresAccess(t *testing.T) {
	service := NewMemoService(&mockMemoRepository{}, &mockAccessChecker{err: domain.ErrNoRefrigeratorAccess})

	_, err := service.CreateMemo(context.Background(), uuid.NewString(), uuid.NewString(), domain.CreateMemoRequest{Content: "메모"})
	if !errors.Is(err, domain.ErrNoRefrigeratorAccess) {
		t.Fatalf("expected ErrNoRefrigeratorAccess, got %v", err)
	}
}
