package memo

import (
	"context"

	"gorm.io/gorm"

	"sigkihan-server/entities"
)

type (
	MemoRepository interface {
		CreateMemo(ctx context.Context, memo *entities.Memo) error
		GetMemos(ctx context.Context, refrigeratorID string) ([]*entities.Memo, error)
		GetMemoByID(ctx context.Context, refrigeratorID, memoID string) (*entities.Memo, error)
		UpdateMemo(ctx context.Context, memo *entities.Memo) error
		DeleteMemo(ctx context.Context, id string) error
	}

	memoRepository struct {
		db *gorm.DB
	}
)

func NewMemoRepository(db *gorm.DB) MemoRepository {
	return &memoRepository{db: db}
}

func (r *memoRepository) CreateMemo(ctx context.Context, memo *entities.Memo) error {
	return r.db.WithContext(ctx).Create(memo).Error
}

func (r *memoRepository) GetMemos(ctx context.Context, refrigeratorID string) ([]*entities.Memo, error) {
	var memos []*entities.Memo
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("refrigerator_id = ?", refrigeratorID).
		Order("created_at DESC").
		Find(&memos).Error; err != nil {
		return nil, err
	}
	return memos, nil
}

func (r *memoRepository) GetMemoByID(ctx context.Context, refrigeratorID, memoID string) (*entities.Memo, error) {
	var memo entities.Memo
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND refrigerator_id = ?", memoID, refrigeratorID).
		First(&memo).Error; err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *memoRepository) UpdateMemo(ctx context.Context, memo *entities.Memo) error {
	return r.db.WithContext(ctx).Save(memo).Error
}

func (r *memoRepository) DeleteMemo(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Memo{}).Error
}
