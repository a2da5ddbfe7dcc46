package refrigerator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
)

type (
	RefrigeratorRepository interface {
		CreateWithOwner(ctx context.Context, fridge *entities.Refrigerator, ownerID uuid.UUID) error
		GetRefrigeratorByID(ctx context.Context, id string) (*entities.Refrigerator, error)
		GetRefrigerators(ctx context.Context, userID string) ([]*entities.Refrigerator, error)
		UpdateRefrigerator(ctx context.Context, fridge *entities.Refrigerator) error
		DeleteRefrigerator(ctx context.Context, id string) error

		GetAccess(ctx context.Context, userID, refrigeratorID string) (*entities.RefrigeratorAccess, error)
		DeleteAccess(ctx context.Context, id string) error

		CreateInvitation(ctx context.Context, invitation *entities.RefrigeratorInvitation) error
		GetInvitationByCode(ctx context.Context, code string) (*entities.RefrigeratorInvitation, error)
		GetPendingInvitations(ctx context.Context, email string) ([]*entities.RefrigeratorInvitation, error)
		ResolveInvitation(ctx context.Context, invitation *entities.RefrigeratorInvitation, grantAccessTo *uuid.UUID) error
	}

	refrigeratorRepository struct {
		db *gorm.DB
	}
)

func NewRefrigeratorRepository(db *gorm.DB) RefrigeratorRepository {
	return &refrigeratorRepository{db: db}
}

// CreateWithOwner creates the refrigerator and its owner access row in one
// transaction so a refrigerator can never exist without an owner.
func (r *refrigeratorRepository) CreateWithOwner(ctx context.Context, fridge *entities.Refrigerator, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fridge).Error; err != nil {
			return err
		}
		access := &entities.RefrigeratorAccess{
			ID:             uuid.New(),
			UserID:         ownerID,
			RefrigeratorID: fridge.ID,
			Role:           "owner",
			CreatedAt:      time.Now(),
		}
		return tx.Create(access).Error
	})
}

func (r *refrigeratorRepository) GetRefrigeratorByID(ctx context.Context, id string) (*entities.Refrigerator, error) {
	var fridge entities.Refrigerator
	if err := r.db.WithContext(ctx).
		Preload("AccessList.User").
		Where("id = ?", id).
		First(&fridge).Error; err != nil {
		return nil, err
	}
	return &fridge, nil
}

func (r *refrigeratorRepository) GetRefrigerators(ctx context.Context, userID string) ([]*entities.Refrigerator, error) {
	var fridges []*entities.Refrigerator
	if err := r.db.WithContext(ctx).
		Preload("AccessList.User").
		Joins("JOIN refrigerator_accesses ON refrigerator_accesses.refrigerator_id = refrigerators.id").
		Where("refrigerator_accesses.user_id = ?", userID).
		Order("refrigerators.created_at ASC").
		Find(&fridges).Error; err != nil {
		return nil, err
	}
	return fridges, nil
}

func (r *refrigeratorRepository) UpdateRefrigerator(ctx context.Context, fridge *entities.Refrigerator) error {
	return r.db.WithContext(ctx).Save(fridge).Error
}

// DeleteRefrigerator removes the refrigerator and everything scoped to it.
func (r *refrigeratorRepository) DeleteRefrigerator(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("refrigerator_id = ?", id).Delete(&entities.RefrigeratorAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Where("refrigerator_id = ?", id).Delete(&entities.RefrigeratorInvitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("refrigerator_id = ?", id).Delete(&entities.FridgeFood{}).Error; err != nil {
			return err
		}
		if err := tx.Where("refrigerator_id = ?", id).Delete(&entities.Memo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("refrigerator_id = ?", id).Delete(&entities.Notification{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Refrigerator{}).Error
	})
}

func (r *refrigeratorRepository) GetAccess(ctx context.Context, userID, refrigeratorID string) (*entities.RefrigeratorAccess, error) {
	var access entities.RefrigeratorAccess
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND refrigerator_id = ?", userID, refrigeratorID).
		First(&access).Error; err != nil {
		return nil, err
	}
	return &access, nil
}

func (r *refrigeratorRepository) DeleteAccess(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RefrigeratorAccess{}).Error
}

func (r *refrigeratorRepository) CreateInvitation(ctx context.Context, invitation *entities.RefrigeratorInvitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *refrigeratorRepository) GetInvitationByCode(ctx context.Context, code string) (*entities.RefrigeratorInvitation, error) {
	var invitation entities.RefrigeratorInvitation
	if err := r.db.WithContext(ctx).
		Preload("Refrigerator").
		Preload("Inviter").
		Where("code = ?", code).
		First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *refrigeratorRepository) GetPendingInvitations(ctx context.Context, email string) ([]*entities.RefrigeratorInvitation, error) {
	var invitations []*entities.RefrigeratorInvitation
	if err := r.db.WithContext(ctx).
		Preload("Refrigerator").
		Preload("Inviter").
		Where("invitee_email = ? AND status = ?", email, domain.InvitationPending).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// ResolveInvitation persists the terminal status and, on acceptance, grants
// member access in the same transaction. The status update only matches a
// pending row, so of two concurrent resolves exactly one wins and the loser
// gets ErrInvitationResolved. The unique (user, refrigerator) constraint
// guards against duplicate access rows; an existing row is kept.
func (r *refrigeratorRepository) ResolveInvitation(ctx context.Context, invitation *entities.RefrigeratorInvitation, grantAccessTo *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.RefrigeratorInvitation{}).
			Where("id = ? AND status = ?", invitation.ID, domain.InvitationPending).
			Update("status", invitation.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvitationResolved
		}

		if grantAccessTo == nil {
			return nil
		}

		var existing entities.RefrigeratorAccess
		err := tx.Where("user_id = ? AND refrigerator_id = ?", grantAccessTo, invitation.RefrigeratorID).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		access := &entities.RefrigeratorAccess{
			ID:             uuid.New(),
			UserID:         *grantAccessTo,
			RefrigeratorID: invitation.RefrigeratorID,
			Role:           "member",
			CreatedAt:      time.Now(),
		}
		return tx.Create(access).Error
	})
}
