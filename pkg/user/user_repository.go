package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sigkihan-server/entities"
)

type (
	UserRepository interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByKakaoID(ctx context.Context, kakaoID string) (*entities.User, error)
		CreateUserWithRefrigerator(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, user *entities.User) error
		GetProfileImageByID(ctx context.Context, id string) (*entities.ProfileImage, error)
		SetProfileImage(ctx context.Context, user *entities.User, image *entities.ProfileImage) error
		UpdateProfileImage(ctx context.Context, image *entities.ProfileImage) error
		DeleteProfileImage(ctx context.Context, id string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Image").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByKakaoID(ctx context.Context, kakaoID string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("kakao_id = ?", kakaoID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUserWithRefrigerator creates the user together with their default
// refrigerator and the owner access row, all in one transaction.
func (r *userRepository) CreateUserWithRefrigerator(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		fridge := &entities.Refrigerator{
			ID:   uuid.New(),
			Name: fmt.Sprintf("%s의 냉장고", user.Name),
		}
		if err := tx.Create(fridge).Error; err != nil {
			return err
		}

		access := &entities.RefrigeratorAccess{
			ID:             uuid.New(),
			UserID:         user.ID,
			RefrigeratorID: fridge.ID,
			Role:           "owner",
			CreatedAt:      time.Now(),
		}
		return tx.Create(access).Error
	})
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
}

func (r *userRepository) GetProfileImageByID(ctx context.Context, id string) (*entities.ProfileImage, error) {
	var image entities.ProfileImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// SetProfileImage stores an uploaded image and links it to the user in one
// transaction.
func (r *userRepository) SetProfileImage(ctx context.Context, user *entities.User, image *entities.ProfileImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(image).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).
			Where("id = ?", user.ID).
			Update("image_id", image.ID).Error
	})
}

func (r *userRepository) UpdateProfileImage(ctx context.Context, image *entities.ProfileImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *userRepository) DeleteProfileImage(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ProfileImage{}).Error
}
