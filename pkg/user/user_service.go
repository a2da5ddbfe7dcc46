package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
	"sigkihan-server/internal/utils/storage"
	"sigkihan-server/pkg/auth"
	"sigkihan-server/pkg/jwt"
)

type (
	// KakaoAuthProvider resolves an authorization code to a Kakao profile.
	KakaoAuthProvider interface {
		ExchangeCode(ctx context.Context, code string) (*auth.KakaoUserInfo, error)
	}

	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.LoginResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		KakaoLogin(ctx context.Context, req domain.KakaoLoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error
		UploadProfileImage(ctx context.Context, userID string, req domain.UploadProfileImageRequest) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		kakao          KakaoAuthProvider
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, kakao KakaoAuthProvider, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		kakao:          kakao,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.LoginResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.LoginResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.LoginResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		IsActive: true,
	}

	if err := s.userRepository.CreateUserWithRefrigerator(ctx, user); err != nil {
		return domain.LoginResponse{}, err
	}

	return s.loginResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if user.IsSocial {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return s.loginResponse(user), nil
}

// KakaoLogin exchanges the authorization code, then signs in the matching
// social account or provisions a new one (with its default refrigerator).
func (s *userService) KakaoLogin(ctx context.Context, req domain.KakaoLoginRequest) (domain.LoginResponse, error) {
	info, err := s.kakao.ExchangeCode(ctx, req.Code)
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("%w: %v", domain.ErrKakaoUnavailable, err)
	}

	user, err := s.userRepository.GetUserByKakaoID(ctx, info.KakaoID)
	if err == nil {
		return s.loginResponse(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.LoginResponse{}, err
	}

	kakaoID := info.KakaoID
	user = &entities.User{
		ID:       uuid.New(),
		Name:     info.Name,
		Email:    info.Email,
		KakaoID:  &kakaoID,
		IsSocial: true,
		IsActive: true,
	}

	if err := s.userRepository.CreateUserWithRefrigerator(ctx, user); err != nil {
		return domain.LoginResponse{}, err
	}

	return s.loginResponse(user), nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	var replaced *entities.ProfileImage
	if req.ImageID != "" {
		image, err := s.userRepository.GetProfileImageByID(ctx, req.ImageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		if user.Image != nil && user.Image.ID != image.ID {
			replaced = user.Image
		}
		user.ImageID = &image.ID
		user.Image = image
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	// An uploaded image belongs to this user alone, so switching away from it
	// orphans both the object and its row. Preset images live outside the
	// bucket and their key resolves to "".
	if replaced != nil {
		if objectKey := s.s3.GetObjectKeyFromLink(replaced.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Printf("failed to delete profile image object %s: %v", objectKey, err)
			}
			if err := s.userRepository.DeleteProfileImage(ctx, replaced.ID.String()); err != nil {
				log.Printf("failed to delete profile image row %s: %v", replaced.ID, err)
			}
		}
	}

	return nil
}

func (s *userService) UploadProfileImage(ctx context.Context, userID string, req domain.UploadProfileImageRequest) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	// Re-uploading overwrites the user's own object in place. A preset image
	// lives outside the bucket, so its key resolves to "" and the user gets a
	// fresh upload with its own row.
	if user.Image != nil {
		if objectKey := s.s3.GetObjectKeyFromLink(user.Image.ImageURL); objectKey != "" {
			if _, err := s.s3.UpdateFile(objectKey, req.Image, storage.AllowImage...); err != nil {
				return "", err
			}
			user.Image.ImageURL = s.s3.GetPublicLinkKey(objectKey)
			if err := s.userRepository.UpdateProfileImage(ctx, user.Image); err != nil {
				return "", err
			}
			return user.Image.ImageURL, nil
		}
	}

	fileName := fmt.Sprintf("profile-%s", user.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "profile-images", storage.AllowImage...)
	if err != nil {
		return "", err
	}

	image := &entities.ProfileImage{
		ID:       uuid.New(),
		Name:     fileName,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}
	if err := s.userRepository.SetProfileImage(ctx, user, image); err != nil {
		return "", err
	}

	return image.ImageURL, nil
}

func (s *userService) loginResponse(user *entities.User) domain.LoginResponse {
	token := s.jwtService.GenerateTokenUser(user.ID.String(), "user")
	return domain.LoginResponse{
		Token: token,
		User:  userResponse(user),
	}
}

func userResponse(user *entities.User) domain.UserResponse {
	res := domain.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		IsSocial:  user.IsSocial,
		CreatedAt: user.CreatedAt,
	}
	if user.Image != nil {
		res.ImageURL = user.Image.ImageURL
	}
	return res
}
