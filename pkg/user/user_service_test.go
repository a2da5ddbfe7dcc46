package user

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
	"sigkihan-server/pkg/auth"
)

type mockUserRepository struct {
	getUserByID                func(ctx context.Context, id string) (*entities.User, error)
	getUserByEmail             func(ctx context.Context, email string) (*entities.User, error)
	getUserByKakaoID           func(ctx context.Context, kakaoID string) (*entities.User, error)
	createUserWithRefrigerator func(ctx context.Context, user *entities.User) error
	updateUser                 func(ctx context.Context, user *entities.User) error
	getProfileImageByID        func(ctx context.Context, id string) (*entities.ProfileImage, error)
	setProfileImage            func(ctx context.Context, user *entities.User, image *entities.ProfileImage) error
	updateProfileImage         func(ctx context.Context, image *entities.ProfileImage) error
	deleteProfileImage         func(ctx context.Context, id string) error
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return m.getUserByID(ctx, id)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return m.getUserByEmail(ctx, email)
}

func (m *mockUserRepository) GetUserByKakaoID(ctx context.Context, kakaoID string) (*entities.User, error) {
	return m.getUserByKakaoID(ctx, kakaoID)
}

func (m *mockUserRepository) CreateUserWithRefrigerator(ctx context.Context, user *entities.User) error {
	return m.createUserWithRefrigerator(ctx, user)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return m.updateUser(ctx, user)
}

func (m *mockUserRepository) GetProfileImageByID(ctx context.Context, id string) (*entities.ProfileImage, error) {
	if m.getProfileImageByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getProfileImageByID(ctx, id)
}

func (m *mockUserRepository) SetProfileImage(ctx context.Context, user *entities.User, image *entities.ProfileImage) error {
	return m.setProfileImage(ctx, user, image)
}

func (m *mockUserRepository) UpdateProfileImage(ctx context.Context, image *entities.ProfileImage) error {
	return m.updateProfileImage(ctx, image)
}

func (m *mockUserRepository) DeleteProfileImage(ctx context.Context, id string) error {
	return m.deleteProfileImage(ctx, id)
}

type mockJWTService struct{}

func (m *mockJWTService) GenerateTokenUser(userID string, role string) string {
	return "token-" + userID
}

func (m *mockJWTService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return nil, nil
}

func (m *mockJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

type mockKakaoProvider struct {
	info *auth.KakaoUserInfo
	err  error
}

func (m *mockKakaoProvider) ExchangeCode(ctx context.Context, code string) (*auth.KakaoUserInfo, error) {
	return m.info, m.err
}

type mockS3 struct {
	uploaded []string
	updated  []string
	deleted  []string
}

const mockBucketPrefix = "https://bucket.s3.example.com/"

func (m *mockS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExts ...string) (string, error) {
	key := folder + "/" + fileName
	m.uploaded = append(m.uploaded, key)
	return key, nil
}

func (m *mockS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExts ...string) (string, error) {
	m.updated = append(m.updated, objectKey)
	return objectKey, nil
}

func (m *mockS3) DeleteFile(objectKey string) error {
	m.deleted = append(m.deleted, objectKey)
	return nil
}

func (m *mockS3) GetPublicLinkKey(objectKey string) string {
	return mockBucketPrefix + objectKey
}

func (m *mockS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, mockBucketPrefix) {
		return ""
	}
	return strings.TrimPrefix(link, mockBucketPrefix)
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		getUserByEmail: func(ctx context.Context, email string) (*entities.User, error) {
			return &entities.User{ID: uuid.New(), Email: email}, nil
		},
	}

	service := NewUserService(repo, &mockJWTService{}, &mockKakaoProvider{}, &mockS3{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "kim@example.com",
		Password: "password123",
		Name:     "김철수",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterCreatesUserWithDefaultRefrigerator(t *testing.T) {
	var created *entities.User
	repo := &mockUserRepository{
		getUserByEmail: func(ctx context.Context, email string) (*entities.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createUserWithRefrigerator: func(ctx context.Context, user *entities.User) error {
			created = user
			return nil
		},
	}

	service := NewUserService(repo, &mockJWTService{}, &mockKakaoProvider{}, &mockS3{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "kim@example.com",
		Password: "password123",
		Name:     "김철수",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected user to be created")
	}
	if created.Password == "password123" {
		t.Error("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a token in the response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	repo := &mockUserRepository{
		getUserByEmail: func(ctx context.Context, email string) (*entities.User, error) {
			return &entities.User{ID: uuid.New(), Email: email, Password: string(hashed)}, nil
		},
	}

	service := NewUserService(repo, &mockJWTService{}, &mockKakaoProvider{}, &mockS3{})

	_, err := service.Login(context.Background(), domain.LoginRequest{Email: "kim@example.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginSocialAccountRejected(t *testing.T) {
	repo := &mockUserRepository{
		getUserByEmail: func(ctx context.Context, email string) (*entities.User, error) {
			return &entities.User{ID: uuid.New(), Email: email, IsSocial: true}, nil
		},
	}

	service := NewUserService(repo, &mockJWTService{}, &mockKakaoProvider{}, &mockS3{})

	_, err := service.Login(context.Background(), domain.LoginRequest{Email: "kim@example.com", Password: "whatever"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestKakaoLoginExistingUser(t *testing.T) {
	existingID := uuid.New()
	repo := &mockUserRepository{
		getUserByKakaoID: func(ctx context.Context, kakaoID string) (*entities.User, error) {
			return &entities.User{ID: existingID, KakaoID: &kakaoID, IsSocial: true}, nil
		},
	}
	provider := &mockKakaoProvider{info: &auth.KakaoUserInfo{KakaoID: "12345", Email: "kim@example.com", Name: "김철수"}}

	service := NewUserService(repo, &mockJWTService{}, provider, &mockS3{})

	res, err := service.KakaoLogin(context.Background(), domain.KakaoLoginRequest{Code: "auth-code"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.User.ID != existingID.String() {
		t.Errorf("expected existing user, got %s", res.User.ID)
	}
}

func TestKakaoLoginProvisionsNewUser(t *testing.T) {
	var created *entities.User
	repo := &mockUserRepository{
		getUserByKakaoID: func(ctx context.Context, kakaoID string) (*entities.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createUserWithRefrigerator: func(ctx context.Context, user *entities.User) error {
			created = user
			return nil
		},
	}
	provider := &mockKakaoProvider{info: &auth.KakaoUserInfo{KakaoID: "12345", Email: "kim@example.com", Name: "김철수"}}

	service := NewUserService(repo, &mockJWTService{}, provider, &mockS3{})

	if _, err := service.KakaoLogin(context.Background(), domain.KakaoLoginRequest{Code: "auth-code"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected a new user to be provisioned")
	}
	if !created.IsSocial {
		t.Error("expected social flag on kakao user")
	}
	if created.KakaoID == nil || *created.KakaoID != "12345" {
		t.Errorf("expected kakao id persisted, got %v", created.KakaoID)
	}
}

func TestKakaoLoginUpstreamFailure(t *testing.T) {
	provider := &mockKakaoProvider{err: errors.New("kauth unreachable")}

	service := NewUserService(&mockUserRepository{}, &mockJWTService{}, provider, &mockS3{})

	_, err := service.KakaoLogin(context.Background(), domain.KakaoLoginRequest{Code: "auth-code"})
	if !errors.Is(err, domain.ErrKakaoUnavailable) {
		t.Fatalf("expected ErrKakaoUnavailable, got %v", err)
	}
}

func TestUploadProfileImagePersistsNewImage(t *testing.T) {
	userID := uuid.New()
	var linked *entities.ProfileImage
	repo := &mockUserRepository{
		getUserByID: func(ctx context.Context, id string) (*entities.User, error) {
			return &entities.User{ID: userID}, nil
		},
		setProfileImage: func(ctx context.Context, user *entities.User, image *entities.ProfileImage) error {
			linked = image
			return nil
		},
	}
	s3 := &mockS3{}

	service := NewUserService(repo, &mockJWTService{}, &mockKakaoProvider{}, s3)

	url, err := service.UploadProfileImage(context.Background(), userID.String(), domain.UploadProfileImageRequest{
		Image: &multipart.FileHeader{Filename: "me.png"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linked == nil {
		t.Fatal("expected a profile image row to be created and linked")
	}
	if linked.ImageURL != url {
		t.Errorf("expected stored url %s to match response %s", linked.ImageURL, url)
	}
	if len(s3.uploaded) != 1 {
		t.Errorf("expected one upload, got %d", len(s3.uploaded))
	}
}

func TestUploadProfileImageOverwritesExistingUpload(t *testing.T) {
	userID := uuid.New()
	imageID := uuid.New()
	objectKey := "profile-images/profile-" + userID.String()

	var saved *entities.ProfileImage
	repo := &mockUserRepository{
		getUserByID: func(ctx context.Context, id string) (*entities.User, error) {
			return &entities.User{
				ID:      userID,
				ImageID: &imageID,
				Image:   &entities.ProfileImage{ID: imageID, ImageURL: mockBucketPrefix + objectKey},
			}, nil
		},
		updateProfileImage: func(ctx context.Context, image *entities.ProfileImage) error {
			saved = image
			return nil
		},
		setProfileImage: func(ctx context.Context, user *entities.User, image *entities.ProfileImage) error {
			t.Error("expected the existing row to be reused, not a new one")
			return nil
		},
	}
	s3 := &mockS3{}

	service := NewUserService(repo, &mockJWTService{}, &mockKakaoProvider{}, s3)

	url, err := service.UploadProfileImage(context.Background(), userID.String(), domain.UploadProfileImageRequest{
		Image: &multipart.FileHeader{Filename: "me.png"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s3.updated) != 1 || s3.updated[0] != objectKey {
		t.Errorf("expected in-place update of %s, got %v", objectKey, s3.updated)
	}
	if saved == nil || saved.ID != imageID {
		t.Fatalf("expected existing row %s persisted, got %+v", imageID, saved)
	}
	if saved.ImageURL != url {
		t.Errorf("expected stored url %s to match response %s", saved.ImageURL, url)
	}
}

func TestUpdateUserRemovesReplacedUpload(t *testing.T) {
	userID := uuid.New()
	uploadedID := uuid.New()
	presetID := uuid.New()
	objectKey := "profile-images/profile-" + userID.String()

	var deletedRow string
	repo := &mockUserRepository{
		getUserByID: func(ctx context.Context, id string) (*entities.User, error) {
			return &entities.User{
				ID:      userID,
				ImageID: &uploadedID,
				Image:   &entities.ProfileImage{ID: uploadedID, ImageURL: mockBucketPrefix + objectKey},
			}, nil
		},
		getProfileImageByID: func(ctx context.Context, id string) (*entities.ProfileImage, error) {
			return &entities.ProfileImage{ID: presetID, ImageURL: "/profile_images/profile_1.svg"}, nil
		},
		updateUser: func(ctx context.Context, user *entities.User) error {
			if user.ImageID == nil || *user.ImageID != presetID {
				t.Errorf("expected user linked to preset %s, got %v", presetID, user.ImageID)
			}
			return nil
		},
		deleteProfileImage: func(ctx context.Context, id string) error {
			deletedRow = id
			return nil
		},
	}
	s3 := &mockS3{}

	service := NewUserService(repo, &mockJWTService{}, &mockKakaoProvider{}, s3)

	if err := service.UpdateUser(context.Background(), userID.String(), domain.UpdateUserRequest{ImageID: presetID.String()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s3.deleted) != 1 || s3.deleted[0] != objectKey {
		t.Errorf("expected object %s deleted, got %v", objectKey, s3.deleted)
	}
	if deletedRow != uploadedID.String() {
		t.Errorf("expected row %s deleted, got %s", uploadedID, deletedRow)
	}
}
