package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessKakaoLogin    = "kakao login successful"
	MessageSuccessGetMe         = "user retrieved successfully"
	MessageSuccessUpdateUser    = "user updated successfully"
	MessageSuccessUploadProfile = "profile image uploaded successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedKakaoLogin    = "failed to login with kakao"
	MessageFailedGetMe         = "failed to retrieve user"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedUploadProfile = "failed to upload profile image"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrKakaoUnavailable   = errors.New("kakao authentication unavailable")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	KakaoLoginRequest struct {
		Code string `json:"code" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"access_token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		ImageURL  string    `json:"image_url,omitempty"`
		IsSocial  bool      `json:"is_social"`
		CreatedAt time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		ImageID string `json:"image_id" validate:"omitempty,uuid"`
	}

	UploadProfileImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
