package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"govportal/internal/models"
	"govportal/internal/repositories/interfaces"
	"govportal/internal/utils"
	"govportal/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, request *RegisterRequest) (*models.User, error)
	// Login verifies credentials and issues the session token. Unknown
	// username and wrong password produce the same ErrInvalidCredentials.
	Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error)
}

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      *models.User `json:"user"`
}

type authService struct {
	userRepo   interfaces.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	log        *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int, log *logger.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

func (s *authService) Register(ctx context.Context, request *RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: request.FullName,
		Username: request.Username,
		Password: string(hash),
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	s.log.WithField("username", user.Username).Info("admin account created")
	return user, nil
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.log.WithField("username", user.Username).Info("admin logged in")

	return &LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
		User:      user,
	}, nil
}
