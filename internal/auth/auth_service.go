package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	autherrors "go-timesheet/internal/auth/errors"
	"go-timesheet/internal/shared/apperror"
)

// TokenConfig carries the signing secret and lifetimes so the service
// never reads the environment itself.
type TokenConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, email, password string) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type service struct {
	repo   Repository
	tokens TokenConfig
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	taken, err := s.repo.EmailInUse(ctx, req.Email)
	if err != nil {
		s.logger.Error("register email check failed", zap.Error(err))
		return UserResponse{}, err
	}
	if taken {
		return UserResponse{}, apperror.EmailTaken(req.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("manager registered", zap.String("user_id", user.ID))
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	stored, err := s.repo.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if stored.IsRevoked {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if time.Now().UTC().After(stored.DateExpired) {
		return TokenResponse{}, autherrors.ErrRefreshTokenExpired
	}

	user, err := s.repo.FindByID(ctx, stored.UserID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrUserNotFound
	}

	// Rotation: the old token is revoked the moment a new pair is issued.
	if err := s.repo.RevokeRefreshToken(ctx, stored.ID); err != nil {
		s.logger.Error("refresh token revoke failed", zap.Uint("token_id", stored.ID), zap.Error(err))
		return TokenResponse{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	stored, err := s.repo.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		return autherrors.ErrInvalidRefreshToken
	}
	return s.repo.RevokeRefreshToken(ctx, stored.ID)
}

func (s *service) issueTokens(ctx context.Context, user *User) (TokenResponse, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokens.AccessTokenTTL)
	jwtID := uuid.New().String()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"jti":     jwtID,
		"exp":     expiresAt.Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.tokens.Secret))
	if err != nil {
		return TokenResponse{}, err
	}

	refresh := &RefreshToken{
		Token:       uuid.New().String(),
		JwtID:       jwtID,
		DateAdded:   now,
		DateExpired: now.Add(s.tokens.RefreshTokenTTL),
		UserID:      user.ID,
	}
	if err := s.repo.CreateRefreshToken(ctx, refresh); err != nil {
		s.logger.Error("refresh token persist failed", zap.String("user_id", user.ID), zap.Error(err))
		return TokenResponse{}, err
	}

	return TokenResponse{
		Token:        accessToken,
		RefreshToken: refresh.Token,
		UserId:       user.ID,
		Expiration:   expiresAt.Format(time.RFC3339),
	}, nil
}
