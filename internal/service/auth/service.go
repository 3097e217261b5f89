package auth

import (
	"context"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
	"github.com/hkaraoglu/ir-scheduler/internal/repository"
	"github.com/hkaraoglu/ir-scheduler/pkg/auth"
	apperrors "github.com/hkaraoglu/ir-scheduler/pkg/errors"
	"github.com/hkaraoglu/ir-scheduler/pkg/security"
)

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Storage("get user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwtSvc.GenerateToken(user.Username, string(user.Role))
	if err != nil {
		return nil, apperrors.Storage("generate token", err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Username:    user.Username,
		Role:        user.Role,
	}, nil
}

func (s *Service) ValidateToken(token string) (*auth.Claims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return claims, nil
}
