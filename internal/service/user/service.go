package user

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
	"github.com/hkaraoglu/ir-scheduler/internal/repository"
	apperrors "github.com/hkaraoglu/ir-scheduler/pkg/errors"
	"github.com/hkaraoglu/ir-scheduler/pkg/security"
)

type Service struct {
	repo   repository.UserRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Storage("get user", err)
	}
	if existing != nil {
		return nil, apperrors.Validation("username", "username already taken")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Validation("password", err.Error())
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperrors.Storage("create user", err)
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Storage("list users", err)
	}
	return users, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, apperrors.Storage("delete user", err)
	}
	return deleted, nil
}

// SeedAdmin creates the bootstrap admin account when the users table is
// empty. Idempotent across restarts.
func (s *Service) SeedAdmin(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return apperrors.Storage("count users", err)
	}
	if count > 0 {
		return nil
	}

	_, err = s.Create(ctx, &model.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return err
	}

	log.Info().Str("username", username).Msg("bootstrap admin user created")
	return nil
}
