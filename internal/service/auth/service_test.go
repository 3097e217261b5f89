package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
	"github.com/hkaraoglu/ir-scheduler/pkg/auth"
	apperrors "github.com/hkaraoglu/ir-scheduler/pkg/errors"
	"github.com/hkaraoglu/ir-scheduler/pkg/security"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = int64(len(r.users) + 1)
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*model.User, error) {
	var out []*model.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func newTestAuth(t *testing.T) *Service {
	t.Helper()

	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash("parola123")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*model.User{
		"dr.yilmaz": {ID: 1, Username: "dr.yilmaz", PasswordHash: hash, Role: model.RoleDoctor},
	}}
	return NewService(repo, auth.NewJWTService("test-secret", 1), hasher)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newTestAuth(t)

	resp, err := svc.Login(context.Background(), "dr.yilmaz", "parola123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "dr.yilmaz", resp.Username)
	assert.Equal(t, model.RoleDoctor, resp.Role)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "dr.yilmaz", claims.Username)
	assert.Equal(t, "doctor", claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.Login(context.Background(), "dr.yilmaz", "wrong")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.Login(context.Background(), "nobody", "parola123")
	require.Error(t, err)
}
