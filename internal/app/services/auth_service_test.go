package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/auth"
)

func newAuthServiceForTest(store *fakeUserStore) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "devcamper-test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop())
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@gmail.com",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)

	user, err := store.GetByEmail(context.Background(), "john@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "123456", user.Password)
}

func TestRegisterPublisherRole(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@gmail.com",
		Password: "123456",
		Role:     "publisher",
	})
	require.NoError(t, err)

	user, _ := store.GetByEmail(context.Background(), "jane@gmail.com")
	assert.Equal(t, models.RolePublisher, user.Role)
}

func TestRegisterAdminRoleRejected(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@gmail.com",
		Password: "123456",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrRoleNotAssignable)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)
	req := &dto.RegisterRequest{Name: "John", Email: "john@gmail.com", Password: "123456"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "John", Email: "john@gmail.com", Password: "123456",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "john@gmail.com", Password: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "John", Email: "john@gmail.com", Password: "123456",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "john@gmail.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailMapsToInvalidCredentials(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@gmail.com", Password: "123456"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetCurrentUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "John", Email: "john@gmail.com", Password: "123456",
	})
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "john@gmail.com", user.Email)

	_, err = svc.GetCurrentUser(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
