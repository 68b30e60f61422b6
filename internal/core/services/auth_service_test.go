package services_test

import (
	"context"
	"testing"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/config"
	"gymdesk/internal/core/services"
	"gymdesk/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthService(db *gorm.DB) *services.AuthService {
	return services.NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testAuthConfig(),
	)
}

func seedUser(t *testing.T, db *gorm.DB, tenantID uint, email, plain string, active bool) *models.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)

	user := &models.User{
		TenantID: tenantID,
		Name:     "Front Desk",
		Email:    email,
		Password: hash,
		Role:     models.RoleStaff,
		IsActive: active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	seedUser(t, db, tenant.ID, "staff@irontemple.test", "supersecret1", true)

	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &services.LoginInput{Email: "staff@irontemple.test", Password: "supersecret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, tenant.ID, resp.User.TenantID)

	_, err = svc.Login(ctx, &services.LoginInput{Email: "staff@irontemple.test", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &services.LoginInput{Email: "nobody@irontemple.test", Password: "supersecret1"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	seedUser(t, db, tenant.ID, "gone@irontemple.test", "supersecret1", false)

	svc := newAuthService(db)
	_, err := svc.Login(context.Background(), &services.LoginInput{Email: "gone@irontemple.test", Password: "supersecret1"})
	assert.ErrorIs(t, err, services.ErrUserInactive)
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	seedUser(t, db, tenant.ID, "staff@irontemple.test", "supersecret1", true)

	svc := newAuthService(db)
	ctx := context.Background()

	login, err := svc.Login(ctx, &services.LoginInput{Email: "staff@irontemple.test", Password: "supersecret1"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The used token was revoked by rotation, replay must fail
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, services.ErrTokenRevoked)
}

func TestRefresh_GarbageToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	seedUser(t, db, tenant.ID, "staff@irontemple.test", "supersecret1", true)

	svc := newAuthService(db)
	ctx := context.Background()

	login, err := svc.Login(ctx, &services.LoginInput{Email: "staff@irontemple.test", Password: "supersecret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, services.ErrTokenRevoked)
}

func TestLogoutAll_RevokesEverySession(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	user := seedUser(t, db, tenant.ID, "staff@irontemple.test", "supersecret1", true)

	svc := newAuthService(db)
	ctx := context.Background()

	first, err := svc.Login(ctx, &services.LoginInput{Email: "staff@irontemple.test", Password: "supersecret1"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, &services.LoginInput{Email: "staff@irontemple.test", Password: "supersecret1"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(ctx, user.ID))

	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, services.ErrTokenRevoked)
	_, err = svc.Refresh(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, services.ErrTokenRevoked)
}
