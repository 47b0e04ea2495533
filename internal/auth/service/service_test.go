package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	artisandomain "github.com/localvocal/localvocal/internal/artisan/domain"
	"github.com/localvocal/localvocal/internal/auth/domain"
	"github.com/localvocal/localvocal/internal/auth/repository"
	"github.com/localvocal/localvocal/internal/auth/token"
	"github.com/localvocal/localvocal/internal/migration"
	pkgdb "github.com/localvocal/localvocal/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB, *token.Issuer) {
	t.Helper()

	conn, err := pkgdb.NewTest()
	require.NoError(t, err)
	require.NoError(t, migration.AutoMigrate(conn))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	issuer, err := token.NewIssuer("test-secret")
	require.NoError(t, err)

	svc := New(Params{
		DB:     conn,
		Log:    zaptest.NewLogger(t),
		GenID:  node,
		Repo:   repository.Provide(),
		Issuer: issuer,
	})
	return svc.(*Service), conn, issuer
}

func TestSignupCustomer(t *testing.T) {
	svc, conn, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, domain.SignupRequest{
		Name:     "Anita",
		Email:    "Anita@Example.com",
		Password: "hunter22",
		Role:     domain.RoleCustomer,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "anita@example.com", user.Email)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	var profiles int64
	require.NoError(t, conn.Model(&artisandomain.Profile{}).Count(&profiles).Error)
	assert.Zero(t, profiles, "customer signup must not create an artisan profile")
}

func TestSignupArtisanCreatesProfile(t *testing.T) {
	svc, conn, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, domain.SignupRequest{
		Name:     "Ramu",
		Email:    "ramu@artisan.com",
		Password: "hunter22",
		Role:     domain.RoleArtisan,
	})
	require.NoError(t, err)

	var profile artisandomain.Profile
	require.NoError(t, conn.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, artisandomain.DefaultSustainabilityScore, profile.SustainabilityScore)

	var profiles int64
	require.NoError(t, conn.Model(&artisandomain.Profile{}).Count(&profiles).Error)
	assert.EqualValues(t, 1, profiles)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, conn, _ := newTestService(t)
	ctx := context.Background()

	req := domain.SignupRequest{
		Name:     "Anita",
		Email:    "anita@example.com",
		Password: "hunter22",
		Role:     domain.RoleCustomer,
	}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	req.Name = "Another Anita"
	_, err = svc.Signup(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	var users int64
	require.NoError(t, conn.Model(&domain.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  domain.SignupRequest
		want error
	}{
		{"empty name", domain.SignupRequest{Email: "a@b.c", Password: "x", Role: domain.RoleCustomer}, domain.ErrInvalidName},
		{"bad email", domain.SignupRequest{Name: "A", Email: "not-an-email", Password: "x", Role: domain.RoleCustomer}, domain.ErrInvalidEmail},
		{"empty password", domain.SignupRequest{Name: "A", Email: "a@b.c", Role: domain.RoleCustomer}, domain.ErrInvalidPassword},
		{"unknown role", domain.SignupRequest{Name: "A", Email: "a@b.c", Password: "x", Role: "admin"}, domain.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _, issuer := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, domain.SignupRequest{
		Name:     "Anita",
		Email:    "anita@example.com",
		Password: "hunter22",
		Role:     domain.RoleCustomer,
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(ctx, domain.LoginRequest{Email: "Anita@Example.com", Password: "hunter22"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)

		claims, err := issuer.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, domain.RoleCustomer, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Email: "anita@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
