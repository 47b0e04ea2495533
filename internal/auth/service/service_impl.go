package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	artisandomain "github.com/localvocal/localvocal/internal/artisan/domain"
	"github.com/localvocal/localvocal/internal/auth/domain"
	"github.com/localvocal/localvocal/internal/auth/password"
	"github.com/localvocal/localvocal/internal/auth/token"
	pkgdb "github.com/localvocal/localvocal/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Issuer *token.Issuer
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	issuer *token.Issuer
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("auth.service"),
		genID:  p.GenID,
		repo:   p.Repo,
		issuer: p.Issuer,
	}
}

// Signup creates a user account. Artisan accounts also receive an empty
// profile row; both inserts share one transaction so a failure can never
// leave an artisan without a profile.
func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}

	if req.Password == "" {
		return nil, domain.ErrInvalidPassword
	}

	if !domain.ValidRole(req.Role) {
		return nil, domain.ErrInvalidRole
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           s.genID.Generate().Int64(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         req.Role,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, user); err != nil {
			return err
		}
		if user.Role == domain.RoleArtisan {
			return tx.WithContext(ctx).Create(&artisandomain.Profile{
				UserID:              user.ID,
				SustainabilityScore: artisandomain.DefaultSustainabilityScore,
			}).Error
		}
		return nil
	})
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}

	s.log.Info("user created",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return user, nil
}

// Login verifies credentials and issues a signed token carrying the user's
// id and role. A missing account and a wrong password are indistinguishable.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Sign(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{Token: signed, User: user}, nil
}
