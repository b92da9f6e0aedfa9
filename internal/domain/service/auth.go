package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/secondary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

// credentialResolver looks up and verifies a user for one specific role.
type credentialResolver interface {
	resolve(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthService authenticates users and manages server-issued sessions. Each
// role has its own credential strategy; the role a request acts under is
// always taken from the session, never from the client.
type AuthService struct {
	logger *types.Logger

	resolvers map[entity.Role]credentialResolver
	userRepo  secondary.UserRepository
	sessions  secondary.SessionRepository
	ttl       time.Duration
}

func NewAuthService(
	logger *types.Logger,
	userStorage secondary.UserRepository,
	clubStorage secondary.ClubRepository,
	sessionStorage secondary.SessionRepository,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		logger: logger,
		resolvers: map[entity.Role]credentialResolver{
			entity.Student:   &studentResolver{userRepo: userStorage},
			entity.ClubAdmin: &clubAdminResolver{userRepo: userStorage, clubRepo: clubStorage},
			entity.Admin:     &adminResolver{userRepo: userStorage},
		},
		userRepo: userStorage,
		sessions: sessionStorage,
		ttl:      sessionTTL,
	}
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string, role entity.Role) (*entity.User, string, error) {
	resolver, ok := s.resolvers[role]
	if !ok {
		return nil, "", errorz.ErrInvalidCredentials
	}

	user, err := resolver.resolve(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, user.ID, s.ttl)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	s.logger.Infof("(user: %d) logged in as %s", user.ID, user.Role)
	return user, token, nil
}

func (s *AuthService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if userID == 0 {
		return nil, errorz.ErrInvalidCredentials
	}

	user, err := s.userRepo.Get(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if !user.IsActive {
		return nil, errorz.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// lookup is the part shared by every strategy: email match, verbatim
// password comparison, active flag and role tag.
func lookup(ctx context.Context, userRepo secondary.UserRepository, email, password string, role entity.Role) (*entity.User, error) {
	user, err := userRepo.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if user.Password != password || !user.IsActive || user.Role != role {
		return nil, errorz.ErrInvalidCredentials
	}

	return user, nil
}

// studentResolver additionally requires the student profile to exist.
type studentResolver struct {
	userRepo secondary.UserRepository
}

func (r *studentResolver) resolve(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := lookup(ctx, r.userRepo, email, password, entity.Student)
	if err != nil {
		return nil, err
	}

	if _, err = r.userRepo.GetProfile(ctx, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate student: %w", err)
	}

	return user, nil
}

// clubAdminResolver additionally requires a linked club.
type clubAdminResolver struct {
	userRepo secondary.UserRepository
	clubRepo secondary.ClubRepository
}

func (r *clubAdminResolver) resolve(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := lookup(ctx, r.userRepo, email, password, entity.ClubAdmin)
	if err != nil {
		return nil, err
	}

	if _, err = r.clubRepo.GetByAdmin(ctx, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate club admin: %w", err)
	}

	return user, nil
}

type adminResolver struct {
	userRepo secondary.UserRepository
}

func (r *adminResolver) resolve(ctx context.Context, email, password string) (*entity.User, error) {
	return lookup(ctx, r.userRepo, email, password, entity.Admin)
}
