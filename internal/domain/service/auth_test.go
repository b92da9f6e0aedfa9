package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/entity"
)

type authFixture struct {
	service     *AuthService
	userRepo    *fakeUserRepo
	clubRepo    *fakeClubRepo
	sessionRepo *fakeSessionRepo
}

func newAuthFixture() *authFixture {
	userRepo := newFakeUserRepo()
	clubRepo := newFakeClubRepo()
	sessionRepo := newFakeSessionRepo()

	return &authFixture{
		service:     NewAuthService(testLogger(), userRepo, clubRepo, sessionRepo, 0),
		userRepo:    userRepo,
		clubRepo:    clubRepo,
		sessionRepo: sessionRepo,
	}
}

func (f *authFixture) addStudent(email, password string) *entity.User {
	return f.userRepo.add(
		entity.User{Email: email, Password: password, Role: entity.Student, IsActive: true},
		&entity.StudentProfile{StudentNumber: "S-" + email},
	)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(f *authFixture)
		email    string
		password string
		role     entity.Role
		wantErr  error
	}{
		{
			name:     "student logs in",
			setup:    func(f *authFixture) { f.addStudent("ada@uni.edu", "pw") },
			email:    "ada@uni.edu",
			password: "pw",
			role:     entity.Student,
		},
		{
			name:     "wrong password",
			setup:    func(f *authFixture) { f.addStudent("ada@uni.edu", "pw") },
			email:    "ada@uni.edu",
			password: "nope",
			role:     entity.Student,
			wantErr:  errorz.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			setup:    func(_ *authFixture) {},
			email:    "ghost@uni.edu",
			password: "pw",
			role:     entity.Student,
			wantErr:  errorz.ErrInvalidCredentials,
		},
		{
			name: "valid student credentials on the admin tab",
			setup: func(f *authFixture) {
				f.addStudent("ada@uni.edu", "pw")
			},
			email:    "ada@uni.edu",
			password: "pw",
			role:     entity.Admin,
			wantErr:  errorz.ErrInvalidCredentials,
		},
		{
			name: "deactivated account",
			setup: func(f *authFixture) {
				f.userRepo.add(entity.User{Email: "ada@uni.edu", Password: "pw", Role: entity.Student, IsActive: false}, nil)
			},
			email:    "ada@uni.edu",
			password: "pw",
			role:     entity.Student,
			wantErr:  errorz.ErrInvalidCredentials,
		},
		{
			name: "student without a profile",
			setup: func(f *authFixture) {
				f.userRepo.add(entity.User{Email: "ada@uni.edu", Password: "pw", Role: entity.Student, IsActive: true}, nil)
			},
			email:    "ada@uni.edu",
			password: "pw",
			role:     entity.Student,
			wantErr:  errorz.ErrInvalidCredentials,
		},
		{
			name: "club admin without a linked club",
			setup: func(f *authFixture) {
				f.userRepo.add(entity.User{Email: "lead@uni.edu", Password: "pw", Role: entity.ClubAdmin, IsActive: true}, nil)
			},
			email:    "lead@uni.edu",
			password: "pw",
			role:     entity.ClubAdmin,
			wantErr:  errorz.ErrInvalidCredentials,
		},
		{
			name: "club admin with a linked club",
			setup: func(f *authFixture) {
				admin := f.userRepo.add(entity.User{Email: "lead@uni.edu", Password: "pw", Role: entity.ClubAdmin, IsActive: true}, nil)
				club := f.clubRepo.add("club-1", "Chess Club")
				f.clubRepo.adminOf[admin.ID] = club.ID
			},
			email:    "lead@uni.edu",
			password: "pw",
			role:     entity.ClubAdmin,
		},
		{
			name: "platform admin",
			setup: func(f *authFixture) {
				f.userRepo.add(entity.User{Email: "root@uni.edu", Password: "pw", Role: entity.Admin, IsActive: true}, nil)
			},
			email:    "root@uni.edu",
			password: "pw",
			role:     entity.Admin,
		},
		{
			name:     "unknown role",
			setup:    func(_ *authFixture) {},
			email:    "ada@uni.edu",
			password: "pw",
			role:     entity.Role("superuser"),
			wantErr:  errorz.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			tt.setup(f)

			user, token, err := f.service.Authenticate(ctx, tt.email, tt.password, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, token)
			assert.Equal(t, tt.role, user.Role)

			// The issued token resolves back to the same user.
			resolved, err := f.service.Resolve(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, resolved.ID)
		})
	}
}

func TestAuthService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.service.Resolve(ctx, "bogus")
		assert.ErrorIs(t, err, errorz.ErrInvalidCredentials)
	})

	t.Run("token of a deactivated user", func(t *testing.T) {
		f := newAuthFixture()
		user := f.addStudent("ada@uni.edu", "pw")

		_, token, err := f.service.Authenticate(ctx, "ada@uni.edu", "pw", entity.Student)
		require.NoError(t, err)

		user.IsActive = false

		_, err = f.service.Resolve(ctx, token)
		assert.ErrorIs(t, err, errorz.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	f.addStudent("ada@uni.edu", "pw")

	_, token, err := f.service.Authenticate(ctx, "ada@uni.edu", "pw", entity.Student)
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, token))

	_, err = f.service.Resolve(ctx, token)
	assert.ErrorIs(t, err, errorz.ErrInvalidCredentials)
}
