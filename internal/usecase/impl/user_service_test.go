package impl

import (
	"context"
	"testing"

	"belleza/internal/domain/entity"
	"belleza/internal/domain/repository"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(repo repository.UserRepository) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo: repo,
		Logger:   newDiscardLogger(),
	})
}

func TestUserService_RegisterUser_NewUser(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "lina@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "lina@example.com" && u.Role == entity.RoleMember
	})).Return(nil).Once()

	srv := newUserServiceForTest(repo)
	out, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Email: "lina@example.com",
		Name:  "Lina",
	})

	require.NoError(t, err)
	assert.False(t, out.AlreadyExists)
	assert.Equal(t, "lina@example.com", out.User.Email)
	assert.Equal(t, entity.RoleMember, out.User.Role)
	repo.AssertExpectations(t)
}

func TestUserService_RegisterUser_ExistingEmailIsIdempotent(t *testing.T) {
	t.Parallel()

	existing := &entity.User{
		ID:    uuid.New(),
		Email: "lina@example.com",
		Name:  "Lina",
		Role:  entity.RoleAdmin,
	}

	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "lina@example.com").
		Return(existing, nil).Once()

	srv := newUserServiceForTest(repo)
	out, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Email: "lina@example.com",
		Name:  "Someone Else",
	})

	require.NoError(t, err)
	assert.True(t, out.AlreadyExists)
	assert.Same(t, existing, out.User)
	// No Create call: the existing record, role included, stays untouched.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_LookupFailure(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	srv := newUserServiceForTest(repo)
	out, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Email: "lina@example.com",
		Name:  "Lina",
	})

	require.Error(t, err)
	assert.Nil(t, out)
}

func TestUserService_IsAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      *entity.User
		findErr   error
		want      bool
		expectErr bool
	}{
		{
			name: "admin role",
			user: &entity.User{Email: "boss@example.com", Role: entity.RoleAdmin},
			want: true,
		},
		{
			name: "member role",
			user: &entity.User{Email: "lina@example.com", Role: entity.RoleMember},
			want: false,
		},
		{
			name:    "unknown email is not an admin",
			findErr: repository.ErrUserNotFound,
			want:    false,
		},
		{
			name:      "lookup failure",
			findErr:   errors.New("connection reset"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := new(mockUserRepo)
			repo.On("FindByEmail", mock.Anything, mock.Anything).
				Return(tt.user, tt.findErr).Once()

			srv := newUserServiceForTest(repo)
			got, err := srv.IsAdmin(context.Background(), "whoever@example.com")

			if tt.expectErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserService_PromoteToAdmin_UnknownUser(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	repo.On("UpdateRole", mock.Anything, mock.Anything, entity.RoleAdmin).
		Return(repository.ErrUserNotFound).Once()

	srv := newUserServiceForTest(repo)
	err := srv.PromoteToAdmin(context.Background(), uuid.New())

	require.Error(t, err)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := new(mockUserRepo)
	repo.On("Delete", mock.Anything, id).Return(nil).Once()

	srv := newUserServiceForTest(repo)
	require.NoError(t, srv.DeleteUser(context.Background(), id))
	repo.AssertExpectations(t)
}
