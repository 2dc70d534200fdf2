// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "belleza/internal/delivery/context"
	"belleza/internal/domain/entity"
	domainerrors "belleza/internal/domain/errors"
	"belleza/internal/domain/repository"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates the identity on first registration. A repeat
// registration with the same email returns the existing record untouched;
// a re-registration must never produce a duplicate or mutate the role.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Debug("Registration for existing email", slog.String("email", input.Email))

		return &usecase.RegisterUserOutput{User: existing, AlreadyExists: true}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user during registration")
	}

	newUser := &entity.User{
		Email: input.Email,
		Name:  input.Name,
		Role:  entity.RoleMember,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID), slog.String("email", newUser.Email))

	return &usecase.RegisterUserOutput{User: newUser}, nil
}

// ListUsers returns every registered identity.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an identity by id.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot delete unknown user")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

// PromoteToAdmin sets the identity's role to admin. The check that the
// caller is an admin happens in the middleware, before this is reached.
func (srv *userService) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.UpdateRole(ctx, id, entity.RoleAdmin); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot promote unknown user")
		}

		return errors.Wrap(err, "failed to promote user to admin")
	}

	srv.log(ctx).Info("User promoted to admin", slog.Any("userID", id))

	return nil
}

// IsAdmin reports whether the identity registered under email holds the
// admin role. An unregistered email is simply not an admin.
func (srv *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up user for admin check")
	}

	return user.IsAdmin(), nil
}
