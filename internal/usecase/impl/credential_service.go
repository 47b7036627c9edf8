// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// classify maps an internal failure to the error surfaced to the caller.
// Client errors pass through untouched; everything else is logged with
// its cause and replaced by an opaque server fault.
func (srv *credentialService) classify(ctx context.Context, err error, msg string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return err
	}

	srv.log(ctx).Error(msg, slog.Any("error", err))

	return domainerrors.ErrServiceUnavailable
}

// Signup registers a new account and signs it in immediately.
func (srv *credentialService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("phone", input.Phone))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, srv.classify(ctx, errors.Wrap(err, "failed to hash password during signup"), "Signup failed")
	}

	newUser := &entity.User{
		Phone:        input.Phone,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrPhoneAlreadyRegistered) {
			srv.log(ctx).Warn("Signup rejected, phone already registered", slog.String("phone", input.Phone))

			return nil, domainerrors.ErrPhoneAlreadyRegistered
		}

		return nil, srv.classify(ctx, errors.Wrap(err, "failed to create user during signup"), "Signup failed")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return srv.openSession(ctx, newUser)
}

// signinDummyHash is a syntactically valid bcrypt hash matched against
// no real password. The unknown-phone path runs a comparison against it
// so response timing does not reveal whether a phone is registered.
const signinDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Signin verifies a phone and password pair and opens a session.
// An unknown phone and a wrong password return the same error value,
// so callers cannot probe which phone numbers are registered.
func (srv *credentialService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting signin", slog.String("phone", input.Phone))

	user, err := srv.userRepo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, signinDummyHash)
			srv.log(ctx).Warn("Signin failed, unknown phone", slog.String("phone", input.Phone))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, srv.classify(ctx, errors.Wrap(err, "failed to find user during signin"), "Signin failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Signin failed, password mismatch", slog.String("phone", input.Phone))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Debug("Signin completed", slog.Any("userID", user.ID))

	return srv.openSession(ctx, user)
}

// GetCurrentUser returns the profile of the authenticated user.
func (srv *credentialService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A valid token pointing at a missing row means the account was
			// removed after issuance. Flag it loudly, the caller still gets
			// an ordinary not-found.
			srv.log(ctx).Error("Authenticated user no longer exists",
				slog.Any("userID", userID),
				slog.Bool("integrity", true),
			)

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, srv.classify(ctx, errors.Wrap(err, "failed to find user by id"), "GetCurrentUser failed")
	}

	return &usecase.ProfileOutput{User: user.Profile()}, nil
}

// ChangePassword verifies the old password and replaces the stored hash.
// Verify and update run in one transaction so the check and the write
// observe the same row.
func (srv *credentialService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	srv.log(ctx).Info("Starting password change", slog.Any("userID", input.UserID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for password change")
		}

		if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
			return domainerrors.ErrPasswordMismatch
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		if err := userRepo.UpdatePassword(ctx, input.UserID, newHash); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})

	if err != nil {
		return nil, srv.classify(ctx, err, "Password change failed")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))

	return &usecase.ChangePasswordOutput{Message: "password updated"}, nil
}

// openSession mints an access token for the given user.
func (srv *credentialService) openSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.Phone)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenSigningFailed
	}

	return &usecase.SessionOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Round(time.Second).Seconds()),
	}, nil
}
