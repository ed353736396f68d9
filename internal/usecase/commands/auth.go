package commands

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/jwt"
	"gearshare/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail     = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserValidation     = errs.New("user validation failed")
	ErrUserInUse          = errs.New("account still holds items or bookings")
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type UpdateProfileInput struct {
	Email *string
	Name  *string
}

type AuthResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, rawPassword string) (*AuthResult, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	uow UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwt: jwtService}
}

func (c *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}
	if _, err := user.NewPassword(in.Password); err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	u := user.NewUser(email, name, hash)

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.issueToken(u.ID())
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	var u *user.User

	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		found, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return c.issueToken(u.ID())
}

func (c *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrStoreFailure)
		}

		if in.Email != nil {
			email, err := user.NewEmail(*in.Email)
			if err != nil {
				return errs.Mark(err, ErrUserValidation)
			}
			u.ChangeEmail(email)
		}
		if in.Name != nil {
			name, err := user.NewName(*in.Name)
			if err != nil {
				return errs.Mark(err, ErrUserValidation)
			}
			u.Rename(name)
		}

		if err := tx.Users().Update(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
}

func (c *authCommandsImpl) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Users().Delete(ctx, userID); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrUserNotFound
			case infra.IsKind(err, infra.KindConflict):
				return ErrUserInUse
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
}

func (c *authCommandsImpl) issueToken(userID uuid.UUID) (*AuthResult, error) {
	token, err := c.jwt.GenerateToken(userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}
	return &AuthResult{UserID: userID, Token: token}, nil
}
