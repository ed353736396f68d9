//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/jwt"
	"gearshare/internal/pkg/password"
	"gearshare/internal/usecase/commands"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	users    *commandsmock.MockUserRepository
	jwt      *jwt.Service
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = commandsmock.NewMockUserRepository(s.ctrl)
	s.jwt = jwt.NewService("test-secret", time.Hour)

	uow := testutil.ImmediateUoW{Tx: testutil.StubTx{UsersRepo: s.users}}
	s.commands = commands.NewAuthCommands(uow, s.jwt)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) newStoredUser(rawPassword string) *user.User {
	email, err := user.NewEmail("alice@example.com")
	s.Require().NoError(err)
	name, err := user.NewName("Alice")
	s.Require().NoError(err)
	hash, err := password.HashPassword(rawPassword)
	s.Require().NoError(err)
	return user.NewUser(email, name, hash)
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()
	input := commands.RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	}

	s.Run("success issues a token", func() {
		s.users.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		result, err := s.commands.Register(ctx, input)
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, result.UserID)

		claims, err := s.jwt.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(result.UserID, claims.UserID)
	})

	s.Run("duplicate email", func() {
		s.users.EXPECT().Create(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("users_email_key", nil, infra.KindDuplicateKey))

		_, err := s.commands.Register(ctx, input)
		s.Require().ErrorIs(err, commands.ErrDuplicateEmail)
	})

	s.Run("invalid email fails before the store", func() {
		bad := input
		bad.Email = "not-an-address"

		_, err := s.commands.Register(ctx, bad)
		s.Require().ErrorIs(err, commands.ErrUserValidation)
	})

	s.Run("weak password fails before the store", func() {
		bad := input
		bad.Password = "short"

		_, err := s.commands.Register(ctx, bad)
		s.Require().ErrorIs(err, commands.ErrUserValidation)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success", func() {
		stored := s.newStoredUser("correct horse")

		s.users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil)

		result, err := s.commands.Login(ctx, "alice@example.com", "correct horse")
		s.Require().NoError(err)
		s.Equal(stored.ID(), result.UserID)
	})

	s.Run("wrong password", func() {
		stored := s.newStoredUser("correct horse")

		s.users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil)

		_, err := s.commands.Login(ctx, "alice@example.com", "wrong battery staple")
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown email reports the same error as a wrong password", func() {
		s.users.EXPECT().FindByEmail(ctx, "nobody@example.com").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.commands.Login(ctx, "nobody@example.com", "whatever12")
		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})
}

func (s *AuthCommandsTestSuite) TestUpdateProfile() {
	ctx := context.Background()

	s.Run("changes name and email", func() {
		stored := s.newStoredUser("correct horse")
		newEmail := "alice.b@example.com"
		newName := "Alice B"

		s.users.EXPECT().FindByID(ctx, stored.ID()).Return(stored, nil)
		s.users.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				s.Equal(newEmail, u.Email().Value())
				s.Equal(newName, u.Name().Value())
				return nil
			})

		err := s.commands.UpdateProfile(ctx, stored.ID(), commands.UpdateProfileInput{
			Email: &newEmail,
			Name:  &newName,
		})
		s.Require().NoError(err)
	})

	s.Run("nil fields leave the account untouched", func() {
		stored := s.newStoredUser("correct horse")

		s.users.EXPECT().FindByID(ctx, stored.ID()).Return(stored, nil)
		s.users.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				s.Equal("alice@example.com", u.Email().Value())
				s.Equal("Alice", u.Name().Value())
				return nil
			})

		err := s.commands.UpdateProfile(ctx, stored.ID(), commands.UpdateProfileInput{})
		s.Require().NoError(err)
	})

	s.Run("email taken by another account", func() {
		stored := s.newStoredUser("correct horse")
		taken := "bob@example.com"

		s.users.EXPECT().FindByID(ctx, stored.ID()).Return(stored, nil)
		s.users.EXPECT().Update(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("users_email_key", nil, infra.KindDuplicateKey))

		err := s.commands.UpdateProfile(ctx, stored.ID(), commands.UpdateProfileInput{Email: &taken})
		s.Require().ErrorIs(err, commands.ErrDuplicateEmail)
	})

	s.Run("invalid email fails before the write", func() {
		stored := s.newStoredUser("correct horse")
		bad := "not-an-address"

		s.users.EXPECT().FindByID(ctx, stored.ID()).Return(stored, nil)

		err := s.commands.UpdateProfile(ctx, stored.ID(), commands.UpdateProfileInput{Email: &bad})
		s.Require().ErrorIs(err, commands.ErrUserValidation)
	})

	s.Run("unknown account", func() {
		unknown := uuid.New()

		s.users.EXPECT().FindByID(ctx, unknown).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		err := s.commands.UpdateProfile(ctx, unknown, commands.UpdateProfileInput{})
		s.Require().ErrorIs(err, commands.ErrUserNotFound)
	})
}

func (s *AuthCommandsTestSuite) TestDeleteAccount() {
	ctx := context.Background()

	s.Run("success", func() {
		id := uuid.New()

		s.users.EXPECT().Delete(ctx, id).Return(nil)

		s.Require().NoError(s.commands.DeleteAccount(ctx, id))
	})

	s.Run("account still referenced", func() {
		id := uuid.New()

		s.users.EXPECT().Delete(ctx, id).
			Return(infra.WrapRepoErr("user still referenced", nil, infra.KindConflict))

		err := s.commands.DeleteAccount(ctx, id)
		s.Require().ErrorIs(err, commands.ErrUserInUse)
	})

	s.Run("unknown account", func() {
		id := uuid.New()

		s.users.EXPECT().Delete(ctx, id).
			Return(infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		err := s.commands.DeleteAccount(ctx, id)
		s.Require().ErrorIs(err, commands.ErrUserNotFound)
	})
}
