//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/commands"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	requests *commandsmock.MockRequestRepository
	users    *commandsmock.MockUserRepository
	commands commands.RequestCommands
}

func (s *RequestCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.requests = commandsmock.NewMockRequestRepository(s.ctrl)
	s.users = commandsmock.NewMockUserRepository(s.ctrl)

	uow := testutil.ImmediateUoW{Tx: testutil.StubTx{
		RequestsRepo: s.requests,
		UsersRepo:    s.users,
	}}
	s.commands = commands.NewRequestCommands(uow)
}

func (s *RequestCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(RequestCommandsTestSuite))
}

func (s *RequestCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	requesterID := uuid.New()

	s.Run("success", func() {
		s.users.EXPECT().FindByID(ctx, requesterID).Return(nil, nil)
		s.requests.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req *request.Request) error {
				s.Equal(requesterID, req.RequesterID())
				s.Equal("Need a ladder", req.Description())
				return nil
			})

		id, err := s.commands.Create(ctx, requesterID, commands.CreateRequestInput{
			Description: "  Need a ladder  ",
		})
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("unknown requester", func() {
		s.users.EXPECT().FindByID(ctx, requesterID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.commands.Create(ctx, requesterID, commands.CreateRequestInput{
			Description: "Need a ladder",
		})
		s.Require().ErrorIs(err, commands.ErrUserNotFound)
	})

	s.Run("blank description", func() {
		s.users.EXPECT().FindByID(ctx, requesterID).Return(nil, nil)

		_, err := s.commands.Create(ctx, requesterID, commands.CreateRequestInput{
			Description: "   ",
		})
		s.Require().ErrorIs(err, commands.ErrRequestValidation)
	})
}
