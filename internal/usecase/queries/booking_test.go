//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	testNow    = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	testLimits = queries.PageLimits{DefaultSize: 20, MaxSize: 200}
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	bookings *queriesmock.MockBookingReadStore
	users    *queriesmock.MockUserReadStore
	queries  queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.queries = queries.NewBookingQueries(s.bookings, s.users, clock.NewMockClock(testNow), testLimits)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	bookingID := uuid.New()
	bookerID := uuid.New()
	ownerID := uuid.New()

	view := &queries.BookingView{
		ID:      bookingID,
		Booker:  queries.UserRef{ID: bookerID},
		OwnerID: ownerID,
	}

	s.Run("booker may read", func() {
		s.bookings.EXPECT().FindByID(ctx, bookingID).Return(view, nil)

		got, err := s.queries.GetByID(ctx, bookerID, bookingID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("owner may read", func() {
		s.bookings.EXPECT().FindByID(ctx, bookingID).Return(view, nil)

		_, err := s.queries.GetByID(ctx, ownerID, bookingID)
		s.Require().NoError(err)
	})

	s.Run("third party is denied", func() {
		s.bookings.EXPECT().FindByID(ctx, bookingID).Return(view, nil)

		_, err := s.queries.GetByID(ctx, uuid.New(), bookingID)
		s.Require().ErrorIs(err, queries.ErrAccessDenied)
	})
}

func (s *BookingQueriesTestSuite) TestList() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("valid state reaches the store with the shared now", func() {
		expected := []*queries.BookingView{{ID: uuid.New()}}

		s.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		s.bookings.EXPECT().
			ListByRole(ctx, queries.RoleBooker, userID, booking.StateFuture, testNow,
				queries.Page{Offset: 0, Limit: testLimits.DefaultSize}).
			Return(expected, nil)

		got, err := s.queries.List(ctx, queries.RoleBooker, userID, "FUTURE", queries.Page{})
		s.Require().NoError(err)
		s.Equal(expected, got)
	})

	s.Run("owner role passes through", func() {
		s.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		s.bookings.EXPECT().
			ListByRole(ctx, queries.RoleOwner, userID, booking.StateAll, testNow, gomock.Any()).
			Return([]*queries.BookingView{}, nil)

		_, err := s.queries.List(ctx, queries.RoleOwner, userID, "ALL", queries.Page{})
		s.Require().NoError(err)
	})

	s.Run("unknown state is rejected before any store call", func() {
		_, err := s.queries.List(ctx, queries.RoleBooker, userID, "SOMETIMES", queries.Page{})
		s.Require().ErrorIs(err, queries.ErrUnsupportedState)
	})

	s.Run("unknown user", func() {
		s.users.EXPECT().Exists(ctx, userID).Return(false, nil)

		_, err := s.queries.List(ctx, queries.RoleBooker, userID, "ALL", queries.Page{})
		s.Require().ErrorIs(err, queries.ErrUserNotFound)
	})

	s.Run("page size is clamped", func() {
		s.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		s.bookings.EXPECT().
			ListByRole(ctx, queries.RoleBooker, userID, booking.StateAll, testNow,
				queries.Page{Offset: 40, Limit: testLimits.MaxSize}).
			Return([]*queries.BookingView{}, nil)

		_, err := s.queries.List(ctx, queries.RoleBooker, userID, "ALL",
			queries.Page{Offset: 40, Limit: testLimits.MaxSize + 500})
		s.Require().NoError(err)
	})
}
