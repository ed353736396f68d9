//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	bookings *commandsmock.MockBookingRepository
	items    *commandsmock.MockItemRepository
	users    *commandsmock.MockUserRepository
	schedule *commandsmock.MockScheduleReader
	reads    *queriesmock.MockBookingReadStore
	clock    *clock.MockClock
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = commandsmock.NewMockBookingRepository(s.ctrl)
	s.items = commandsmock.NewMockItemRepository(s.ctrl)
	s.users = commandsmock.NewMockUserRepository(s.ctrl)
	s.schedule = commandsmock.NewMockScheduleReader(s.ctrl)
	s.reads = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.clock = clock.NewMockClock(testNow)

	uow := testutil.ImmediateUoW{Tx: testutil.StubTx{
		BookingsRepo: s.bookings,
		ItemsRepo:    s.items,
		UsersRepo:    s.users,
		ScheduleRepo: s.schedule,
	}}
	s.commands = commands.NewBookingCommands(uow, s.reads, s.clock)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) newItem(ownerID uuid.UUID, available bool) *item.Item {
	itm, err := item.NewItem(ownerID, "Drill", "Cordless power drill", available, nil)
	require.NoError(s.T(), err)
	return itm
}

func (s *BookingCommandsTestSuite) interval(startMin, endMin int) booking.Interval {
	return booking.ReconstructInterval(
		testNow.Add(time.Duration(startMin)*time.Minute),
		testNow.Add(time.Duration(endMin)*time.Minute),
	)
}

func (s *BookingCommandsTestSuite) input(itm *item.Item, startMin, endMin int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ItemID: itm.ID(),
		Start:  testNow.Add(time.Duration(startMin) * time.Minute),
		End:    testNow.Add(time.Duration(endMin) * time.Minute),
	}
}

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	bookerID := uuid.New()
	ownerID := uuid.New()

	s.Run("success against free schedule", func() {
		itm := s.newItem(ownerID, true)
		view := &queries.BookingView{Status: booking.StatusWaiting.String()}

		s.users.EXPECT().FindByID(ctx, bookerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		s.bookings.EXPECT().LockItemSchedule(ctx, itm.ID()).Return(nil)
		s.schedule.EXPECT().BlockingIntervals(ctx, itm.ID(), testNow).
			Return([]booking.Interval{s.interval(120, 180)}, nil)
		s.bookings.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		s.reads.EXPECT().FindByID(ctx, gomock.Any()).Return(view, nil)

		got, err := s.commands.Create(ctx, bookerID, s.input(itm, 30, 90))
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("booker owns the item", func() {
		itm := s.newItem(bookerID, true)

		s.users.EXPECT().FindByID(ctx, bookerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := s.commands.Create(ctx, bookerID, s.input(itm, 30, 90))
		s.Require().ErrorIs(err, commands.ErrSelfBooking)
	})

	s.Run("item flagged unavailable", func() {
		itm := s.newItem(ownerID, false)

		s.users.EXPECT().FindByID(ctx, bookerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := s.commands.Create(ctx, bookerID, s.input(itm, 30, 90))
		s.Require().ErrorIs(err, commands.ErrItemUnavailable)
	})

	s.Run("invalid interval", func() {
		itm := s.newItem(ownerID, true)

		s.users.EXPECT().FindByID(ctx, bookerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := s.commands.Create(ctx, bookerID, s.input(itm, 90, 90))
		s.Require().ErrorIs(err, commands.ErrInvalidInterval)
	})

	s.Run("start in the past", func() {
		itm := s.newItem(ownerID, true)

		s.users.EXPECT().FindByID(ctx, bookerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := s.commands.Create(ctx, bookerID, s.input(itm, -30, 90))
		s.Require().ErrorIs(err, commands.ErrInvalidInterval)
	})

	s.Run("overlapping interval on the schedule", func() {
		itm := s.newItem(ownerID, true)

		s.users.EXPECT().FindByID(ctx, bookerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		s.bookings.EXPECT().LockItemSchedule(ctx, itm.ID()).Return(nil)
		s.schedule.EXPECT().BlockingIntervals(ctx, itm.ID(), testNow).
			Return([]booking.Interval{s.interval(0, 60)}, nil)

		_, err := s.commands.Create(ctx, bookerID, s.input(itm, 30, 45))
		s.Require().ErrorIs(err, commands.ErrDateConflict)
	})
}

func (s *BookingCommandsTestSuite) TestDecide() {
	ctx := context.Background()
	ownerID := uuid.New()
	bookerID := uuid.New()

	newWaiting := func(itm *item.Item) *booking.Booking {
		return booking.NewBooking(itm.ID(), bookerID, s.interval(60, 120))
	}

	s.Run("approve success", func() {
		itm := s.newItem(ownerID, true)
		b := newWaiting(itm)
		view := &queries.BookingView{Status: booking.StatusApproved.String()}

		s.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		s.users.EXPECT().FindByID(ctx, ownerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		s.bookings.EXPECT().LockItemSchedule(ctx, itm.ID()).Return(nil)
		s.schedule.EXPECT().ApprovedIntervals(ctx, itm.ID(), b.ID(), b.Interval().Start()).
			Return(nil, nil)
		s.bookings.EXPECT().
			UpdateStatus(ctx, b.ID(), booking.StatusWaiting, booking.StatusApproved).
			Return(nil)
		s.reads.EXPECT().FindByID(ctx, b.ID()).Return(view, nil)

		got, err := s.commands.Decide(ctx, ownerID, b.ID(), true)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("reject skips the schedule guard", func() {
		itm := s.newItem(ownerID, true)
		b := newWaiting(itm)
		view := &queries.BookingView{Status: booking.StatusRejected.String()}

		s.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		s.users.EXPECT().FindByID(ctx, ownerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		s.bookings.EXPECT().
			UpdateStatus(ctx, b.ID(), booking.StatusWaiting, booking.StatusRejected).
			Return(nil)
		s.reads.EXPECT().FindByID(ctx, b.ID()).Return(view, nil)

		_, err := s.commands.Decide(ctx, ownerID, b.ID(), false)
		s.Require().NoError(err)
	})

	s.Run("non-owner cannot decide", func() {
		itm := s.newItem(ownerID, true)
		b := newWaiting(itm)
		stranger := uuid.New()

		s.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		s.users.EXPECT().FindByID(ctx, stranger).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := s.commands.Decide(ctx, stranger, b.ID(), true)
		s.Require().ErrorIs(err, commands.ErrNotItemOwner)
	})

	s.Run("already decided", func() {
		itm := s.newItem(ownerID, true)
		b := newWaiting(itm)
		s.Require().NoError(b.Decide(true))

		s.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		s.users.EXPECT().FindByID(ctx, ownerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := s.commands.Decide(ctx, ownerID, b.ID(), false)
		s.Require().ErrorIs(err, commands.ErrAlreadyDecided)
	})

	s.Run("approval re-check finds a newer approved overlap", func() {
		itm := s.newItem(ownerID, true)
		b := newWaiting(itm)

		s.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		s.users.EXPECT().FindByID(ctx, ownerID).Return(nil, nil)
		s.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		s.bookings.EXPECT().LockItemSchedule(ctx, itm.ID()).Return(nil)
		s.schedule.EXPECT().ApprovedIntervals(ctx, itm.ID(), b.ID(), b.Interval().Start()).
			Return([]booking.Interval{s.interval(90, 150)}, nil)

		_, err := s.commands.Decide(ctx, ownerID, b.ID(), true)
		s.Require().ErrorIs(err, commands.ErrDateConflict)
	})
}
