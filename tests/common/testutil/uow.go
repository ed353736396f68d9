//go:build unit || e2e

package testutil

import (
	"context"

	"gearshare/internal/usecase/commands"
)

// ImmediateUoW runs the unit-of-work body directly against a stub transaction,
// with no database underneath.
type ImmediateUoW struct {
	Tx commands.Tx
}

func (u ImmediateUoW) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	return fn(ctx, u.Tx)
}

// StubTx hands out whatever repositories the test wired in.
type StubTx struct {
	BookingsRepo commands.BookingRepository
	ItemsRepo    commands.ItemRepository
	UsersRepo    commands.UserRepository
	CommentsRepo commands.CommentRepository
	RequestsRepo commands.RequestRepository
	ScheduleRepo commands.ScheduleReader
}

func (t StubTx) Bookings() commands.BookingRepository { return t.BookingsRepo }
func (t StubTx) Items() commands.ItemRepository       { return t.ItemsRepo }
func (t StubTx) Users() commands.UserRepository       { return t.UsersRepo }
func (t StubTx) Comments() commands.CommentRepository { return t.CommentsRepo }
func (t StubTx) Requests() commands.RequestRepository { return t.RequestsRepo }
func (t StubTx) Schedule() commands.ScheduleReader    { return t.ScheduleRepo }
