package queries

import (
	"time"

	"github.com/google/uuid"
)

// Role scopes a booking query to the user as booker or as item owner. The two
// views are symmetric; only the foreign key they filter on differs.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)

// Page carries offset/limit pagination. Zero values mean "first page,
// default size"; normalization happens in the usecase.
type Page struct {
	Offset int32
	Limit  int32
}

// ItemRef is the booking view's embedded item summary.
type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserRef is the booking view's embedded booker summary.
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingView is the read model for a single booking.
type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Item      ItemRef   `json:"item"`
	Booker    UserRef   `json:"booker"`
	OwnerID   uuid.UUID `json:"-"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingRef is the short projection of an approved booking shown on item
// views.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// LastNext pairs an item's most recent started and soonest upcoming approved
// bookings relative to some now. Either side may be absent.
type LastNext struct {
	Last *BookingRef
	Next *BookingRef
}

// CommentView is the read model for an item comment.
type CommentView struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ItemView is the read model for an item detail or owner listing.
type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"ownerId"`
	RequestID   *uuid.UUID    `json:"requestId,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	Last        *BookingRef   `json:"lastBooking,omitempty"`
	Next        *BookingRef   `json:"nextBooking,omitempty"`
	Comments    []CommentView `json:"comments"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// RequestItemRef is the short form of an item answering a request.
type RequestItemRef struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
}

// RequestView is the read model for a gear request with the items answering
// it.
type RequestView struct {
	ID          uuid.UUID        `json:"id"`
	RequesterID uuid.UUID        `json:"requesterId"`
	Description string           `json:"description"`
	Items       []RequestItemRef `json:"items"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// UserView is the read model for an account.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
