package user

import (
	"time"

	"github.com/google/uuid"
)

// User participates in bookings as a booker or as an item owner. There is no
// role attribute; the booker/owner distinction is per query, not per account.
type User struct {
	id           uuid.UUID
	email        Email
	name         Name
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, name Name, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name Name,
	passwordHash string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ChangeEmail(email Email) { u.email = email }
func (u *User) Rename(name Name)        { u.name = name }

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() Name           { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
