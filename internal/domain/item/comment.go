package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyComment = errors.New("comment text must not be empty")

const MaxCommentLength = 1000

var ErrCommentTooLong = errors.New("comment text too long")

// Comment is feedback left on an item by a booker who has completed a
// booking. The completed-booking gate runs in the usecase layer.
type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      string
	createdAt time.Time
}

func NewComment(itemID, authorID uuid.UUID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	if len(text) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     text,
	}, nil
}

func ReconstructComment(id, itemID, authorID uuid.UUID, text string, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
