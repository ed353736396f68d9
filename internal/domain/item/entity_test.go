//go:build unit

package item_test

import (
	"strings"
	"testing"

	"gearshare/internal/domain/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewItem(t *testing.T) {
	ownerID := uuid.New()

	t.Run("valid item", func(t *testing.T) {
		itm, err := item.NewItem(ownerID, "  Drill  ", "Cordless power drill", true, nil)
		require.NoError(t, err)

		assert.Equal(t, "Drill", itm.Name(), "name is trimmed")
		assert.Equal(t, ownerID, itm.OwnerID())
		assert.Nil(t, itm.RequestID())
		assert.True(t, itm.Available())
		assert.True(t, itm.IsOwnedBy(ownerID))
		assert.False(t, itm.IsOwnedBy(uuid.New()))
	})

	t.Run("item answering a request keeps the link", func(t *testing.T) {
		requestID := uuid.New()
		itm, err := item.NewItem(ownerID, "Ladder", "Three meter ladder", true, &requestID)
		require.NoError(t, err)

		require.NotNil(t, itm.RequestID())
		assert.Equal(t, requestID, *itm.RequestID())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := item.NewItem(ownerID, "   ", "desc", true, nil)
		require.ErrorIs(t, err, item.ErrEmptyName)
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := item.NewItem(ownerID, "Drill", "", true, nil)
		require.ErrorIs(t, err, item.ErrEmptyDescription)
	})
}

func TestItemPatch(t *testing.T) {
	newItem := func(t *testing.T) *item.Item {
		t.Helper()
		itm, err := item.NewItem(uuid.New(), "Drill", "Cordless power drill", true, nil)
		require.NoError(t, err)
		return itm
	}

	t.Run("nil fields untouched", func(t *testing.T) {
		itm := newItem(t)
		require.NoError(t, itm.Patch(nil, nil, nil))

		assert.Equal(t, "Drill", itm.Name())
		assert.Equal(t, "Cordless power drill", itm.Description())
		assert.True(t, itm.Available())
	})

	t.Run("partial update", func(t *testing.T) {
		itm := newItem(t)
		require.NoError(t, itm.Patch(strPtr("Hammer drill"), nil, boolPtr(false)))

		assert.Equal(t, "Hammer drill", itm.Name())
		assert.Equal(t, "Cordless power drill", itm.Description())
		assert.False(t, itm.Available())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		itm := newItem(t)
		require.ErrorIs(t, itm.Patch(strPtr("  "), nil, nil), item.ErrEmptyName)
		assert.Equal(t, "Drill", itm.Name())
	})

	t.Run("blank description rejected", func(t *testing.T) {
		itm := newItem(t)
		require.ErrorIs(t, itm.Patch(nil, strPtr(""), nil), item.ErrEmptyDescription)
	})
}

func TestNewComment(t *testing.T) {
	itemID := uuid.New()
	authorID := uuid.New()

	t.Run("valid comment", func(t *testing.T) {
		c, err := item.NewComment(itemID, authorID, "  Worked great  ")
		require.NoError(t, err)
		assert.Equal(t, "Worked great", c.Text())
		assert.Equal(t, itemID, c.ItemID())
		assert.Equal(t, authorID, c.AuthorID())
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := item.NewComment(itemID, authorID, "   ")
		require.ErrorIs(t, err, item.ErrEmptyComment)
	})

	t.Run("maximum length", func(t *testing.T) {
		_, err := item.NewComment(itemID, authorID, strings.Repeat("a", item.MaxCommentLength))
		require.NoError(t, err)
	})

	t.Run("over maximum length", func(t *testing.T) {
		_, err := item.NewComment(itemID, authorID, strings.Repeat("a", item.MaxCommentLength+1))
		require.ErrorIs(t, err, item.ErrCommentTooLong)
	})
}
