//go:build unit

package request_test

import (
	"testing"

	"gearshare/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	requesterID := uuid.New()

	t.Run("valid request", func(t *testing.T) {
		req, err := request.NewRequest(requesterID, "  Need a ladder for the weekend  ")
		require.NoError(t, err)

		assert.Equal(t, "Need a ladder for the weekend", req.Description(), "description is trimmed")
		assert.Equal(t, requesterID, req.RequesterID())
		assert.NotEqual(t, uuid.Nil, req.ID())
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := request.NewRequest(requesterID, "   ")
		require.ErrorIs(t, err, request.ErrEmptyDescription)
	})
}
