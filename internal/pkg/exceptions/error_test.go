package exceptions

import (
	"errors"
	"mindcheck-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("wraps a plain error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrMongoDBFindDocument(cause, constvars.MongoCollectionUsers)

		assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
		assert.Equal(t, "failed to find document in collection users: connection refused", err.DevMessage)
		require.Len(t, err.Locations, 1)
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("keeps the inner locations", func(t *testing.T) {
		inner := ErrUserNotExist(nil)
		outer := ErrServerDeadlineExceeded(inner)

		assert.Equal(t, constvars.StatusGatewayTimeout, outer.StatusCode)
		assert.Len(t, outer.Locations, 2)
		assert.Equal(t, "server deadline exceeded: "+constvars.ErrDevUserNotExists, outer.DevMessage)

		var target *CustomError
		require.True(t, errors.As(error(outer), &target))
	})

	t.Run("nil error keeps the dev message", func(t *testing.T) {
		err := ErrNotMatchRoleType(nil)
		assert.Equal(t, constvars.StatusForbidden, err.StatusCode)
		assert.Equal(t, constvars.ErrDevRoleTypeDoesntMatch, err.DevMessage)
		assert.Contains(t, err.Error(), constvars.ErrDevRoleTypeDoesntMatch)
	})
}

func TestWrapWithoutError(t *testing.T) {
	err := WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	assert.Equal(t, constvars.StatusUnauthorized, err.StatusCode)
	require.Len(t, err.Locations, 1)
	assert.Contains(t, err.Locations[0].FunctionName, "TestWrapWithoutError")
}

func TestFormatFirstValidationError(t *testing.T) {
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(errors.New("boom")))
}
