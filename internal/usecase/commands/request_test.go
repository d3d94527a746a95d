//go:build unit

package commands_test

import (
	"context"
	"testing"

	domrequest "shareit/internal/domain/itemrequest"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCreate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	requestor := e.createUser(t, "Requestor", "requestor@example.com")

	t.Run("success", func(t *testing.T) {
		res, err := e.requests.Create(ctx, requestor, commands.CreateRequestRequest{Description: "Need a ladder"})
		require.NoError(t, err)
		assert.Positive(t, res.RequestID)
	})

	t.Run("unknown requestor", func(t *testing.T) {
		_, err := e.requests.Create(ctx, 999, commands.CreateRequestRequest{Description: "Need a ladder"})
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := e.requests.Create(ctx, requestor, commands.CreateRequestRequest{Description: " "})
		assert.ErrorIs(t, err, domrequest.ErrEmptyDescription)
	})
}
