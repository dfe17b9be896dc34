package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeghosst/neovalidate/pkg/async"
	"github.com/pokeghosst/neovalidate/pkg/validate"
)

// pendingValidator resolves asynchronously with the configured signal or
// error.
func pendingValidator(signal validate.Signal, err error) *validate.Validator {
	return &validate.Validator{
		Fn: func(v *validate.Validator, value any, options any, attribute string, attributes map[string]any, opts *validate.Options) (validate.Signal, error) {
			if err != nil {
				return validate.Pending{Future: async.Failed[validate.Signal](err)}, nil
			}
			return validate.Pending{Future: async.Resolved(signal)}, nil
		},
	}
}

func TestValidateAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves with the attributes on success", func(t *testing.T) {
		attrs, err := validate.ValidateAsync(ctx, map[string]any{"name": "x"}, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, nil).Await()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "x"}, attrs)
	})

	t.Run("cleans unconstrained attributes by default", func(t *testing.T) {
		attrs, err := validate.ValidateAsync(ctx, map[string]any{"name": "x", "extra": 1}, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, nil).Await()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "x"}, attrs)
	})

	t.Run("cleaning can be disabled", func(t *testing.T) {
		attrs, err := validate.ValidateAsync(ctx, map[string]any{"name": "x", "extra": 1}, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, &validate.Options{CleanAttributes: validate.Bool(false)}).Await()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "x", "extra": 1}, attrs)
	})

	t.Run("fails with the rendered result on validation errors", func(t *testing.T) {
		_, err := validate.ValidateAsync(ctx, map[string]any{}, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, nil).Await()
		require.Error(t, err)

		verr := validate.ExtractErrors(err)
		require.NotNil(t, verr)
		assert.Equal(t, map[string][]any{"name": {"Name can't be blank"}}, verr.Rendered)
		require.Len(t, verr.Details, 1)
		assert.Equal(t, "presence", verr.Details[0].Validator)
	})

	t.Run("pending futures settle before normalization", func(t *testing.T) {
		r := validate.NewRegistry()
		r.RegisterValidator("taken", pendingValidator(validate.Message("is already taken"), nil))

		_, err := r.ValidateAsync(ctx, map[string]any{"username": "bob"}, validate.Constraints{
			"username": validate.Constraint{"taken": true},
		}, nil).Await()
		require.Error(t, err)

		verr := validate.ExtractErrors(err)
		require.NotNil(t, verr)
		assert.Equal(t, map[string][]any{"username": {"Username is already taken"}}, verr.Rendered)
	})

	t.Run("pending futures resolving nil pass", func(t *testing.T) {
		r := validate.NewRegistry()
		r.RegisterValidator("taken", pendingValidator(nil, nil))

		attrs, err := r.ValidateAsync(ctx, map[string]any{"username": "bob"}, validate.Constraints{
			"username": validate.Constraint{"taken": true},
		}, nil).Await()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"username": "bob"}, attrs)
	})

	t.Run("future errors propagate as the coordinator's error", func(t *testing.T) {
		boom := errors.New("lookup failed")

		r := validate.NewRegistry()
		r.RegisterValidator("taken", pendingValidator(nil, boom))

		_, err := r.ValidateAsync(ctx, map[string]any{"username": "bob"}, validate.Constraints{
			"username": validate.Constraint{"taken": true},
		}, nil).Await()
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, validate.ExtractErrors(err))
	})

	t.Run("wrapErrors rewraps the validation failure", func(t *testing.T) {
		wrapped := errors.New("wrapped")

		_, err := validate.ValidateAsync(ctx, map[string]any{}, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, &validate.Options{
			WrapErrors: func(verr *validate.Errors) error {
				return wrapped
			},
		}).Await()
		assert.ErrorIs(t, err, wrapped)
	})

	t.Run("configuration errors fail the future unchanged", func(t *testing.T) {
		_, err := validate.ValidateAsync(ctx, map[string]any{}, validate.Constraints{
			"name": validate.Constraint{"bogus": true},
		}, nil).Await()
		assert.ErrorIs(t, err, validate.ErrUnknownValidator)
	})

	t.Run("canceled context fails the future", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := validate.ValidateAsync(canceled, map[string]any{}, validate.Constraints{}, nil).Await()
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSyncRejectsPending(t *testing.T) {
	r := validate.NewRegistry()
	r.RegisterValidator("taken", pendingValidator(validate.Message("is already taken"), nil))

	_, err := r.Validate(map[string]any{"username": "bob"}, validate.Constraints{
		"username": validate.Constraint{"taken": true},
	}, nil)
	require.ErrorIs(t, err, validate.ErrAsyncValidator)

	var cerr *validate.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "taken", cerr.Validator)
}
