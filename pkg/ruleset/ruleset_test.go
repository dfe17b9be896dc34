package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeghosst/neovalidate/pkg/ruleset"
	"github.com/pokeghosst/neovalidate/pkg/validate"
)

func TestParseStaticDocument(t *testing.T) {
	constraints, err := ruleset.Parse([]byte(`
username:
  presence: true
  length:
    minimum: 3
age:
  numericality:
    onlyInteger: true
`))
	require.NoError(t, err)
	require.Len(t, constraints, 2)

	result, err := validate.Validate(map[string]any{"username": "ab", "age": 3.5}, constraints, &validate.Options{Format: "flat"})
	require.NoError(t, err)
	assert.Equal(t, []any{
		"Age must be an integer",
		"Username is too short (minimum is 3 characters)",
	}, result)

	result, err = validate.Validate(map[string]any{"username": "bob", "age": 30}, constraints, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestParseWhenCondition(t *testing.T) {
	constraints, err := ruleset.Parse([]byte(`
company:
  $when: 'attributes.accountType == "business"'
  presence: true
`))
	require.NoError(t, err)

	t.Run("rule applies while the condition holds", func(t *testing.T) {
		result, err := validate.Validate(map[string]any{"accountType": "business"}, constraints, &validate.Options{Format: "flat"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Company can't be blank"}, result)
	})

	t.Run("rule is skipped otherwise", func(t *testing.T) {
		result, err := validate.Validate(map[string]any{"accountType": "personal"}, constraints, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestParseComputedOptions(t *testing.T) {
	t.Run("expression leaf evaluated per call", func(t *testing.T) {
		constraints, err := ruleset.Parse([]byte(`
quantity:
  numericality:
    lessThanOrEqualTo:
      $expr: attributes.stock
`))
		require.NoError(t, err)

		result, err := validate.Validate(map[string]any{"quantity": 5, "stock": 3}, constraints, &validate.Options{Format: "flat"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Quantity must be less than or equal to 3"}, result)

		result, err = validate.Validate(map[string]any{"quantity": 5, "stock": 10}, constraints, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("static siblings survive alongside computed leaves", func(t *testing.T) {
		constraints, err := ruleset.Parse([]byte(`
quantity:
  numericality:
    greaterThan: 0
    lessThanOrEqualTo:
      $expr: attributes.stock
`))
		require.NoError(t, err)

		result, err := validate.Validate(map[string]any{"quantity": -1, "stock": 10}, constraints, &validate.Options{Format: "flat"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Quantity must be greater than 0"}, result)
	})

	t.Run("value is available to expressions", func(t *testing.T) {
		constraints, err := ruleset.Parse([]byte(`
nickname:
  length:
    maximum:
      $expr: "len(value) > 10 ? 10 : 100"
`))
		require.NoError(t, err)

		result, err := validate.Validate(map[string]any{"nickname": "far too long a nickname"}, constraints, &validate.Options{Format: "flat", FullMessages: validate.Bool(false)})
		require.NoError(t, err)
		assert.Equal(t, []any{"is too long (maximum is 10 characters)"}, result)
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("document must be a mapping", func(t *testing.T) {
		_, err := ruleset.Parse([]byte(`- a`))
		assert.ErrorIs(t, err, ruleset.ErrBadDocument)
	})

	t.Run("rule must be a mapping", func(t *testing.T) {
		_, err := ruleset.Parse([]byte(`username: presence`))
		assert.ErrorIs(t, err, ruleset.ErrBadRule)
	})

	t.Run("when must be a string", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("username:\n  $when: 42\n  presence: true"))
		assert.ErrorIs(t, err, ruleset.ErrBadExpression)
	})

	t.Run("when must compile", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("username:\n  $when: '1 +'\n  presence: true"))
		assert.ErrorIs(t, err, ruleset.ErrBadExpression)
	})

	t.Run("expr must compile", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("username:\n  length:\n    minimum:\n      $expr: '1 +'"))
		assert.ErrorIs(t, err, ruleset.ErrBadExpression)
	})
}

func TestMustParse(t *testing.T) {
	t.Run("returns a usable constraint set", func(t *testing.T) {
		constraints := ruleset.MustParse([]byte("username:\n  presence: true"))
		assert.Len(t, constraints, 1)
	})

	t.Run("panics on a malformed document", func(t *testing.T) {
		assert.Panics(t, func() {
			ruleset.MustParse([]byte(`- a`))
		})
	})
}
