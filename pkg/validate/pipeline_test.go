package validate_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeghosst/neovalidate/pkg/validate"
)

func TestDynamicConstraints(t *testing.T) {
	t.Run("constraint function computes the validator map", func(t *testing.T) {
		constraints := validate.Constraints{
			"discount": validate.ConstraintFunc(func(value any, attributes map[string]any, attribute string, opts *validate.Options, constraints validate.Constraints) validate.Constraint {
				if attributes["member"] == true {
					return validate.Constraint{"numericality": map[string]any{"lessThanOrEqualTo": 50}}
				}
				return validate.Constraint{"numericality": map[string]any{"equalTo": 0}}
			}),
		}

		result, err := validate.Validate(map[string]any{"member": false, "discount": 10}, constraints, &validate.Options{Format: "flat"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Discount must be equal to 0"}, result)

		result, err = validate.Validate(map[string]any{"member": true, "discount": 10}, constraints, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("options function computes validator options", func(t *testing.T) {
		constraints := validate.Constraints{
			"age": validate.Constraint{
				"numericality": validate.OptionsFunc(func(value any, attributes map[string]any, attribute string, opts *validate.Options, constraints validate.Constraints) any {
					return map[string]any{"greaterThanOrEqualTo": attributes["minAge"]}
				}),
			},
		}

		result, err := validate.Validate(map[string]any{"age": 16, "minAge": 18}, constraints, &validate.Options{Format: "flat"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Age must be greater than or equal to 18"}, result)
	})

	t.Run("falsy resolved options skip the validator", func(t *testing.T) {
		for _, falsy := range []any{nil, false} {
			result, err := validate.Validate(map[string]any{}, validate.Constraints{
				"name": validate.Constraint{"presence": falsy},
			}, nil)
			require.NoError(t, err)
			assert.Nil(t, result)
		}
	})

	t.Run("options function resolving falsy skips the validator", func(t *testing.T) {
		result, err := validate.Validate(map[string]any{}, validate.Constraints{
			"name": validate.Constraint{
				"presence": validate.OptionsFunc(func(value any, attributes map[string]any, attribute string, opts *validate.Options, constraints validate.Constraints) any {
					return nil
				}),
			},
		}, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("constraint that is neither map nor function errors", func(t *testing.T) {
		_, err := validate.Validate(map[string]any{}, validate.Constraints{
			"name": "presence",
		}, nil)
		assert.ErrorIs(t, err, validate.ErrBadConstraint)
	})
}

func TestCleanAttributes(t *testing.T) {
	t.Run("keeps only constrained keys", func(t *testing.T) {
		cleaned := validate.CleanAttributes(map[string]any{
			"name":  "x",
			"extra": "y",
		}, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		})
		assert.Equal(t, map[string]any{"name": "x"}, cleaned)
	})

	t.Run("keeps nested keypath keys", func(t *testing.T) {
		cleaned := validate.CleanAttributes(map[string]any{
			"address": map[string]any{
				"city":    "Stockholm",
				"country": "Sweden",
			},
			"other": 1,
		}, validate.Constraints{
			"address.city": validate.Constraint{"presence": true},
		})
		assert.Equal(t, map[string]any{"address": map[string]any{"city": "Stockholm"}}, cleaned)
	})

	t.Run("whole subtree survives when the parent is constrained", func(t *testing.T) {
		cleaned := validate.CleanAttributes(map[string]any{
			"address": map[string]any{"city": "Stockholm"},
		}, validate.Constraints{
			"address": validate.Constraint{"presence": true},
		})
		assert.Equal(t, map[string]any{"address": map[string]any{"city": "Stockholm"}}, cleaned)
	})

	t.Run("returns a deep copy", func(t *testing.T) {
		original := map[string]any{"address": map[string]any{"city": "Stockholm"}}
		cleaned := validate.CleanAttributes(original, validate.Constraints{
			"address": validate.Constraint{"presence": true},
		})

		cleaned["address"].(map[string]any)["city"] = "Oslo"
		assert.Equal(t, "Stockholm", original["address"].(map[string]any)["city"])
	})
}

type profileForm struct {
	name string
}

func (f profileForm) ValidationAttributes() map[string]any {
	return map[string]any{"name": f.name}
}

func TestFormCollection(t *testing.T) {
	t.Run("url.Values are collected automatically", func(t *testing.T) {
		form := url.Values{"name": {""}}

		result, err := validate.Validate(form, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, &validate.Options{Format: "flat"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Name can't be blank"}, result)
	})

	t.Run("nullify disabled keeps empty strings present", func(t *testing.T) {
		form := url.Values{"name": {""}}

		result, err := validate.Validate(form, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, &validate.Options{Nullify: validate.Bool(false)})
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("attribute sources supply their own map", func(t *testing.T) {
		result, err := validate.Validate(profileForm{name: "ok"}, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("unusable attributes argument errors", func(t *testing.T) {
		_, err := validate.Validate(42, validate.Constraints{
			"name": validate.Constraint{"presence": true},
		}, nil)
		assert.ErrorIs(t, err, validate.ErrBadAttributes)
	})
}

func TestFromURLValues(t *testing.T) {
	t.Run("dotted field names nest", func(t *testing.T) {
		attrs := validate.FromURLValues(url.Values{"address.city": {"Stockholm"}}, true)
		assert.Equal(t, map[string]any{"address": map[string]any{"city": "Stockholm"}}, attrs)
	})

	t.Run("repeated fields collect into a slice", func(t *testing.T) {
		attrs := validate.FromURLValues(url.Values{"tags": {"a", "b"}}, true)
		assert.Equal(t, map[string]any{"tags": []any{"a", "b"}}, attrs)
	})

	t.Run("nullify turns empty strings into nil", func(t *testing.T) {
		attrs := validate.FromURLValues(url.Values{"name": {""}}, true)
		assert.Equal(t, map[string]any{"name": nil}, attrs)
	})
}
