package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokeghosst/neovalidate/pkg/format"
)

func TestSprintf(t *testing.T) {
	t.Run("substitutes named placeholders", func(t *testing.T) {
		got := format.Sprintf("must be greater than %{count}", map[string]string{"count": "5"})
		assert.Equal(t, "must be greater than 5", got)
	})

	t.Run("substitutes multiple placeholders", func(t *testing.T) {
		got := format.Sprintf("%{a} and %{b}", map[string]string{"a": "x", "b": "y"})
		assert.Equal(t, "x and y", got)
	})

	t.Run("doubled percent escapes the placeholder", func(t *testing.T) {
		got := format.Sprintf("literal %%{value} here", map[string]string{"value": "nope"})
		assert.Equal(t, "literal %{value} here", got)
	})

	t.Run("unbound placeholder is left untouched", func(t *testing.T) {
		got := format.Sprintf("hello %{name}", nil)
		assert.Equal(t, "hello %{name}", got)
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Foo bar", format.Capitalize("foo bar"))
	assert.Equal(t, "Foo", format.Capitalize("Foo"))
	assert.Equal(t, "", format.Capitalize(""))
	assert.Equal(t, "Åland", format.Capitalize("åland"))
}

func TestPrettify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"snake case", "shipping_address", "shipping address"},
		{"camel case", "customerAge", "customer age"},
		{"keypath dots become spaces", "addresses.work.city", "addresses work city"},
		{"backslashes are removed", `a\.b`, "a b"},
		{"dashes become spaces", "first-name", "first name"},
		{"integer", 42, "42"},
		{"whole float stays short", 3.0, "3"},
		{"fractional float rounds to two decimals", 3.14159, "3.14"},
		{"slice joins with commas", []any{"foo_bar", 3}, "foo bar, 3"},
		{"bool", true, "true"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Prettify(tt.value))
		})
	}

	t.Run("map falls back to JSON", func(t *testing.T) {
		assert.JSONEq(t, `{"a":1}`, format.Prettify(map[string]any{"a": 1}))
	})
}
