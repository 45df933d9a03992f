package fonts

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()
	c := Builtin()

	assert.Len(t, c.All(), 11)
	assert.Equal(t, "Roboto", c.Default().Name)

	f, err := c.Lookup("Patrick Hand")
	require.NoError(t, err)
	assert.Equal(t, "'Patrick Hand', cursive", f.Family)
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()
	_, err := Builtin().Lookup("Comic Sans")
	assert.True(t, errors.Is(err, ErrUnknownFont))
}

func TestFont_StylesheetURL(t *testing.T) {
	t.Parallel()
	c := Builtin()

	sys, err := c.Lookup("Standaard (Sans-Serif)")
	require.NoError(t, err)
	assert.True(t, sys.System())
	assert.Empty(t, sys.StylesheetURL())

	open, err := c.Lookup("Open Sans")
	require.NoError(t, err)
	u := open.StylesheetURL()
	assert.True(t, strings.HasPrefix(u, "https://fonts.googleapis.com/css2?"))
	assert.Contains(t, u, "family=Open+Sans%3Awght%40400%3B700")
	assert.Contains(t, u, "display=swap")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"not yaml":        ":::",
		"empty":           "fonts: []",
		"incomplete":      "fonts:\n  - name: A\n",
		"duplicate":       "fonts:\n  - {name: A, family: serif}\n  - {name: A, family: serif}\n",
		"unknown default": "default: B\nfonts:\n  - {name: A, family: serif}\n",
	}
	for name, doc := range tests {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestWithDefault(t *testing.T) {
	t.Parallel()
	c := Builtin()

	alt, err := c.WithDefault("Lato")
	require.NoError(t, err)
	assert.Equal(t, "Lato", alt.Default().Name)
	assert.Equal(t, "Roboto", c.Default().Name)

	_, err = c.WithDefault("nope")
	assert.Error(t, err)
}
