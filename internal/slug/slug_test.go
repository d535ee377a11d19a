package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "newcastle", "newcastle"},
		{"mixed case", "Newcastle Upon Tyne", "newcastle-upon-tyne"},
		{"punctuation", "St. Mary's & Co.", "st-mary-s-co"},
		{"leading and trailing junk", "  --Hello World--  ", "hello-world"},
		{"repeated separators", "a  -  b", "a-b"},
		{"digits preserved", "Area 51 Kennels", "area-51-kennels"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeOutputIsAlwaysValid(t *testing.T) {
	inputs := []string{"Newcastle", "a   b   c", "UPPER", "trailing-", "-leading", "ü ber weird"}
	for _, in := range inputs {
		got := Make(in)
		if got != "" {
			assert.True(t, IsValid(got), "Make(%q) = %q is not canonical", in, got)
		}
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{"newcastle": true}
	inScope := func(s string) bool { return taken[s] }

	s, err := Unique("Sydney", inScope)
	require.NoError(t, err)
	assert.Equal(t, "sydney", s)

	// Deterministic: same input, same scope, same result.
	again, err := Unique("Sydney", inScope)
	require.NoError(t, err)
	assert.Equal(t, s, again)

	// Collision signals the caller; no silent suffixing.
	_, err = Unique("Newcastle", inScope)
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	// Input that reduces to nothing is rejected.
	_, err = Unique("???", inScope)
	assert.ErrorIs(t, err, ErrEmptySlug)

	// A nil scope check means an unconstrained scope.
	s, err = Unique("Newcastle", nil)
	require.NoError(t, err)
	assert.Equal(t, "newcastle", s)
}

func TestIsLegacy(t *testing.T) {
	assert.True(t, IsLegacy("about-foo"))
	assert.True(t, IsLegacy("about-"))
	assert.False(t, IsLegacy("regular-article"))
	assert.False(t, IsLegacy("not-about-foo"))
	assert.False(t, IsLegacy(""))
}
