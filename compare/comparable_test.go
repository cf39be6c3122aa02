package compare

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// version orders by major then minor.
type version struct {
	Major int
	Minor int
}

func (v version) Equals(other version) bool {
	return v == other
}

func (v version) Compare(other version) int {
	switch {
	case v.Major != other.Major:
		return v.Major - other.Major
	default:
		return v.Minor - other.Minor
	}
}

// foldedString compares case-insensitively, so Equals and == disagree.
type foldedString string

func (s foldedString) Equals(other foldedString) bool {
	return strings.EqualFold(string(s), string(other))
}

func (s foldedString) Compare(other foldedString) int {
	return strings.Compare(strings.ToLower(string(s)), strings.ToLower(string(other)))
}

func TestEquals_Function(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        foldedString
		b        foldedString
		expected bool
	}{
		{
			name:     "identical",
			a:        "hello",
			b:        "hello",
			expected: true,
		},
		{
			name:     "differs only by case",
			a:        "Hello",
			b:        "hELLO",
			expected: true,
		},
		{
			name:     "different strings",
			a:        "hello",
			b:        "world",
			expected: false,
		},
		{
			name:     "empty strings",
			a:        "",
			b:        "",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals(tt.a, tt.b))
		})
	}
}

func TestCompare_Function(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    version
		b    version
		sign int
	}{
		{name: "equal", a: version{1, 2}, b: version{1, 2}, sign: 0},
		{name: "minor before", a: version{1, 2}, b: version{1, 3}, sign: -1},
		{name: "major after", a: version{2, 0}, b: version{1, 9}, sign: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Compare(tt.a, tt.b)

			switch tt.sign {
			case -1:
				assert.Negative(t, got)
				assert.True(t, Less(tt.a, tt.b))
			case 1:
				assert.Positive(t, got)
				assert.False(t, Less(tt.a, tt.b))
			default:
				assert.Zero(t, got)
				assert.False(t, Less(tt.a, tt.b))
			}
		})
	}
}

func TestCompare_SortFunc(t *testing.T) {
	t.Parallel()

	versions := []version{{2, 1}, {1, 0}, {1, 10}, {0, 9}}

	slices.SortFunc(versions, Compare[version])

	assert.Equal(t, []version{{0, 9}, {1, 0}, {1, 10}, {2, 1}}, versions)
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	t.Run("single value", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, version{3, 3}, Min(version{3, 3}))
		assert.Equal(t, version{3, 3}, Max(version{3, 3}))
	})

	t.Run("several values", func(t *testing.T) {
		t.Parallel()

		vs := []version{{1, 5}, {0, 2}, {4, 0}, {1, 1}}

		assert.Equal(t, version{0, 2}, Min(vs[0], vs[1:]...))
		assert.Equal(t, version{4, 0}, Max(vs[0], vs[1:]...))
	})

	t.Run("ties keep the first", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, foldedString("ABC"), Min[foldedString]("ABC", "abc", "zzz"))
		assert.Equal(t, foldedString("Zz"), Max[foldedString]("Zz", "abc", "zZ"))
	})
}
