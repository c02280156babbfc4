package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panjichuan/gempy/label"
)

// TestFaultPairs_Two checks the documented two-fault id layout.
func TestFaultPairs_Two(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, label.FaultPairs(2))
	assert.Empty(t, label.FaultPairs(0))
}

// TestFaultCombinations_Two excludes same-block selections and keeps the
// documented order.
func TestFaultCombinations_Two(t *testing.T) {
	got, err := label.FaultCombinations(label.FaultPairs(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0101", "1001", "0110", "1010"}, got)
	assert.NotContains(t, got, "0011")
	assert.NotContains(t, got, "1100")
}

// TestFaultCombinations_Three selects exactly one id per block.
func TestFaultCombinations_Three(t *testing.T) {
	got, err := label.FaultCombinations(label.FaultPairs(3))
	require.NoError(t, err)
	require.Len(t, got, 8)
	for _, s := range got {
		lab, err := label.ParseBinary(s)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			lo, hi := lab.Has(2*i), lab.Has(2*i+1)
			assert.True(t, lo != hi, "%s block %d", s, i)
		}
	}
	assert.Equal(t, "010101", got[0])
	assert.Equal(t, "101010", got[7])
}

// TestFaultCombinations_Edges covers zero pairs and invalid ids.
func TestFaultCombinations_Edges(t *testing.T) {
	got, err := label.FaultCombinations(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got)

	_, err = label.FaultCombinations([][2]int{{0, 0}})
	assert.ErrorIs(t, err, label.ErrBadFaultPairs)
	_, err = label.FaultCombinations([][2]int{{0, 2}})
	assert.ErrorIs(t, err, label.ErrBadFaultPairs)
}

// TestLithologyPatterns_Five checks the one-hot strings.
func TestLithologyPatterns_Five(t *testing.T) {
	assert.Equal(t,
		[]string{"00001", "00010", "00100", "01000", "10000"},
		label.LithologyPatterns(5))
}

// TestNewSpace_Order concatenates lithology patterns and fault combinations.
func TestNewSpace_Order(t *testing.T) {
	l, err := label.NewLayout(label.Disjoint, 2, 5)
	require.NoError(t, err)
	s, err := label.NewSpace(l)
	require.NoError(t, err)
	require.Equal(t, 20, s.Len())

	liths := label.LithologyPatterns(5)
	combos, err := label.FaultCombinations(label.FaultPairs(2))
	require.NoError(t, err)

	want := make([]string, 0, 20)
	for _, lp := range liths {
		for _, fc := range combos {
			want = append(want, lp+fc)
		}
	}
	assert.Equal(t, want, s.Strings())

	for i, lab := range s.Labels() {
		j, ok := s.Index(lab)
		require.True(t, ok)
		assert.Equal(t, i, j)
		assert.Equal(t, lab, s.At(i))
		assert.Equal(t, 3, lab.OnesCount())
	}
	_, ok := s.Index(0b11)
	assert.False(t, ok)
}

// TestNewSpace_OverlappingCollides reports the shared-bit collision.
func TestNewSpace_OverlappingCollides(t *testing.T) {
	one, err := label.NewLayout(label.Overlapping, 1, 3)
	require.NoError(t, err)
	s, err := label.NewSpace(one)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	two, err := label.NewLayout(label.Overlapping, 2, 3)
	require.NoError(t, err)
	_, err = label.NewSpace(two)
	assert.ErrorIs(t, err, label.ErrEncodingCollision)
}
