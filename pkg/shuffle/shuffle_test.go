package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Slice(s)

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)
}

func TestSlice_AllPermutationsReachable(t *testing.T) {
	t.Parallel()

	// 3 elements have 6 permutations; over enough runs each one
	// must show up at least once.
	seen := make(map[[3]int]bool)
	for i := 0; i < 2000; i++ {
		s := []int{1, 2, 3}
		Slice(s)
		seen[[3]int{s[0], s[1], s[2]}] = true
	}

	assert.Equal(t, 6, len(seen))
}

func TestShuffled(t *testing.T) {
	t.Parallel()

	src := []string{"a", "b", "c", "d"}
	out := Shuffled(src)

	assert.Equal(t, []string{"a", "b", "c", "d"}, src)
	assert.ElementsMatch(t, src, out)
}

func TestSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     []int
		n       int
		wantLen int
	}{
		{
			name:    "subset",
			src:     []int{1, 2, 3, 4, 5},
			n:       3,
			wantLen: 3,
		},
		{
			name:    "n equals length",
			src:     []int{1, 2, 3},
			n:       3,
			wantLen: 3,
		},
		{
			name:    "n exceeds length",
			src:     []int{1, 2},
			n:       5,
			wantLen: 2,
		},
		{
			name:    "zero",
			src:     []int{1, 2, 3},
			n:       0,
			wantLen: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sample(tt.src, tt.n)
			require.Len(t, got, tt.wantLen)

			seen := make(map[int]bool)
			for _, v := range got {
				require.False(t, seen[v], "duplicate element %d", v)
				seen[v] = true
				assert.Contains(t, tt.src, v)
			}
		})
	}
}
