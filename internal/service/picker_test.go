package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weighted struct {
	name   string
	weight float64
}

func wOf(w weighted) float64 { return w.weight }

func TestPickWeighted(t *testing.T) {
	items := []weighted{
		{name: "common", weight: 70},
		{name: "rare", weight: 25},
		{name: "legendary", weight: 5},
	}

	cases := []struct {
		name string
		roll float64
		want string
	}{
		{name: "start of first interval", roll: 0, want: "common"},
		{name: "end of first interval", roll: 0.699, want: "common"},
		{name: "second interval", roll: 0.7, want: "rare"},
		{name: "third interval", roll: 0.96, want: "legendary"},
		{name: "almost one", roll: 0.999999, want: "legendary"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pickWeighted(items, wOf, func() float64 { return tc.roll })
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.name)
		})
	}
}

func TestPickWeightedSkipsZeroWeight(t *testing.T) {
	items := []weighted{
		{name: "ghost", weight: 0},
		{name: "real", weight: 1},
	}

	// Нулевой бросок попадает в первый ненулевой интервал.
	got, err := pickWeighted(items, wOf, func() float64 { return 0 })
	require.NoError(t, err)
	assert.Equal(t, "real", got.name)
}

func TestPickWeightedEmpty(t *testing.T) {
	_, err := pickWeighted(nil, wOf, func() float64 { return 0.5 })
	require.ErrorIs(t, err, errEmptyPick)

	// Набор из одних нулевых весов неотличим от пустого.
	zeros := []weighted{{name: "a", weight: 0}, {name: "b", weight: 0}}
	_, err = pickWeighted(zeros, wOf, func() float64 { return 0.5 })
	require.ErrorIs(t, err, errEmptyPick)
}
