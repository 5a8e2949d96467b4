package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMapLogical(t *testing.T) {
	m := indexMap{count: 4, multiplier: 3}

	for physical := range 12 {
		logical, ok := m.logical(physical)
		require.True(t, ok)
		assert.Equal(t, physical%4, logical)
	}

	_, ok := m.logical(12)
	assert.False(t, ok)
	_, ok = m.logical(-1)
	assert.False(t, ok)

	_, ok = indexMap{count: 0, multiplier: 3}.logical(0)
	assert.False(t, ok)
}

func TestIndexMapReplicas(t *testing.T) {
	m := indexMap{count: 4, multiplier: 3}
	assert.Equal(t, []int{1, 5, 9}, m.replicas(1))
	assert.Nil(t, m.replicas(4))
	assert.Nil(t, m.replicas(-1))
}

func TestClosestPhysicalRoundTrip(t *testing.T) {
	for _, infinite := range []bool{false, true} {
		layout := BuildLayout(7, DefaultAppearance(), Size{Width: 300, Height: 200}, infinite)
		m := newIndexMap(layout)
		for logical := range 7 {
			for _, reference := range []float64{-500, 0, 1000, layout.ContentWidth() / 2, layout.ContentWidth() + 500} {
				physical, ok := m.closestPhysical(layout, logical, reference)
				require.True(t, ok)
				got, ok := m.logical(physical)
				require.True(t, ok)
				assert.Equal(t, logical, got)
			}
		}
	}
}

func TestClosestPhysicalPicksNearestReplica(t *testing.T) {
	layout := BuildLayout(10, DefaultAppearance(), Size{Width: 300, Height: 200}, true)
	m := newIndexMap(layout)

	tests := []struct {
		name      string
		reference float64
		want      int
	}{
		{name: "first replica", reference: 0, want: 4},
		{name: "middle replica", reference: 1880 + 4*188, want: 14},
		{name: "last replica", reference: 5640, want: 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			physical, ok := m.closestPhysical(layout, 4, tt.reference)
			require.True(t, ok)
			assert.Equal(t, tt.want, physical)
		})
	}
}

func TestClosestPhysicalOutOfRange(t *testing.T) {
	layout := BuildLayout(3, DefaultAppearance(), Size{Width: 300, Height: 200}, true)
	m := newIndexMap(layout)

	_, ok := m.closestPhysical(layout, 3, 0)
	assert.False(t, ok)

	empty := BuildLayout(0, DefaultAppearance(), Size{Width: 300, Height: 200}, true)
	_, ok = newIndexMap(empty).closestPhysical(empty, 0, 0)
	assert.False(t, ok)
}
