package carousel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppearanceValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Appearance)
		wantErr bool
	}{
		{name: "default", modify: func(*Appearance) {}},
		{name: "transparent sides", modify: func(a *Appearance) { a.SideItemTransform.Alpha = 0 }},
		{name: "enlarged sides", modify: func(a *Appearance) { a.SideItemTransform.SizeRatio = 1.2 }},
		{name: "height relative", modify: func(a *Appearance) { a.CenterItemWidth.Dimension = DimensionHeight }},
		{name: "zero spacing", modify: func(a *Appearance) { a.ItemSpacing = 0 }},
		{name: "zero size ratio", modify: func(a *Appearance) { a.SideItemTransform.SizeRatio = 0 }, wantErr: true},
		{name: "negative alpha", modify: func(a *Appearance) { a.SideItemTransform.Alpha = -0.1 }, wantErr: true},
		{name: "zero center ratio", modify: func(a *Appearance) { a.CenterItemWidth.Ratio = 0 }, wantErr: true},
		{name: "negative spacing", modify: func(a *Appearance) { a.ItemSpacing = -1 }, wantErr: true},
		{name: "negative inset", modify: func(a *Appearance) { a.AdditionalInsets.Left = -2 }, wantErr: true},
		{name: "nan spacing", modify: func(a *Appearance) { a.ItemSpacing = math.NaN() }, wantErr: true},
		{name: "infinite ratio", modify: func(a *Appearance) { a.CenterItemWidth.Ratio = math.Inf(1) }, wantErr: true},
		{name: "unknown dimension", modify: func(a *Appearance) { a.CenterItemWidth.Dimension = 7 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAppearance()
			tt.modify(&a)
			err := a.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAppearance)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseSnapBehavior(t *testing.T) {
	for _, behavior := range []SnapBehavior{SnapHard, SnapSoft, SnapNone} {
		got, err := ParseSnapBehavior(behavior.String())
		require.NoError(t, err)
		assert.Equal(t, behavior, got)
	}

	got, err := ParseSnapBehavior("")
	require.NoError(t, err)
	assert.Equal(t, SnapHard, got)

	_, err = ParseSnapBehavior("sticky")
	assert.ErrorIs(t, err, ErrInvalidOption)

	assert.Equal(t, "SnapBehavior(9)", SnapBehavior(9).String())
}
