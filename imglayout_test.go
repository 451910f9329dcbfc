// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imglayout

import (
	"fmt"
	"testing"

	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		dims []int
		want Layout
	}{
		// Rank 2 is unconditional.
		{[]int{80, 80}, LayoutHW},
		{[]int{3, 4}, LayoutHW},

		// Rank 3: color axes, trailing before leading.
		{[]int{80, 80, 3}, LayoutHWRGB},
		{[]int{3, 80, 3}, LayoutHWRGB}, // Trailing color axis wins over leading.
		{[]int{80, 80, 4}, LayoutHWRGBA},
		{[]int{3, 80, 4}, LayoutHWRGBA},
		{[]int{3, 80, 80}, LayoutRGBHW},
		{[]int{4, 80, 80}, LayoutRGBAHW},

		// Rank 3: singleton and batch heuristics.
		{[]int{80, 80, 1}, LayoutHWA},
		{[]int{64, 2, 1}, LayoutHWA}, // Axis 0 at the threshold.
		{[]int{1, 80, 80}, LayoutAHW},
		{[]int{1, 63, 1}, LayoutAHW}, // Too small for the HWA rule, leading singleton wins.
		{[]int{2, 80, 80}, LayoutBHW},
		{[]int{80, 80, 80}, LayoutBHW},
		{[]int{80, 80, 2}, LayoutBHW}, // A trailing axis of 2 is not a channel.

		// Rank 4.
		{[]int{2, 80, 80, 3}, LayoutBHWRGB},
		{[]int{2, 80, 80, 4}, LayoutBHWRGBA},
		{[]int{2, 3, 80, 80}, LayoutBRGBHW},
		{[]int{1, 3, 80, 80}, LayoutBRGBHW},
		{[]int{2, 4, 80, 80}, LayoutBRGBAHW},
		{[]int{1, 80, 80, 1}, LayoutBHWA},
		{[]int{1, 1, 80, 80}, LayoutBAHW},
		{[]int{2, 1, 80, 80}, LayoutBAHW},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v->%s", test.dims, test.want), func(t *testing.T) {
			roles, layout, err := Classify(shapes.Make(dtypes.Float32, test.dims...))
			require.NoError(t, err)
			assert.Equal(t, test.want, layout)
			assert.Equal(t, Roles(test.want), roles)
			assert.Len(t, roles, len(test.dims))
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	// Supported ranks with no matching rule.
	for _, dims := range [][]int{
		{63, 63, 1},   // Too small for HWA, not a batch either.
		{2, 63, 80},   // Batch-like but axis 1 below the threshold.
		{5, 5, 5},      // No color, alpha or batch rule applies.
		{2, 2, 80, 80}, // No singleton, no color axis.
	} {
		_, _, err := Classify(shapes.Make(dtypes.Float32, dims...))
		require.ErrorIs(t, err, ErrUnclassifiableShape, "dims=%v", dims)
	}

	// Unsupported ranks.
	for _, dims := range [][]int{{}, {80}, {2, 3, 80, 80, 3}} {
		_, _, err := Classify(shapes.Make(dtypes.Float32, dims...))
		require.ErrorIs(t, err, ErrUnsupportedRank, "dims=%v", dims)
	}
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []AxisRole{B, C, H, W}, Roles(LayoutBRGBAHW))
	assert.Equal(t, []AxisRole{H, W, A}, Roles(LayoutHWA))

	// Returned slice is a copy: mutating it must not corrupt the table.
	roles := Roles(LayoutHW)
	roles[0] = B
	assert.Equal(t, []AxisRole{H, W}, Roles(LayoutHW))

	require.Panics(t, func() { Roles(Layout(255)) })
}

func TestHasBatch(t *testing.T) {
	assert.False(t, HasBatch(LayoutHW))
	assert.False(t, HasBatch(LayoutAHW))
	assert.True(t, HasBatch(LayoutBHW))
	assert.True(t, HasBatch(LayoutBRGBAHW))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "BRGBAHW", LayoutBRGBAHW.String())
	assert.Equal(t, "HW", LayoutHW.String())
	assert.Equal(t, "A", A.String())

	layout, err := LayoutString("bhwrgb")
	require.NoError(t, err)
	assert.Equal(t, LayoutBHWRGB, layout)
	_, err = LayoutString("XYZW")
	require.Error(t, err)

	// Every layout has roles and a spatial-axes entry of matching rank.
	for _, layout := range LayoutValues() {
		roles := Roles(layout)
		require.NotEmpty(t, roles, "layout %s", layout)
		hAxis, wAxis, err := SpatialAxes(layout)
		require.NoError(t, err, "layout %s", layout)
		assert.Equal(t, H, roles[hAxis], "layout %s", layout)
		assert.Equal(t, W, roles[wAxis], "layout %s", layout)
	}
}
