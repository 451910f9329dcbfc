// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imglayout

import (
	"testing"

	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gomlx/types/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpatialAxes(t *testing.T) {
	tests := []struct {
		layout       Layout
		hAxis, wAxis int
	}{
		{LayoutHW, 0, 1},
		{LayoutHWRGB, 0, 1},
		{LayoutHWRGBA, 0, 1},
		{LayoutHWA, 0, 1},
		{LayoutRGBHW, 1, 2},
		{LayoutRGBAHW, 1, 2},
		{LayoutAHW, 1, 2},
		{LayoutBHW, 1, 2},
		{LayoutBHWRGB, 1, 2},
		{LayoutBHWRGBA, 1, 2},
		{LayoutBHWA, 1, 2},
		{LayoutBRGBHW, 2, 3},
		{LayoutBRGBAHW, 2, 3},
		{LayoutBAHW, 2, 3},
	}
	for _, test := range tests {
		hAxis, wAxis, err := SpatialAxes(test.layout)
		require.NoError(t, err, "layout %s", test.layout)
		assert.Equal(t, test.hAxis, hAxis, "layout %s", test.layout)
		assert.Equal(t, test.wAxis, wAxis, "layout %s", test.layout)
	}

	_, _, err := SpatialAxes(Layout(255))
	require.ErrorIs(t, err, ErrNoSpatialAxes)
}

func TestChannelsAxis(t *testing.T) {
	tests := []struct {
		layout Layout
		axis   int
	}{
		{LayoutHWRGB, 2},
		{LayoutHWRGBA, 2},
		{LayoutRGBHW, 0},
		{LayoutRGBAHW, 0},
		{LayoutHWA, 2},
		{LayoutAHW, 0},
		{LayoutBHWRGB, 3},
		{LayoutBHWRGBA, 3},
		{LayoutBRGBHW, 1},
		{LayoutBRGBAHW, 1},
		{LayoutBHWA, 3},
		{LayoutBAHW, 1},
	}
	for _, test := range tests {
		axis, err := ChannelsAxis(test.layout)
		require.NoError(t, err, "layout %s", test.layout)
		assert.Equal(t, test.axis, axis, "layout %s", test.layout)
	}

	for _, layout := range []Layout{LayoutHW, LayoutBHW} {
		_, err := ChannelsAxis(layout)
		require.ErrorIs(t, err, ErrNoChannelAxis, "layout %s", layout)
	}
}

func TestSpatialExtents(t *testing.T) {
	tests := []struct {
		dims          []int
		height, width int
	}{
		{[]int{80, 64}, 80, 64},
		{[]int{80, 64, 3}, 80, 64},
		{[]int{3, 80, 64}, 80, 64},
		{[]int{2, 3, 80, 64}, 80, 64},
		{[]int{2, 80, 64, 4}, 80, 64},
		{[]int{1, 80, 64}, 80, 64},
	}
	for _, test := range tests {
		x := tensors.FromShape(shapes.Make(dtypes.Float32, test.dims...))
		height, width, err := SpatialExtents(x)
		require.NoError(t, err, "dims %v", test.dims)
		assert.Equal(t, test.height, height, "dims %v", test.dims)
		assert.Equal(t, test.width, width, "dims %v", test.dims)
	}

	odd := tensors.FromShape(shapes.Make(dtypes.Float32, 5, 5, 5, 5, 5))
	_, _, err := SpatialExtents(odd)
	require.ErrorIs(t, err, ErrUnsupportedRank)
}

func TestSmallerLargerSpatialAxis(t *testing.T) {
	// Channels-last: height axis 0, width axis 1.
	wide := tensors.FromShape(shapes.Make(dtypes.Float32, 64, 80, 3))
	axis, err := SmallerSpatialAxis(wide)
	require.NoError(t, err)
	assert.Equal(t, 0, axis)
	axis, err = LargerSpatialAxis(wide)
	require.NoError(t, err)
	assert.Equal(t, 1, axis)

	// Channels-first: height axis 1, width axis 2.
	tall := tensors.FromShape(shapes.Make(dtypes.Float32, 3, 80, 64))
	axis, err = SmallerSpatialAxis(tall)
	require.NoError(t, err)
	assert.Equal(t, 2, axis)
	axis, err = LargerSpatialAxis(tall)
	require.NoError(t, err)
	assert.Equal(t, 1, axis)

	// Ties favor the height axis both ways.
	square := tensors.FromShape(shapes.Make(dtypes.Float32, 64, 64, 3))
	axis, err = SmallerSpatialAxis(square)
	require.NoError(t, err)
	assert.Equal(t, 0, axis)
	axis, err = LargerSpatialAxis(square)
	require.NoError(t, err)
	assert.Equal(t, 0, axis)
}

func TestMostPixels(t *testing.T) {
	a := tensors.FromShape(shapes.Make(dtypes.Float32, 64, 64))
	b := tensors.FromShape(shapes.Make(dtypes.Float32, 128, 64))
	c := tensors.FromShape(shapes.Make(dtypes.Float32, 32, 32))
	got, err := MostPixels([]*tensors.Tensor{a, b, c})
	require.NoError(t, err)
	require.Same(t, b, got)

	// First occurrence wins ties: a and wide have the same pixel count.
	wide := tensors.FromShape(shapes.Make(dtypes.Float32, 32, 128))
	got, err = MostPixels([]*tensors.Tensor{a, wide})
	require.NoError(t, err)
	require.Same(t, a, got)

	_, err = MostPixels(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	odd := tensors.FromShape(shapes.Make(dtypes.Float32, 5, 5, 5))
	_, err = MostPixels([]*tensors.Tensor{a, odd})
	require.ErrorIs(t, err, ErrUnclassifiableShape)
}
