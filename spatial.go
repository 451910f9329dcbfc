// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imglayout

import (
	"github.com/gomlx/gomlx/types/tensors"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// layoutSpatialAxes maps each layout to its (height, width) axis pair.
// A zero pair marks a layout without spatial axes; there is none currently.
var layoutSpatialAxes = [...][2]int{
	LayoutHW:      {0, 1},
	LayoutHWRGB:   {0, 1},
	LayoutHWRGBA:  {0, 1},
	LayoutRGBHW:   {1, 2},
	LayoutRGBAHW:  {1, 2},
	LayoutHWA:     {0, 1},
	LayoutAHW:     {1, 2},
	LayoutBHW:     {1, 2},
	LayoutBHWRGB:  {1, 2},
	LayoutBHWRGBA: {1, 2},
	LayoutBRGBHW:  {2, 3},
	LayoutBRGBAHW: {2, 3},
	LayoutBHWA:    {1, 2},
	LayoutBAHW:    {2, 3},
}

// SpatialAxes returns the height and width axis indices of a layout.
//
// It returns ErrNoSpatialAxes for a layout without a height/width pair; no
// currently enumerated layout triggers it.
func SpatialAxes(layout Layout) (heightAxis, widthAxis int, err error) {
	if int(layout) >= len(layoutSpatialAxes) {
		klog.Errorf("imglayout.SpatialAxes(%s): value outside the Layout enumeration!?", layout)
		return -1, -1, errors.Wrapf(ErrNoSpatialAxes, "layout %s", layout)
	}
	pair := layoutSpatialAxes[layout]
	if pair[0] == pair[1] {
		return -1, -1, errors.Wrapf(ErrNoSpatialAxes, "layout %s", layout)
	}
	return pair[0], pair[1], nil
}

// ChannelsAxis returns the index of the color (C) or alpha/mask (A) axis of a
// layout. It returns ErrNoChannelAxis for the unchanneled layouts HW and BHW.
func ChannelsAxis(layout Layout) (int, error) {
	for i, role := range layoutRoles[layout] {
		if role == C || role == A {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrNoChannelAxis, "layout %s", layout)
}

// SpatialExtents classifies the tensor and returns its height and width.
func SpatialExtents(t *tensors.Tensor) (height, width int, err error) {
	_, layout, err := Classify(t.Shape())
	if err != nil {
		return 0, 0, err
	}
	heightAxis, widthAxis, err := SpatialAxes(layout)
	if err != nil {
		return 0, 0, err
	}
	return t.Shape().Dim(heightAxis), t.Shape().Dim(widthAxis), nil
}

// SmallerSpatialAxis returns the axis index of the smaller of the tensor's two
// spatial extents. The height axis wins ties.
func SmallerSpatialAxis(t *tensors.Tensor) (int, error) {
	heightAxis, widthAxis, height, width, err := spatialAxesAndExtents(t)
	if err != nil {
		return -1, err
	}
	if width < height {
		return widthAxis, nil
	}
	return heightAxis, nil
}

// LargerSpatialAxis returns the axis index of the larger of the tensor's two
// spatial extents. The width axis wins only if strictly larger.
func LargerSpatialAxis(t *tensors.Tensor) (int, error) {
	heightAxis, widthAxis, height, width, err := spatialAxesAndExtents(t)
	if err != nil {
		return -1, err
	}
	if width > height {
		return widthAxis, nil
	}
	return heightAxis, nil
}

func spatialAxesAndExtents(t *tensors.Tensor) (heightAxis, widthAxis, height, width int, err error) {
	_, layout, err := Classify(t.Shape())
	if err != nil {
		return -1, -1, 0, 0, err
	}
	heightAxis, widthAxis, err = SpatialAxes(layout)
	if err != nil {
		return -1, -1, 0, 0, err
	}
	return heightAxis, widthAxis, t.Shape().Dim(heightAxis), t.Shape().Dim(widthAxis), nil
}

// MostPixels returns the tensor with the largest spatial area (height x width).
// The first tensor wins ties. It returns ErrEmptyInput when given no tensors, and
// fails if any tensor cannot be classified.
func MostPixels(imgTensors []*tensors.Tensor) (*tensors.Tensor, error) {
	if len(imgTensors) == 0 {
		return nil, errors.WithStack(ErrEmptyInput)
	}
	best := -1
	bestPixels := -1
	for i, t := range imgTensors {
		height, width, err := SpatialExtents(t)
		if err != nil {
			return nil, errors.WithMessagef(err, "tensor %d of %d", i, len(imgTensors))
		}
		if pixels := height * width; pixels > bestPixels {
			best, bestPixels = i, pixels
		}
	}
	return imgTensors[best], nil
}
