// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imglayout

import "github.com/pkg/errors"

// Errors returned by the package. They are always wrapped with details about the
// offending shape or layout, so test for them with errors.Is.
var (
	// ErrUnsupportedRank is returned by Classify for tensors whose rank is not 2, 3 or 4.
	ErrUnsupportedRank = errors.New("rank is not valid for an image tensor, must be 2, 3 or 4")

	// ErrUnclassifiableShape is returned by Classify when the rank is supported but no
	// heuristic rule matches the dimensions.
	ErrUnclassifiableShape = errors.New("could not determine the axis layout from the shape")

	// ErrRoleSetMismatch is returned when a conversion is requested between axis-role
	// sequences that don't hold the same roles.
	ErrRoleSetMismatch = errors.New("axis-role sequences do not hold the same roles")

	// ErrNoSpatialAxes is returned by SpatialAxes for a layout without height/width axes.
	// No currently enumerated layout triggers it.
	ErrNoSpatialAxes = errors.New("layout has no height/width axes")

	// ErrNoChannelAxis is returned by ChannelsAxis for layouts without a color or
	// alpha axis (HW and BHW).
	ErrNoChannelAxis = errors.New("layout has no channel axis")

	// ErrNotASingleImage is returned when a batch axis holding more than one image
	// would have to be dropped.
	ErrNotASingleImage = errors.New("not a single image")

	// ErrEmptyInput is returned by MostPixels when given no tensors.
	ErrEmptyInput = errors.New("no tensors given")
)
