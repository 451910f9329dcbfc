// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package imglayout classifies the axis layout of image tensors from their shape
// alone, and converts between layouts by axis permutation.
//
// Image tensors arrive in inconsistent layouts: channels-last ([height, width,
// channels]) or channels-first, with or without a leading batch axis, and with
// singleton axes that may be an alpha/mask channel or a batch of one. Classify maps
// a shapes.Shape to one of a closed set of Layout labels using a fixed-priority
// rule chain over the dimensions; ConvertToLayout, SpatialExtents, SqueezeBatch and
// the other helpers all route through Classify, so layout decisions are made in
// exactly one place.
//
// The tensors themselves are gomlx tensors (github.com/gomlx/gomlx/types/tensors);
// this package only decides which label applies and which permutation to run, and
// applies it through the tensor's flat-data accessors. All functions are pure and
// retain no state, so they are safe for concurrent use.
//
// Heuristic limits, inherited from shape-only classification:
//
//   - A [1, H, W] tensor cannot be told apart from a batch of one unchanneled
//     image; it always classifies as AHW (single alpha/mask channel). Callers that
//     mean "batch of one" must convert explicitly.
//   - Spatial axes are assumed to have dimension >= 64 (see the HWA and BHW rules);
//     small images with singleton axes may be unclassifiable.
//
// Classification never inspects values, only the shape.
package imglayout

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/types/shapes"
	"github.com/pkg/errors"
)

// AxisRole is the meaning of one axis of an image tensor.
type AxisRole uint8

//go:generate go tool enumer -type=AxisRole imglayout.go

const (
	H AxisRole = iota // Height.
	W                 // Width.
	C                 // Color channels, 3 (RGB) or 4 (RGBA).
	A                 // Single alpha or mask channel.
	B                 // Batch.
)

// Layout labels the axis ordering of an image tensor. The names spell the axis
// roles in order: LayoutBRGBHW is [batch, color, height, width].
type Layout uint8

//go:generate go tool enumer -type=Layout -trimprefix=Layout imglayout.go

const (
	LayoutHW Layout = iota
	LayoutHWRGB
	LayoutHWRGBA
	LayoutRGBHW
	LayoutRGBAHW
	LayoutHWA
	LayoutAHW
	LayoutBHW
	LayoutBHWRGB
	LayoutBHWRGBA
	LayoutBRGBHW
	LayoutBRGBAHW
	LayoutBHWA
	LayoutBAHW
)

// layoutRoles is the canonical axis-role sequence of each layout.
var layoutRoles = [...][]AxisRole{
	LayoutHW:      {H, W},
	LayoutHWRGB:   {H, W, C},
	LayoutHWRGBA:  {H, W, C},
	LayoutRGBHW:   {C, H, W},
	LayoutRGBAHW:  {C, H, W},
	LayoutHWA:     {H, W, A},
	LayoutAHW:     {A, H, W},
	LayoutBHW:     {B, H, W},
	LayoutBHWRGB:  {B, H, W, C},
	LayoutBHWRGBA: {B, H, W, C},
	LayoutBRGBHW:  {B, C, H, W},
	LayoutBRGBAHW: {B, C, H, W},
	LayoutBHWA:    {B, H, W, A},
	LayoutBAHW:    {B, A, H, W},
}

// minSpatialDim is the smallest dimension Classify accepts as spatial when
// disambiguating singleton axes. Inherited as a magic constant; changing it
// changes which shapes classify as HWA/BHW.
const minSpatialDim = 64

// Classify returns the axis-role sequence and Layout of an image tensor shape.
//
// It applies a fixed-priority rule chain over the dimensions; the first matching
// rule wins, and later rules assume the earlier ones did not match. Rank 2 is
// always LayoutHW. For ranks 3 and 4 the rules check for 3/4-sized color axes
// first (channels-last before channels-first), then fall back to the singleton
// alpha/mask and batch heuristics described in the package documentation.
//
// It returns ErrUnsupportedRank for ranks outside {2, 3, 4} and
// ErrUnclassifiableShape when no rule matches, wrapped with the rank and shape.
func Classify(shape shapes.Shape) (roles []AxisRole, layout Layout, err error) {
	switch shape.Rank() {
	case 2:
		return classified(LayoutHW)
	case 3:
		switch {
		case shape.Dim(2) == 3:
			return classified(LayoutHWRGB)
		case shape.Dim(2) == 4:
			return classified(LayoutHWRGBA)
		case shape.Dim(0) == 3:
			return classified(LayoutRGBHW)
		case shape.Dim(0) == 4:
			return classified(LayoutRGBAHW)
		case shape.Dim(2) == 1 && shape.Dim(0) >= minSpatialDim:
			// Opinionated: a large spatial tensor with one trailing singleton is an
			// alpha/mask channel, not a batch.
			return classified(LayoutHWA)
		case shape.Dim(0) == 1:
			// Opinionated: a leading singleton is a single alpha channel, not a
			// batch of one. See the package documentation.
			return classified(LayoutAHW)
		case shape.Dim(0) >= 2 && shape.Dim(1) >= minSpatialDim:
			// A leading axis of 2+ before a large axis is assumed to be a batch of
			// unchanneled images (e.g. a mask or latent batch).
			return classified(LayoutBHW)
		}
	case 4:
		switch {
		case shape.Dim(3) == 3:
			return classified(LayoutBHWRGB)
		case shape.Dim(3) == 4:
			return classified(LayoutBHWRGBA)
		case shape.Dim(1) == 3:
			return classified(LayoutBRGBHW)
		case shape.Dim(1) == 4:
			return classified(LayoutBRGBAHW)
		case shape.Dim(0) == 1 && shape.Dim(3) == 1:
			// Opinionated: a singleton batch with a singleton trailing axis is a
			// channels-last mask batch.
			return classified(LayoutBHWA)
		case shape.Dim(1) == 1:
			return classified(LayoutBAHW)
		}
	default:
		return nil, 0, errors.Wrapf(ErrUnsupportedRank, "rank %d (shape %s)", shape.Rank(), shape)
	}
	return nil, 0, errors.Wrapf(ErrUnclassifiableShape, "rank %d, shape %s", shape.Rank(), shape)
}

func classified(layout Layout) ([]AxisRole, Layout, error) {
	return Roles(layout), layout, nil
}

// Roles returns the canonical axis-role sequence of a layout, e.g.
// Roles(LayoutBRGBHW) is [B, C, H, W]. The returned slice is a copy.
//
// It panics on a Layout value outside the enumeration.
func Roles(layout Layout) []AxisRole {
	if !layout.IsALayout() {
		exceptions.Panicf("imglayout.Roles: invalid Layout(%d), valid values are %v", layout, LayoutValues())
	}
	return slices.Clone(layoutRoles[layout])
}

// HasBatch reports whether the layout's leading axis is a batch axis.
func HasBatch(layout Layout) bool {
	return layoutRoles[layout][0] == B
}
