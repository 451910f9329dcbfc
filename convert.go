// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imglayout

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gomlx/types/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// PermutationPlan returns the axis permutation that reorders from into to:
// entry i of the plan is the index in from of the role at position i of to.
//
// Both sequences must hold the same roles, possibly in different order; otherwise
// it returns ErrRoleSetMismatch.
func PermutationPlan(from, to []AxisRole) ([]int, error) {
	if len(from) != len(to) {
		return nil, errors.Wrapf(ErrRoleSetMismatch, "from %v has rank %d, to %v has rank %d",
			from, len(from), to, len(to))
	}
	plan := make([]int, len(to))
	used := make([]bool, len(from))
	for i, role := range to {
		found := -1
		for j, fromRole := range from {
			if !used[j] && fromRole == role {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, errors.Wrapf(ErrRoleSetMismatch, "role %s of %v not present in %v", role, to, from)
		}
		used[found] = true
		plan[i] = found
	}
	return plan, nil
}

// ApplyPermutation returns a new tensor whose axis i holds the contents of the
// input's axis plan[i]. The input is not modified, and the output never aliases
// its storage.
//
// It panics if plan is not a permutation of the input's axes, or the tensor's
// dtype has no flat Go representation. Use PermutationPlan to build valid plans.
func ApplyPermutation(t *tensors.Tensor, plan []int) *tensors.Tensor {
	rank := t.Rank()
	if len(plan) != rank {
		exceptions.Panicf("imglayout.ApplyPermutation: plan %v has %d entries for a rank-%d tensor", plan, len(plan), rank)
	}
	seen := make([]bool, rank)
	for _, axis := range plan {
		if axis < 0 || axis >= rank || seen[axis] {
			exceptions.Panicf("imglayout.ApplyPermutation: plan %v is not a permutation of the %d axes", plan, rank)
		}
		seen[axis] = true
	}

	srcDims := t.Shape().Dimensions
	dstDims := make([]int, rank)
	for i, axis := range plan {
		dstDims[i] = srcDims[axis]
	}
	out := tensors.FromShape(shapes.Make(t.DType(), dstDims...))

	switch t.DType() {
	case dtypes.Bool:
		permuteFlat[bool](t, out, plan)
	case dtypes.Int8:
		permuteFlat[int8](t, out, plan)
	case dtypes.Int16:
		permuteFlat[int16](t, out, plan)
	case dtypes.Int32:
		permuteFlat[int32](t, out, plan)
	case dtypes.Int64:
		permuteFlat[int64](t, out, plan)
	case dtypes.Uint8:
		permuteFlat[uint8](t, out, plan)
	case dtypes.Uint16:
		permuteFlat[uint16](t, out, plan)
	case dtypes.Uint32:
		permuteFlat[uint32](t, out, plan)
	case dtypes.Uint64:
		permuteFlat[uint64](t, out, plan)
	case dtypes.Float16:
		permuteFlat[float16.Float16](t, out, plan)
	case dtypes.BFloat16:
		permuteFlat[bfloat16.BFloat16](t, out, plan)
	case dtypes.Float32:
		permuteFlat[float32](t, out, plan)
	case dtypes.Float64:
		permuteFlat[float64](t, out, plan)
	case dtypes.Complex64:
		permuteFlat[complex64](t, out, plan)
	case dtypes.Complex128:
		permuteFlat[complex128](t, out, plan)
	default:
		exceptions.Panicf("imglayout.ApplyPermutation: unsupported dtype %s", t.DType())
	}
	return out
}

// permuteFlat gathers src into dst following plan, walking dst in row-major order
// while tracking the matching flat position in src with per-axis strides.
func permuteFlat[T dtypes.Supported](src, dst *tensors.Tensor, plan []int) {
	srcStrides := src.LayoutStrides()
	dstDims := dst.Shape().Dimensions
	rank := len(dstDims)
	gatherStrides := make([]int, rank)
	for i, axis := range plan {
		gatherStrides[i] = srcStrides[axis]
	}
	tensors.ConstFlatData(src, func(srcFlat []T) {
		tensors.MutableFlatData(dst, func(dstFlat []T) {
			indices := make([]int, rank)
			srcPos := 0
			for dstPos := range dstFlat {
				dstFlat[dstPos] = srcFlat[srcPos]
				for axis := rank - 1; axis >= 0; axis-- {
					indices[axis]++
					srcPos += gatherStrides[axis]
					if indices[axis] < dstDims[axis] {
						break
					}
					indices[axis] = 0
					srcPos -= gatherStrides[axis] * dstDims[axis]
				}
			}
		})
	})
}

// Converter returns a reusable function converting tensors from one axis-role
// ordering to another. The plan is computed once; the returned function is pure
// and safe for concurrent use.
//
// It returns ErrRoleSetMismatch if the two sequences don't hold the same roles.
func Converter(from, to []AxisRole) (func(*tensors.Tensor) *tensors.Tensor, error) {
	plan, err := PermutationPlan(from, to)
	if err != nil {
		return nil, err
	}
	return func(t *tensors.Tensor) *tensors.Tensor {
		return ApplyPermutation(t, plan)
	}, nil
}

// ConvertToLayout converts an image tensor to the given layout, classifying its
// current layout first. If the tensor is already in the target layout it is
// returned unchanged, without copying.
//
// When the ranks differ by the batch axis, it adjusts first: converting a rank-4
// tensor to a rank-3 layout drops the leading axis, which must have extent 1
// (ErrNotASingleImage otherwise); converting a rank-3 tensor to a rank-4 layout
// inserts a leading singleton batch axis. Any other rank difference, or a
// different set of axis roles, returns ErrRoleSetMismatch.
func ConvertToLayout(t *tensors.Tensor, to Layout) (*tensors.Tensor, error) {
	fromRoles, fromLayout, err := Classify(t.Shape())
	if err != nil {
		return nil, err
	}
	if fromLayout == to {
		return t, nil
	}

	toRoles := Roles(to)
	switch {
	case len(fromRoles) == 4 && len(toRoles) == 3:
		if t.Shape().Dim(0) != 1 {
			return nil, errors.Wrapf(ErrNotASingleImage,
				"cannot convert %s to %s, leading axis holds %d images", fromLayout, to, t.Shape().Dim(0))
		}
		t = withDimensions(t, t.Shape().Dimensions[1:]...)
		fromRoles = fromRoles[1:]
	case len(fromRoles) == 3 && len(toRoles) == 4:
		t = withDimensions(t, append([]int{1}, t.Shape().Dimensions...)...)
		fromRoles = append([]AxisRole{B}, fromRoles...)
	case len(fromRoles) != len(toRoles):
		return nil, errors.Wrapf(ErrRoleSetMismatch,
			"cannot convert %s (rank %d) to %s (rank %d)", fromLayout, len(fromRoles), to, len(toRoles))
	}

	plan, err := PermutationPlan(fromRoles, toRoles)
	if err != nil {
		return nil, err
	}
	return ApplyPermutation(t, plan), nil
}

// withDimensions returns a new tensor with the same flat data and the given
// dimensions. The total size must not change.
func withDimensions(t *tensors.Tensor, dimensions ...int) *tensors.Tensor {
	out := tensors.FromShape(shapes.Make(t.DType(), dimensions...))
	if out.Shape().Size() != t.Shape().Size() {
		exceptions.Panicf("imglayout: cannot reshape %s to dimensions %v, sizes differ", t.Shape(), dimensions)
	}
	t.ConstBytes(func(src []byte) {
		out.MutableBytes(func(dst []byte) {
			copy(dst, src)
		})
	})
	return out
}
