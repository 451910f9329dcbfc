// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imglayout

import (
	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gomlx/types/tensors"
	"github.com/pkg/errors"
)

// SqueezeBatch drops the leading batch axis of a rank-4 tensor. Tensors of other
// ranks are returned unchanged.
//
// If the batch axis holds more than one image and strict is true, it returns
// ErrNotASingleImage carrying the batch count. With strict false the axis is
// dropped regardless and only the first image is kept -- lossy, the caller's
// responsibility.
func SqueezeBatch(t *tensors.Tensor, strict bool) (*tensors.Tensor, error) {
	if t.Rank() != 4 {
		return t, nil
	}
	dims := t.Shape().Dimensions
	if dims[0] > 1 && strict {
		return nil, errors.Wrapf(ErrNotASingleImage, "it is a batch of %d images", dims[0])
	}
	if dims[0] == 1 {
		return withDimensions(t, dims[1:]...), nil
	}
	out := tensors.FromShape(shapes.Make(t.DType(), dims[1:]...))
	t.ConstBytes(func(src []byte) {
		out.MutableBytes(func(dst []byte) {
			copy(dst, src[:len(dst)]) // First image of the batch.
		})
	})
	return out, nil
}

// UnsqueezeBatch inserts a leading singleton batch axis, unless the tensor's
// classified layout already has a batch axis, in which case it is returned
// unchanged. It fails if the tensor cannot be classified.
func UnsqueezeBatch(t *tensors.Tensor) (*tensors.Tensor, error) {
	roles, _, err := Classify(t.Shape())
	if err != nil {
		return nil, err
	}
	if roles[0] == B {
		return t, nil
	}
	return withDimensions(t, append([]int{1}, t.Shape().Dimensions...)...), nil
}
