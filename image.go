// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imglayout

import (
	"image"
	"math"
	"slices"

	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gomlx/types/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// ToTensorConfig holds the configuration returned by ToTensor. Once configured,
// use Single or Batch to convert.
type ToTensorConfig struct {
	channels int
	maxValue float64
	dtype    dtypes.DType
	layout   Layout
	toLayout bool
}

// ToTensor converts an image (or batch of images) to a tensor of the given dtype.
//
// By default the result is channels-last without alpha: LayoutHWRGB from Single,
// LayoutBHWRGB from Batch. Use WithAlpha, InLayout and MaxValue to configure, then
// Single or Batch to convert.
func ToTensor(dtype dtypes.DType) *ToTensorConfig {
	tt := &ToTensorConfig{
		channels: 3,
		maxValue: 1.0,
		dtype:    dtype,
	}
	if !dtype.IsFloat() {
		// Use 255 for integer types.
		tt.maxValue = 255.0
	}
	return tt
}

// WithAlpha includes the alpha channel in the conversion, so the converted tensor
// has 4 channels. The default is dropping it.
//
// It returns the ToTensorConfig, so configuration calls can be cascaded.
func (tt *ToTensorConfig) WithAlpha() *ToTensorConfig {
	tt.channels = 4
	return tt
}

// MaxValue sets the value channels are scaled to. It defaults to 1.0 for float
// dtypes and 255 for integer types.
//
// It returns the ToTensorConfig, so configuration calls can be cascaded.
func (tt *ToTensorConfig) MaxValue(v float64) *ToTensorConfig {
	tt.maxValue = v
	return tt
}

// InLayout sets the layout of the converted tensor: the conversion still builds a
// channels-last tensor and then permutes it with ConvertToLayout, so the layout
// must hold the same axis roles (e.g. LayoutRGBHW, or LayoutBRGBAHW for Batch
// with WithAlpha).
//
// It returns the ToTensorConfig, so configuration calls can be cascaded.
func (tt *ToTensorConfig) InLayout(layout Layout) *ToTensorConfig {
	tt.layout = layout
	tt.toLayout = true
	return tt
}

// Single converts one image to a tensor, by default shaped [height, width, channels].
func (tt *ToTensorConfig) Single(img image.Image) (*tensors.Tensor, error) {
	return tt.convert([]image.Image{img}, false)
}

// Batch converts images to one tensor, by default shaped
// [batch, height, width, channels]. All images must have the same size.
func (tt *ToTensorConfig) Batch(images []image.Image) (*tensors.Tensor, error) {
	return tt.convert(images, true)
}

func (tt *ToTensorConfig) convert(images []image.Image, batch bool) (*tensors.Tensor, error) {
	if len(images) == 0 {
		return nil, errors.WithStack(ErrEmptyInput)
	}
	imgSize := images[0].Bounds().Size()
	for i, img := range images[1:] {
		if !img.Bounds().Size().Eq(imgSize) {
			return nil, errors.Errorf("image %d has size %s, image 0 has size %s -- all must be the same",
				i+1, img.Bounds().Size(), imgSize)
		}
	}
	var dims []int
	if batch {
		dims = []int{len(images), imgSize.Y, imgSize.X, tt.channels}
	} else {
		dims = []int{imgSize.Y, imgSize.X, tt.channels}
	}
	t := tensors.FromShape(shapes.Make(tt.dtype, dims...))

	switch tt.dtype {
	case dtypes.Float32:
		imagesToFlat[float32](t, images, tt.channels, tt.maxValue)
	case dtypes.Float64:
		imagesToFlat[float64](t, images, tt.channels, tt.maxValue)
	case dtypes.Int8:
		imagesToFlat[int8](t, images, tt.channels, tt.maxValue)
	case dtypes.Int16:
		imagesToFlat[int16](t, images, tt.channels, tt.maxValue)
	case dtypes.Int32:
		imagesToFlat[int32](t, images, tt.channels, tt.maxValue)
	case dtypes.Int64:
		imagesToFlat[int64](t, images, tt.channels, tt.maxValue)
	case dtypes.Uint8:
		imagesToFlat[uint8](t, images, tt.channels, tt.maxValue)
	case dtypes.Uint16:
		imagesToFlat[uint16](t, images, tt.channels, tt.maxValue)
	case dtypes.Uint32:
		imagesToFlat[uint32](t, images, tt.channels, tt.maxValue)
	case dtypes.Uint64:
		imagesToFlat[uint64](t, images, tt.channels, tt.maxValue)
	case dtypes.Float16:
		imagesToFlat[float16.Float16](t, images, tt.channels, tt.maxValue)
	case dtypes.BFloat16:
		imagesToFlat[bfloat16.BFloat16](t, images, tt.channels, tt.maxValue)
	default:
		return nil, errors.Errorf("imglayout.ToTensor does not support dtype %s", tt.dtype)
	}

	if tt.toLayout {
		return ConvertToLayout(t, tt.layout)
	}
	return t, nil
}

func imagesToFlat[T dtypes.NumberNotComplex | float16.Float16 | bfloat16.BFloat16](
	t *tensors.Tensor, images []image.Image, channels int, maxValue float64) {
	// color.RGBA() returns 16-bit values packaged in uint32.
	var fromChannel func(val uint32) T
	switch t.DType() {
	case dtypes.Float16:
		fromChannel = func(val uint32) T {
			return T(float16.Fromfloat32(float32(val) * float32(maxValue) / float32(0xFFFF)))
		}
	case dtypes.BFloat16:
		fromChannel = func(val uint32) T {
			return T(bfloat16.FromFloat32(float32(val) * float32(maxValue) / float32(0xFFFF)))
		}
	default:
		fromChannel = func(val uint32) T {
			return T(float64(val) * maxValue / float64(0xFFFF))
		}
	}
	imgSize := images[0].Bounds().Size()
	tensors.MutableFlatData(t, func(flat []T) {
		pos := 0
		for _, img := range images {
			origin := img.Bounds().Min
			for y := 0; y < imgSize.Y; y++ {
				for x := 0; x < imgSize.X; x++ {
					r, g, b, a := img.At(origin.X+x, origin.Y+y).RGBA()
					flat[pos] = fromChannel(r)
					flat[pos+1] = fromChannel(g)
					flat[pos+2] = fromChannel(b)
					if channels == 4 {
						flat[pos+3] = fromChannel(a)
					}
					pos += channels
				}
			}
		}
	})
}

// FromTensorConfig holds the configuration returned by FromTensor. Once
// configured, use Single or Batch to convert tensors back to images.
type FromTensorConfig struct {
	maxValue float64
}

// FromTensor returns a configuration to convert image tensors to Go images.
//
// The tensor may be in any classifiable layout: it is classified and converted to
// channels-last before encoding. Color layouts produce *image.NRGBA; the
// single-channel alpha/mask and unchanneled layouts produce *image.Gray.
func FromTensor() *FromTensorConfig {
	return &FromTensorConfig{}
}

// MaxValue sets the value a full-intensity channel holds in the tensor. It
// defaults to 1.0 for float dtypes and 255 for integer types.
//
// It returns the FromTensorConfig, so configuration calls can be cascaded.
func (ft *FromTensorConfig) MaxValue(v float64) *FromTensorConfig {
	ft.maxValue = v
	return ft
}

// Single converts a tensor holding one image. Rank-4 tensors must have a
// singleton batch axis.
func (ft *FromTensorConfig) Single(t *tensors.Tensor) (image.Image, error) {
	images, err := ft.convert(t, false)
	if err != nil {
		return nil, err
	}
	return images[0], nil
}

// Batch converts a tensor holding a batch of images, one image per entry of the
// batch axis. Rank-2 and rank-3 tensors are a batch of one.
func (ft *FromTensorConfig) Batch(t *tensors.Tensor) ([]image.Image, error) {
	return ft.convert(t, true)
}

func (ft *FromTensorConfig) convert(t *tensors.Tensor, batch bool) ([]image.Image, error) {
	roles, layout, err := Classify(t.Shape())
	if err != nil {
		return nil, err
	}
	if !batch && HasBatch(layout) {
		if t.Rank() != 4 {
			// BHW, which SqueezeBatch leaves alone; it only classifies with 2+ images.
			return nil, errors.Wrapf(ErrNotASingleImage, "it is a batch of %d images", t.Shape().Dim(0))
		}
		if t, err = SqueezeBatch(t, true); err != nil {
			return nil, err
		}
		if roles, layout, err = Classify(t.Shape()); err != nil {
			return nil, err
		}
	}

	// Channels-last form of whatever roles the tensor holds. LayoutHW and
	// LayoutBHW need no conversion: they are encoded as grayscale directly.
	target := layout
	switch {
	case slices.Contains(roles, C):
		channelsAxis, _ := ChannelsAxis(layout)
		if t.Shape().Dim(channelsAxis) == 3 {
			target = LayoutHWRGB
			if HasBatch(layout) {
				target = LayoutBHWRGB
			}
		} else {
			target = LayoutHWRGBA
			if HasBatch(layout) {
				target = LayoutBHWRGBA
			}
		}
	case slices.Contains(roles, A):
		target = LayoutHWA
		if HasBatch(layout) {
			target = LayoutBHWA
		}
	}
	if t, err = ConvertToLayout(t, target); err != nil {
		return nil, err
	}

	numImages, height, width, channels := 1, t.Shape().Dim(0), t.Shape().Dim(1), 1
	if HasBatch(target) {
		numImages, height, width = t.Shape().Dim(0), t.Shape().Dim(1), t.Shape().Dim(2)
	}
	if axis, err := ChannelsAxis(target); err == nil {
		channels = t.Shape().Dim(axis)
	}

	maxValue := ft.maxValue
	if maxValue == 0 {
		maxValue = 1.0
		if !t.DType().IsFloat() {
			maxValue = 255.0
		}
	}

	var images []image.Image
	switch t.DType() {
	case dtypes.Float32:
		images = flatToImages[float32](t, numImages, height, width, channels, maxValue)
	case dtypes.Float64:
		images = flatToImages[float64](t, numImages, height, width, channels, maxValue)
	case dtypes.Int8:
		images = flatToImages[int8](t, numImages, height, width, channels, maxValue)
	case dtypes.Int16:
		images = flatToImages[int16](t, numImages, height, width, channels, maxValue)
	case dtypes.Int32:
		images = flatToImages[int32](t, numImages, height, width, channels, maxValue)
	case dtypes.Int64:
		images = flatToImages[int64](t, numImages, height, width, channels, maxValue)
	case dtypes.Uint8:
		images = flatToImages[uint8](t, numImages, height, width, channels, maxValue)
	case dtypes.Uint16:
		images = flatToImages[uint16](t, numImages, height, width, channels, maxValue)
	case dtypes.Uint32:
		images = flatToImages[uint32](t, numImages, height, width, channels, maxValue)
	case dtypes.Uint64:
		images = flatToImages[uint64](t, numImages, height, width, channels, maxValue)
	case dtypes.Float16:
		images = flatToImages[float16.Float16](t, numImages, height, width, channels, maxValue)
	case dtypes.BFloat16:
		images = flatToImages[bfloat16.BFloat16](t, numImages, height, width, channels, maxValue)
	default:
		return nil, errors.Errorf("imglayout.FromTensor does not support dtype %s", t.DType())
	}
	return images, nil
}

func flatToImages[T dtypes.NumberNotComplex | float16.Float16 | bfloat16.BFloat16](
	t *tensors.Tensor, numImages, height, width, channels int, maxValue float64) []image.Image {
	images := make([]image.Image, 0, numImages)
	isFloat16 := t.DType() == dtypes.Float16
	isBFloat16 := t.DType() == dtypes.BFloat16
	toUint8 := func(v T) uint8 {
		var f float64
		if isFloat16 {
			f = float64(float16.Float16(v).Float32())
		} else if isBFloat16 {
			f = float64(bfloat16.BFloat16(v).Float32())
		} else {
			f = float64(v)
		}
		return uint8(math.Round(255 * (f / maxValue)))
	}
	tensors.ConstFlatData(t, func(flat []T) {
		pos := 0
		for imageIdx := 0; imageIdx < numImages; imageIdx++ {
			if channels == 1 {
				img := image.NewGray(image.Rect(0, 0, width, height))
				for y := 0; y < height; y++ {
					for x := 0; x < width; x++ {
						img.Pix[y*img.Stride+x] = toUint8(flat[pos])
						pos++
					}
				}
				images = append(images, img)
				continue
			}
			img := image.NewNRGBA(image.Rect(0, 0, width, height))
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					for d := 0; d < channels; d++ {
						img.Pix[y*img.Stride+x*4+d] = toUint8(flat[pos])
						pos++
					}
					if channels < 4 {
						img.Pix[y*img.Stride+x*4+3] = 255 // Opaque alpha.
					}
				}
			}
			images = append(images, img)
		}
	})
	return images
}
