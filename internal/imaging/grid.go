package imaging

import (
	"image"
)

const (
	// MinBlockSize is the smallest accepted block edge in pixels.
	MinBlockSize = 1

	// MaxBlockSize is the largest accepted block edge in pixels.
	MaxBlockSize = 128
)

// ClampBlockSize constrains a requested block size to [MinBlockSize, MaxBlockSize].
// Out-of-range requests are silently adjusted rather than rejected.
func ClampBlockSize(n int) int {
	if n < MinBlockSize {
		return MinBlockSize
	}
	if n > MaxBlockSize {
		return MaxBlockSize
	}
	return n
}

// Assemble lays out values as a row of square pixel blocks.
//
// Parameters:
//   - values: Values to encode, in left-to-right block order.
//   - blockSize: Edge length of each block in pixels. Clamped to [1, 128].
//
// Returns an image blockSize*len(values) pixels wide and blockSize pixels
// tall. Every pixel of block i carries EncodePixel(values[i]).
//
// The result is non-premultiplied (*image.NRGBA) so that a lossless codec
// preserves all four channel bytes, alpha included. Its Pix slice holds, for
// each pixel, the big-endian bytes of the value.
func Assemble(values []int64, blockSize int) *image.NRGBA {
	size := ClampBlockSize(blockSize)
	stride := size * len(values)
	grid := image.NewNRGBA(image.Rect(0, 0, stride, size))
	if stride == 0 {
		return grid
	}

	// Fill the first row block by block, then replicate it downwards.
	row := grid.Pix[:stride*4]
	for i, v := range values {
		r, g, b, a := channels(EncodePixel(v))
		for x := i * size; x < (i+1)*size; x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			px[0], px[1], px[2], px[3] = r, g, b, a
		}
	}
	for y := 1; y < size; y++ {
		copy(grid.Pix[y*grid.Stride:], row)
	}

	return grid
}

// PixelAt returns the ARGB pixel word stored at (x, y).
// Coordinates outside the image yield 0.
func PixelAt(img *image.NRGBA, x, y int) uint32 {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return 0
	}
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+4 : i+4]
	return word(px[0], px[1], px[2], px[3])
}
