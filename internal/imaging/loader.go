package imaging

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format decoder
	"io"

	"github.com/disintegration/imaging"
)

// DecodeImage reads an encoded value image from r.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// LoadImage reads an encoded value image from a file on disk.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// ReadValues recovers the values carried by an image produced by Assemble.
//
// Parameters:
//   - img: The decoded image. Any concrete image type is accepted; it is
//     normalized to non-premultiplied RGBA before sampling.
//   - blockSize: Edge length of each value block. Zero or negative infers it
//     from the image height.
//
// Returns the decoded values in block order. The centre pixel of each block is
// sampled, so a reader tolerates damaged block edges.
//
// # Errors
//
//   - Returns an error wrapping ErrLayout if the image height differs from
//     blockSize or the width is not a positive multiple of it.
func ReadValues(img image.Image, blockSize int) ([]uint32, error) {
	grid, ok := img.(*image.NRGBA)
	if !ok || grid.Rect.Min != (image.Point{}) {
		grid = imaging.Clone(img)
	}

	width, height := grid.Rect.Dx(), grid.Rect.Dy()
	if blockSize <= 0 {
		blockSize = height
	}
	if blockSize == 0 || height != blockSize || width == 0 || width%blockSize != 0 {
		return nil, fmt.Errorf("%w: %dx%d image with block size %d", ErrLayout, width, height, blockSize)
	}

	count := width / blockSize
	values := make([]uint32, count)
	mid := blockSize / 2
	for i := range values {
		values[i] = DecodePixel(PixelAt(grid, i*blockSize+mid, mid))
	}
	return values, nil
}
