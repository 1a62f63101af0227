package imaging

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Codec serializes an assembled image into a lossless container format.
type Codec struct {
	// Format is the short name used in the "format" query parameter.
	Format string

	// ContentType is the MIME type sent with the encoded bytes.
	ContentType string

	encoder imgio.Encoder
}

// Encode writes img to w in the codec's format.
func (c Codec) Encode(w io.Writer, img image.Image) error {
	if err := c.encoder(w, img); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", c.Format, err)
	}
	return nil
}

// PNG is the default codec.
var PNG = Codec{Format: "png", ContentType: "image/png", encoder: imgio.PNGEncoder()}

// Codecs lists every format CodecFor accepts. A codec belongs here only if
// all four bytes of each pixel survive a round trip through it; 32-bit BMP
// readers drop the alpha byte, so BMP is not offered.
func Codecs() []Codec {
	return []Codec{PNG}
}

// CodecFor returns the codec registered under name. An empty name selects PNG.
func CodecFor(name string) (Codec, error) {
	if name == "" {
		return PNG, nil
	}
	for _, c := range Codecs() {
		if strings.EqualFold(c.Format, name) {
			return c, nil
		}
	}
	return Codec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
