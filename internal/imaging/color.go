package imaging

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component, most significant byte of the value
	G uint8 `json:"g"` // Green component
	B uint8 `json:"b"` // Blue component
	A uint8 `json:"a"` // Alpha component, least significant byte of the value
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// PixelColor describes the pixel that carries a value.
//
// Clients debugging an integration usually inspect the image in an editor,
// which shows colors rather than pixel words. PixelColor gives the same view.
type PixelColor struct {
	Value uint32    `json:"value"` // Value carried by the pixel
	Hex   string    `json:"hex"`   // Hex format "#rrggbb" (alpha excluded)
	RGBA  RGBAColor `json:"rgba"`  // Channel bytes as stored in the image
	HSL   HSLColor  `json:"hsl"`   // HSL representation of the RGB part
}

// ColorOf returns the color of the pixel that EncodePixel produces for value.
func ColorOf(value uint32) PixelColor {
	r, g, b, a := channels(EncodePixel(int64(value)))
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, l := c.Hsl()

	return PixelColor{
		Value: value,
		Hex:   c.Hex(),
		RGBA:  RGBAColor{R: r, G: g, B: b, A: a},
		HSL:   HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// String renders the color as "#rrggbb/aa".
func (p PixelColor) String() string {
	return fmt.Sprintf("%s/%02x", p.Hex, p.RGBA.A)
}
