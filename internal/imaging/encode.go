package imaging

import (
	"errors"
	"fmt"
	"time"
)

// MaxUnixSeconds is the largest unix time that fits the 32-bit pixel channel.
const MaxUnixSeconds = 0xFFFFFFFF

var (
	// ErrRange is returned when an instant falls outside the unsigned 32-bit
	// unix time range. It indicates a broken clock rather than a bad request.
	ErrRange = errors.New("unix time out of range")

	// ErrUnknownFormat is returned when no codec is registered for a format.
	ErrUnknownFormat = errors.New("unknown image format")

	// ErrLayout is returned when an image cannot hold an encoded value set.
	ErrLayout = errors.New("invalid encoded image layout")
)

// EncodePixel converts a value into an ARGB pixel word.
//
// The value is read as an R,G,B,A quadruple (R most significant) and rotated
// so that alpha occupies the top byte of the word:
//
//	pixel = (value << 24) | ((value >> 8) & 0x00FFFFFF)
//
// Only the low 32 bits of value take part. Values outside [0, 0xFFFFFFFF] are
// not rejected; a negative offset is encoded through its unsigned bit pattern.
func EncodePixel(value int64) uint32 {
	v := uint32(value)
	return v<<24 | (v>>8)&0x00FFFFFF
}

// DecodePixel reverses EncodePixel, turning an ARGB pixel word back into the
// RGBA-ordered value.
func DecodePixel(pixel uint32) uint32 {
	return pixel<<8 | (pixel>>24)&0xFF
}

// DecodeOffset reinterprets a decoded channel value as a signed UTC offset.
func DecodeOffset(value uint32) int64 {
	return int64(int32(value))
}

// ToUnixSeconds returns the whole seconds elapsed since the unix epoch.
//
// Sub-second precision is truncated toward negative infinity, matching
// time.Time.Unix. Instants before 1970-01-01T00:00:00Z or later than
// MaxUnixSeconds fail with an error wrapping ErrRange.
func ToUnixSeconds(t time.Time) (uint32, error) {
	sec := t.Unix()
	if sec < 0 || sec > MaxUnixSeconds {
		return 0, fmt.Errorf("%w: unixTime = %d", ErrRange, sec)
	}
	return uint32(sec), nil
}

// channels splits a pixel word into its R, G, B and A bytes.
func channels(pixel uint32) (r, g, b, a uint8) {
	return uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel), uint8(pixel >> 24)
}

// word packs R, G, B and A bytes back into an ARGB pixel word.
func word(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
