// Package imaging encodes integer values as pixels and lays them out as images.
//
// This package implements the value-to-pixel scheme used by the pixel clock
// service and its inverse. Clients that can decode an image but cannot parse
// text read each value back from the four channels of a pixel.
//
// # Pixel Word Layout
//
// A value is treated as an R,G,B,A quadruple where R is the most significant
// byte and A the least significant byte. The pixel word produced by
// EncodePixel stores channels alpha first (A,R,G,B), so the value is rotated:
//
//	pixel = (value << 24) | ((value >> 8) & 0x00FFFFFF)
//	value = (pixel << 8)  | ((pixel >> 24) & 0xFF)
//
// All arithmetic is unsigned 32-bit. Negative inputs (UTC offsets west of
// Greenwich) wrap through their two's complement bit pattern.
//
// # Block Layout
//
// Assemble places N values side by side. Each value fills a square block of
// blockSize×blockSize identical pixels so that a reader sampling a downscaled
// copy still recovers the exact value. Block size is clamped to [1, 128].
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner, X increasing
// rightward and Y increasing downward. Block i covers the half-open rectangle
// [i*blockSize, (i+1)*blockSize) × [0, blockSize).
//
// # Thread Safety
//
// All functions are pure except BufferPool, which is safe for concurrent use.
//
// # Error Handling
//
// Functions return errors wrapping the package sentinels:
//   - ErrRange: an instant cannot be represented as unsigned 32-bit unix time
//   - ErrUnknownFormat: no codec exists for the requested image format
//   - ErrLayout: an image does not have the shape of an encoded value set
package imaging
