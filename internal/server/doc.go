// Package server implements the HTTP API of the pixel clock service.
//
// Every image route answers with a PNG whose pixels carry 32-bit
// values. Clients that can decode an image but not parse text, such as game
// engines or small displays, read the values back from the pixel channels.
//
// # Routes
//
//   - GET /api/1/utc: one block holding the unix time
//   - GET /api/1/local: four blocks holding the unix time, the current UTC
//     offset in seconds, the unix time of the next offset transition and the
//     offset after it (both 0 when the zone has no further transition)
//   - GET /api/1: JSON list of routes and their parameters
//   - GET /ping: health check
//
// Image routes accept "now" (ISO-8601 instant), "size" (block edge in pixels,
// clamped to 1-128, default 1) and "format" (only "png"). The local route
// also accepts "tz" (default UTC).
//
// When "now" is absent, the X-Request-Start header (milliseconds since the
// epoch) is used, and failing that the wall clock.
//
// # Response Headers
//
// Images are sent with Cache-Control: no-cache and without transfer
// compression.
//
// # Error Handling
//
// Malformed "now", "tz", "size", "format" or X-Request-Start values produce
// 400 Bad Request with a plain-text message. A clock outside the unsigned
// 32-bit unix range produces 500 Internal Server Error. Both are logged.
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
