// Package clock determines the instant a request should report.
//
// The instant comes from, in order of precedence:
//  1. an explicit ISO-8601 override (the "now" query parameter)
//  2. the X-Request-Start header set by some reverse proxies (milliseconds
//     since the unix epoch)
//  3. the wall clock
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// HeaderRequestStart is the request header carrying the proxy timestamp.
// Heroku sets it, as do some nginx configurations.
const HeaderRequestStart = "X-Request-Start"

// ErrParse is returned when an override or header value is malformed.
var ErrParse = errors.New("malformed instant")

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Resolve picks the instant for a request. Empty strings mean absent.
//
// A malformed override or header fails with an error wrapping ErrParse; the
// next source is not consulted in that case.
func Resolve(override, header string, c Clock) (time.Time, error) {
	if override != "" {
		return ParseInstant(override)
	}
	if header != "" {
		return ParseEpochMillis(header)
	}
	if c == nil {
		c = System{}
	}
	return c.Now(), nil
}

// ParseInstant parses an ISO-8601 instant such as "2007-08-31T00:00:00Z".
// Fractional seconds and numeric zone offsets are accepted.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 instant", ErrParse, s)
	}
	return t.UTC(), nil
}

// ParseEpochMillis parses a count of milliseconds since the unix epoch.
func ParseEpochMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a millisecond timestamp", ErrParse, s)
	}
	return time.UnixMilli(ms).UTC(), nil
}
