// Package zone resolves timezone identifiers and reports offset transitions.
//
// Zone rules come from the host's IANA database ($ZONEINFO or the system
// zoneinfo directory), so transitions follow the host's rule version. The
// copy embedded through time/tzdata is a fallback for hosts without one. Both
// historical and scheduled future rule changes are taken into account.
//
// # Identifiers
//
// Load accepts:
//   - IANA region names such as "Australia/Sydney" or "Etc/GMT+5"
//   - "UTC", "GMT", "UT" and "Z"
//   - fixed offsets: "+1", "+10", "+10:00", "-0530", "+05:30:15"; with a
//     colon the hour takes two digits
//   - fixed offsets with a prefix: "UTC+10", "GMT-05:30", "UT+01"
//
// Fixed offsets are limited to ±18 hours.
package zone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Fallback IANA database for hosts without zoneinfo

	"github.com/ironsheep/pixel-clock/internal/imaging"
)

// maxOffset is the largest accepted fixed offset, in seconds.
const maxOffset = 18 * 60 * 60

// maxSkips bounds how many abbreviation-only boundaries Inspect steps over
// while looking for a real offset change.
const maxSkips = 16

// ErrUnknownZone is returned when an identifier names no known timezone.
var ErrUnknownZone = errors.New("unknown time zone")

// Transition is a point in time at which a zone's UTC offset changes.
type Transition struct {
	// At is the first instant governed by the new offset, in UTC.
	At time.Time

	// OffsetAfter is the UTC offset in seconds from At onwards.
	OffsetAfter int64
}

// Info describes a zone at a particular instant.
type Info struct {
	// OffsetNow is the UTC offset in seconds in effect at the instant.
	OffsetNow int64

	// Next is the first offset change strictly after the instant, or nil if
	// the zone has no further changes.
	Next *Transition
}

// Load resolves a zone identifier. An empty identifier selects UTC.
func Load(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	switch id {
	case "":
		return time.UTC, nil
	case "Local":
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	for _, prefix := range []string{"UTC", "GMT", "UT", ""} {
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		if rest == "" && prefix != "" {
			return time.UTC, nil
		}
		if rest == "Z" && prefix == "" {
			return time.UTC, nil
		}
		if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
			offset, err := parseOffset(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, id, err)
			}
			return fixedZone(prefix, offset), nil
		}
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	return loc, nil
}

// parseOffset parses "+h", "+hh", "+hhmm", "+hh:mm", "+hhmmss" and
// "+hh:mm:ss" (or the same with a leading "-") into seconds east of UTC.
func parseOffset(s string) (int, error) {
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	body := s[1:]

	var parts []string
	switch {
	case strings.Contains(body, ":"):
		parts = strings.Split(body, ":")
		if len(parts) > 3 {
			return 0, errors.New("too many offset fields")
		}
		if len(parts[0]) != 2 {
			return 0, errors.New("hours need two digits before a colon")
		}
		for _, p := range parts[1:] {
			if len(p) != 2 {
				return 0, errors.New("minutes and seconds need two digits")
			}
		}
	case len(body) == 1 || len(body) == 2:
		parts = []string{body}
	case len(body) == 4:
		parts = []string{body[:2], body[2:]}
	case len(body) == 6:
		parts = []string{body[:2], body[2:4], body[4:]}
	default:
		return 0, fmt.Errorf("malformed offset %q", s)
	}

	units := []int{3600, 60, 1}
	limits := []int{18, 59, 59}
	total := 0
	for i, p := range parts {
		if p == "" || len(p) > 2 {
			return 0, fmt.Errorf("malformed offset %q", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("malformed offset %q", s)
		}
		total += n * units[i]
	}
	if total > maxOffset {
		return 0, fmt.Errorf("offset %q exceeds 18 hours", s)
	}
	return sign * total, nil
}

// fixedZone names a fixed offset the way it is usually written: "+10:00",
// or "UTC+10:00" when the identifier carried a prefix.
func fixedZone(prefix string, offset int) *time.Location {
	if offset == 0 && prefix == "" {
		return time.UTC
	}
	sign := '+'
	abs := offset
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	name := fmt.Sprintf("%s%c%02d:%02d", prefix, sign, abs/3600, abs/60%60)
	if abs%60 != 0 {
		name += fmt.Sprintf(":%02d", abs%60)
	}
	return time.FixedZone(name, offset)
}

// Inspect reports the offset in effect at the given instant and the next
// offset change after it.
//
// Boundaries where only the zone abbreviation or the daylight-saving flag
// changes, but the offset stays the same, are skipped. Fixed zones have no
// next transition.
func Inspect(loc *time.Location, at time.Time) Info {
	t := at.In(loc)
	_, offset := t.Zone()
	info := Info{OffsetNow: int64(offset)}

	cur := t
	for i := 0; i < maxSkips; i++ {
		_, end := cur.ZoneBounds()
		if end.IsZero() || !end.After(cur) {
			break
		}
		if _, after := end.Zone(); after != offset {
			info.Next = &Transition{At: end.UTC(), OffsetAfter: int64(after)}
			break
		}
		cur = end
	}
	return info
}

// Values returns the four values reported for local time, in block order:
// the unix time, the current offset, the unix time of the next transition and
// the offset after it. Without a next transition the last two are 0.
//
// The transition instant must itself fit unsigned 32-bit unix time; otherwise
// an error wrapping imaging.ErrRange is returned.
func (i Info) Values(unix uint32) ([]int64, error) {
	values := []int64{int64(unix), i.OffsetNow, 0, 0}
	if i.Next == nil {
		return values, nil
	}
	next, err := imaging.ToUnixSeconds(i.Next.At)
	if err != nil {
		return nil, fmt.Errorf("next transition: %w", err)
	}
	values[2] = int64(next)
	values[3] = i.Next.OffsetAfter
	return values, nil
}
