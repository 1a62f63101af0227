package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ironsheep/pixel-clock/internal/clock"
	"github.com/ironsheep/pixel-clock/internal/imaging"
	"github.com/ironsheep/pixel-clock/internal/zone"
)

// errInvalidParam marks a malformed query parameter other than an instant
// or a zone.
var errInvalidParam = errors.New("invalid parameter")

// imageParams holds the output options shared by the image routes.
type imageParams struct {
	size  int
	codec imaging.Codec
}

// parseImageParams reads "size" and "format". A missing size means 1; an
// out-of-range size is clamped, not rejected.
func parseImageParams(r *http.Request) (imageParams, error) {
	q := r.URL.Query()
	p := imageParams{size: imaging.MinBlockSize}

	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return imageParams{}, fmt.Errorf("%w: size %q is not an integer", errInvalidParam, raw)
		}
		p.size = imaging.ClampBlockSize(n)
	}

	codec, err := imaging.CodecFor(q.Get("format"))
	if err != nil {
		return imageParams{}, err
	}
	p.codec = codec
	return p, nil
}

// now resolves the instant a request reports.
func (s *Server) now(r *http.Request) (time.Time, error) {
	return clock.Resolve(r.URL.Query().Get("now"), r.Header.Get(clock.HeaderRequestStart), s.clock)
}

// === Image Handlers ===

func (s *Server) handleUTC(w http.ResponseWriter, r *http.Request) {
	p, err := parseImageParams(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	now, err := s.now(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	unix, err := imaging.ToUnixSeconds(now)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.sendValues(w, r, p, []int64{int64(unix)})
}

func (s *Server) handleLocal(w http.ResponseWriter, r *http.Request) {
	p, err := parseImageParams(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	now, err := s.now(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	loc, err := zone.Load(r.URL.Query().Get("tz"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	unix, err := imaging.ToUnixSeconds(now)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	values, err := zone.Inspect(loc, now).Values(unix)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.sendValues(w, r, p, values)
}

// sendValues encodes values as an image and writes it with no-cache headers.
func (s *Server) sendValues(w http.ResponseWriter, r *http.Request, p imageParams, values []int64) {
	if s.cfg.Debug {
		s.log.Printf("%s %s -> %v (size %d, %s)", r.Method, r.URL, values, p.size, p.codec.Format)
	}

	sent := false
	err := s.pool.Render(values, p.size, p.codec, func(b []byte) error {
		h := w.Header()
		h.Set("Content-Type", p.codec.ContentType)
		h.Set("Cache-Control", "no-cache")
		h.Set("Content-Length", strconv.Itoa(len(b)))
		w.WriteHeader(http.StatusOK)
		sent = true
		if r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(b)
		return err
	})
	if err == nil {
		return
	}
	if sent {
		s.log.Printf("Failed to write response for %s: %v", r.URL, err)
		return
	}
	s.fail(w, r, err)
}

// === Service Handlers ===

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"routes": s.routes(),
	})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{})
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("Failed to encode response: %v", err)
	}
}

// === Errors ===

// statusFor maps an error to the HTTP status reported to the client.
// Malformed input is the client's fault; anything else, such as a clock
// outside the 32-bit unix range, is a server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, clock.ErrParse),
		errors.Is(err, zone.ErrUnknownZone),
		errors.Is(err, imaging.ErrUnknownFormat),
		errors.Is(err, errInvalidParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err and writes a plain-text error response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	s.log.Printf("%s %s: %d: %v", r.Method, r.URL, status, err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
