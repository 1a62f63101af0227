package server

import "net/http"

// Param describes a query parameter accepted by a route.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     string `json:"default,omitempty"`
}

// Route describes one HTTP endpoint.
type Route struct {
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Description string  `json:"description"`
	Params      []Param `json:"params,omitempty"`

	handler http.HandlerFunc
}

var (
	paramNow = Param{
		Name:        "now",
		Type:        "string",
		Description: "ISO-8601 instant to report instead of the current time, e.g. 2007-08-31T00:00:00Z",
	}
	paramSize = Param{
		Name:        "size",
		Type:        "integer",
		Description: "Edge length in pixels of each value block, clamped to 1-128",
		Default:     "1",
	}
	paramFormat = Param{
		Name:        "format",
		Type:        "string",
		Description: "Image format: png",
		Default:     "png",
	}
	paramTZ = Param{
		Name:        "tz",
		Type:        "string",
		Description: "Time zone: IANA name (Australia/Sydney), UTC, or fixed offset (+10:00)",
		Default:     "UTC",
	}
)

// routes returns every endpoint served by s.
func (s *Server) routes() []Route {
	return []Route{
		{
			Method:      http.MethodGet,
			Path:        "/api/1/utc",
			Description: "Image of one block holding the unix time.",
			Params:      []Param{paramNow, paramSize, paramFormat},
			handler:     s.handleUTC,
		},
		{
			Method: http.MethodGet,
			Path:   "/api/1/local",
			Description: "Image of four blocks: unix time, current UTC offset in seconds, " +
				"unix time of the next offset transition (0 if none), offset after it (0 if none).",
			Params:  []Param{paramNow, paramTZ, paramSize, paramFormat},
			handler: s.handleLocal,
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/1",
			Description: "List the available endpoints.",
			handler:     s.handleIndex,
		},
		{
			Method:      http.MethodGet,
			Path:        "/ping",
			Description: "Health check.",
			handler:     s.handlePing,
		},
	}
}
