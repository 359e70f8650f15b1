package jsontime

import (
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
)

// Pattern is a compiled date/time pattern plus an optional embedded zone.
// An embedded zone wins over every other zone source when formatting and is
// the fallback zone when parsing text without an offset.
//
// The zero Pattern is invalid; build one with NewPattern.
type Pattern struct {
	layout *pattern.Layout
	zone   *time.Location
}

// NewPattern compiles src. zone may be nil.
func NewPattern(src string, zone *time.Location) (*Pattern, error) {
	l, err := pattern.Get(src)
	if err != nil {
		return nil, &ConfigurationError{Reason: "invalid pattern", Err: err}
	}
	return &Pattern{layout: l, zone: zone}, nil
}

// MustPattern is like NewPattern but panics on error. Handy for package-level
// variables and tests.
func MustPattern(src string, zone *time.Location) *Pattern {
	p, err := NewPattern(src, zone)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) String() string { return p.layout.String() }

// Zone returns the embedded zone, or nil.
func (p *Pattern) Zone() *time.Location { return p.zone }

// WithZone returns a copy of p embedding zone.
func (p *Pattern) WithZone(zone *time.Location) *Pattern {
	return &Pattern{layout: p.layout, zone: zone}
}

func (p *Pattern) format(f pattern.Fields) string { return p.layout.Format(f) }

func (p *Pattern) parse(s string) (pattern.Parsed, error) { return p.layout.Parse(s) }
