// Package dateparse formats the free-form dates found in feeds using
// github.com/araddon/dateparse.
package dateparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/topicreader"
)

// DisplayLayout is the layout dates are rendered in.
const DisplayLayout = "2006-01-02 15:04"

// Ensure Formatter implements topicreader.DateFormatter at compile time.
var _ topicreader.DateFormatter = (*Formatter)(nil)

// Formatter renders raw feed dates in a fixed location.
type Formatter struct {
	loc *time.Location
}

// NewFormatter creates a Formatter rendering in loc. If loc is nil, UTC is used.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

// Format parses raw in any format dateparse understands and renders it with
// DisplayLayout. Input it cannot parse, or that lacks a year, is returned
// unchanged.
func (f *Formatter) Format(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	t, err := dateparse.ParseIn(s, f.loc)
	if err != nil || t.Year() == 0 {
		return raw
	}
	return t.In(f.loc).Format(DisplayLayout)
}
