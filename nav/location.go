// Package nav models the addressable view state of the viewer as an
// ordered query string, so a view can be restored or shared exactly.
package nav

import (
	"net/url"
	"strings"
)

// Param is one query parameter. Order is preserved across edits so a
// round-tripped location string is stable.
type Param struct {
	Key   string
	Value string
}

// Location is the viewer's address: an ordered set of query
// parameters. The zero value is an empty location.
type Location struct {
	params []Param
}

// Parse decodes a query string (with or without a leading "?").
// Malformed escapes are kept verbatim rather than rejected; a location
// never fails to load.
func Parse(query string) Location {
	query = strings.TrimPrefix(query, "?")
	var loc Location
	if query == "" {
		return loc
	}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		loc.params = append(loc.params, Param{Key: key, Value: value})
	}
	return loc
}

// Get returns the first value for key, or "".
func (l Location) Get(key string) string {
	for _, p := range l.params {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Set replaces the value of key in place, keeping its position. An
// absent key is appended; an empty value removes the key. This is the
// replace-without-history edit: repeated Set calls on the same key
// produce one parameter, never duplicates.
func (l *Location) Set(key, value string) {
	if value == "" {
		l.Del(key)
		return
	}
	updated := false
	out := l.params[:0]
	for _, p := range l.params {
		if p.Key == key {
			if !updated {
				p.Value = value
				out = append(out, p)
				updated = true
			}
			continue
		}
		out = append(out, p)
	}
	l.params = out
	if !updated {
		l.params = append(l.params, Param{Key: key, Value: value})
	}
}

// Del removes every occurrence of key.
func (l *Location) Del(key string) {
	out := l.params[:0]
	for _, p := range l.params {
		if p.Key != key {
			out = append(out, p)
		}
	}
	l.params = out
}

// String encodes the location as a query string without a leading
// "?". An empty location encodes as "".
func (l Location) String() string {
	if len(l.params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range l.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		if p.Value != "" {
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(p.Value))
		}
	}
	return b.String()
}

// Navigate returns the location produced by a full navigation to a
// unit-scoped view: the filter parameter is cleared and the unit
// selector set, everything else carried over.
func (l Location) Navigate(unit string) Location {
	next := Location{params: append([]Param(nil), l.params...)}
	next.Del("filter")
	next.Set("unit", unit)
	return next
}
