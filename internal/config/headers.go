package config

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Header is a single name/value pair in a HeaderList.
type Header struct {
	Name  string
	Value string
}

// HeaderList is an ordered set of request headers with case-insensitive,
// unique names. The zero value is an empty list ready to use.
type HeaderList struct {
	entries []Header
	index   map[string]int // canonical name -> position in entries
}

// NewHeaderList returns an empty list.
func NewHeaderList() *HeaderList {
	return &HeaderList{index: make(map[string]int)}
}

// Set stores value under name. If name is already present its value is
// replaced in place and the previous value is returned with replaced=true.
func (h *HeaderList) Set(name, value string) (previous string, replaced bool) {
	if h.index == nil {
		h.index = make(map[string]int)
	}
	key := http.CanonicalHeaderKey(name)
	if i, ok := h.index[key]; ok {
		previous = h.entries[i].Value
		h.entries[i].Value = value
		return previous, true
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, Header{Name: key, Value: value})
	return "", false
}

// Get returns the value stored for name, matched case-insensitively.
func (h *HeaderList) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	i, ok := h.index[http.CanonicalHeaderKey(name)]
	if !ok {
		return "", false
	}
	return h.entries[i].Value, true
}

// Len returns the number of distinct header names.
func (h *HeaderList) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Headers returns a copy of the entries in first-seen order.
func (h *HeaderList) Headers() []Header {
	if h == nil {
		return nil
	}
	out := make([]Header, len(h.entries))
	copy(out, h.entries)
	return out
}

// HTTPHeader converts the list into an http.Header for a request.
func (h *HeaderList) HTTPHeader() http.Header {
	out := make(http.Header, h.Len())
	for _, e := range h.Headers() {
		out.Set(e.Name, e.Value)
	}
	return out
}

// String encodes the list back into the space-separated name:value form
// accepted by ParseHeaderList.
func (h *HeaderList) String() string {
	pairs := make([]string, 0, h.Len())
	for _, e := range h.Headers() {
		pairs = append(pairs, e.Name+":"+e.Value)
	}
	return strings.Join(pairs, " ")
}

// DiagnosticKind classifies a HeaderDiagnostic.
type DiagnosticKind int

const (
	DiagInvalidName  DiagnosticKind = iota // name has bytes not allowed in a header field name
	DiagInvalidValue                       // value has control bytes
	DiagOverwritten                        // an earlier value for the same name was replaced
)

// Severity is the reporting level for a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// Severity reports whether the kind is a dropped pair (warning) or a
// replaced value (info).
func (k DiagnosticKind) Severity() Severity {
	if k == DiagOverwritten {
		return SeverityInfo
	}
	return SeverityWarning
}

func (k DiagnosticKind) String() string {
	switch k {
	case DiagInvalidName:
		return "invalid header name"
	case DiagInvalidValue:
		return "invalid header value"
	case DiagOverwritten:
		return "header overwritten"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// HeaderDiagnostic describes a pair that was dropped or replaced while
// parsing a header list.
type HeaderDiagnostic struct {
	Kind     DiagnosticKind
	Token    string // raw name:value token as it appeared in the input
	Name     string
	Value    string
	Previous string // replaced value, set only for DiagOverwritten
}

func (d HeaderDiagnostic) String() string {
	if d.Kind == DiagOverwritten {
		return fmt.Sprintf("%s: %q before value: %q", d.Kind, d.Name, d.Previous)
	}
	return fmt.Sprintf("%s in %q", d.Kind, d.Token)
}

// ParseHeaderList parses space-separated name:value pairs. Each token is split
// on its first colon; tokens without a colon are ignored. Pairs whose name or
// value is not a valid header field are dropped and reported. A repeated name
// replaces the earlier value and is reported as well, so the last occurrence
// wins. The returned list is never nil.
func ParseHeaderList(raw string) (*HeaderList, []HeaderDiagnostic) {
	list := NewHeaderList()
	diags := parseHeaderListInto(list, raw, nil)
	return list, diags
}

func parseHeaderListInto(list *HeaderList, raw string, diags []HeaderDiagnostic) []HeaderDiagnostic {
	for _, token := range strings.Split(raw, " ") {
		name, value, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		if !httpguts.ValidHeaderFieldName(name) {
			diags = append(diags, HeaderDiagnostic{Kind: DiagInvalidName, Token: token, Name: name, Value: value})
			continue
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			diags = append(diags, HeaderDiagnostic{Kind: DiagInvalidValue, Token: token, Name: name, Value: value})
			continue
		}
		if prev, replaced := list.Set(name, value); replaced {
			diags = append(diags, HeaderDiagnostic{
				Kind:     DiagOverwritten,
				Token:    token,
				Name:     http.CanonicalHeaderKey(name),
				Value:    value,
				Previous: prev,
			})
		}
	}
	return diags
}
