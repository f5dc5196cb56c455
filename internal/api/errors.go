package api

import (
	"fmt"
	"sort"
)

// Kind classifies a failed request the way the dashboard reacts to it.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindNetwork
	KindAuth       // 401 after the one-shot refresh-retry
	KindForbidden  // 403
	KindNotFound   // 404
	KindValidation // 422
	KindServer     // 500 / 503
)

// String returns the metric/log label for the kind.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the classified failure returned by the client core. Message is
// always suitable for direct user display: the server-provided message when
// one exists, otherwise a localized fallback.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	// Fields holds the 422 field-keyed validation messages when the server
	// provided them. The dashboard never maps these back onto form fields;
	// they are exposed here so a consumer could.
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// FieldMessages flattens the 422 field map into individual messages in
// stable field order.
func (e *Error) FieldMessages() []string {
	if len(e.Fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []string
	for _, k := range keys {
		out = append(out, e.Fields[k]...)
	}
	return out
}

// kindForStatus maps an HTTP status to its classification.
func kindForStatus(status int) Kind {
	switch status {
	case 401:
		return KindAuth
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	case 422:
		return KindValidation
	case 500, 503:
		return KindServer
	default:
		return KindUnknown
	}
}
