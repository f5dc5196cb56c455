package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultPerPage is the page size used when a caller does not pick one.
const DefaultPerPage = 15

// PageMeta describes server-side pagination of a filtered set. Total
// counts the whole filtered set, not the page slice.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
}

// SafeMeta is the default meta returned on failure so callers never need
// a shape check before rendering pagination.
func SafeMeta() PageMeta {
	return PageMeta{CurrentPage: 1, LastPage: 1, Total: 0, PerPage: DefaultPerPage}
}

// Result is the normalized envelope every service function returns.
// Success=false never carries usable Data; Message is always non-empty
// and display-ready.
type Result[T any] struct {
	Success bool            `json:"success"`
	Data    T               `json:"data"`
	Meta    PageMeta        `json:"meta"`
	Message string          `json:"message"`
	Reports json.RawMessage `json:"reports,omitempty"`
}

// ListParams is the loosely-typed filter/pagination bag shared by every
// list endpoint. Zero-valued fields are omitted from the query entirely;
// an empty string must never reach the backend as an active filter.
type ListParams struct {
	Search   string
	Status   string
	Type     string
	Page     int
	PerPage  int
	DateFrom string
	DateTo   string
}

// Values encodes the present fields only.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.DateFrom != "" {
		q.Set("date_from", p.DateFrom)
	}
	if p.DateTo != "" {
		q.Set("date_to", p.DateTo)
	}
	return q
}

// serverEnvelope is the wire shape: {status, message, data}.
type serverEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// listPayload is the structured list variant of the data field.
type listPayload struct {
	Items   json.RawMessage `json:"items"`
	Meta    *PageMeta       `json:"meta"`
	Reports json.RawMessage `json:"reports"`
}

// FetchList GETs a list endpoint and decodes either list shape the
// backend emits: a bare array, or {items, meta, reports}. This decoder is
// the single place defensive shape handling lives.
func FetchList[T any](ctx context.Context, c *Client, path string, query url.Values) Result[[]T] {
	var env serverEnvelope
	if err := c.GetJSON(ctx, path, query, &env); err != nil {
		return listFailure[T](ctx, c, err)
	}

	items := make([]T, 0)
	meta := SafeMeta()
	var reports json.RawMessage

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return Result[[]T]{Success: true, Data: items, Meta: meta, Message: successMessage(ctx, c, env.Message)}
	}

	var structured listPayload
	if err := json.Unmarshal(env.Data, &structured); err == nil && structured.Items != nil {
		if err := json.Unmarshal(structured.Items, &items); err != nil {
			return listFailure[T](ctx, c, err)
		}
		if structured.Meta != nil {
			meta = *structured.Meta
		}
		reports = structured.Reports
	} else if err := json.Unmarshal(env.Data, &items); err != nil {
		return listFailure[T](ctx, c, err)
	} else {
		meta = PageMeta{CurrentPage: 1, LastPage: 1, Total: len(items), PerPage: maxInt(len(items), 1)}
	}
	if items == nil {
		items = make([]T, 0)
	}

	return Result[[]T]{
		Success: true,
		Data:    items,
		Meta:    meta,
		Message: successMessage(ctx, c, env.Message),
		Reports: reports,
	}
}

// FetchOne GETs a single-resource endpoint.
func FetchOne[T any](ctx context.Context, c *Client, path string, query url.Values) Result[T] {
	var env serverEnvelope
	if err := c.GetJSON(ctx, path, query, &env); err != nil {
		return Failure[T](ctx, c, err)
	}
	return decodeOne[T](ctx, c, env)
}

// Mutate issues a JSON mutation (POST/PUT/DELETE). Data may be the zero
// value on side-effect-only endpoints.
func Mutate[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	var env serverEnvelope
	var err error
	switch method {
	case http.MethodPost:
		err = c.PostJSON(ctx, path, body, &env)
	case http.MethodPut:
		err = c.PutJSON(ctx, path, body, &env)
	case http.MethodDelete:
		err = c.Delete(ctx, path, &env)
	default:
		err = errors.New("api: unsupported mutation method " + method)
	}
	if err != nil {
		return Failure[T](ctx, c, err)
	}
	return decodeOne[T](ctx, c, env)
}

// SubmitForm POSTs a multipart bracket-notation body.
func SubmitForm[T any](ctx context.Context, c *Client, path string, form *FormData) Result[T] {
	var env serverEnvelope
	if err := c.PostForm(ctx, path, form, &env); err != nil {
		return Failure[T](ctx, c, err)
	}
	return decodeOne[T](ctx, c, env)
}

func decodeOne[T any](ctx context.Context, c *Client, env serverEnvelope) Result[T] {
	var data T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return Failure[T](ctx, c, err)
		}
	}
	return Result[T]{
		Success: true,
		Data:    data,
		Meta:    SafeMeta(),
		Message: successMessage(ctx, c, env.Message),
	}
}

// Failure folds any client-core error into a well-formed envelope. The
// message prefers what the server said, then the localized fallback.
func Failure[T any](ctx context.Context, c *Client, err error) Result[T] {
	var zero T
	return Result[T]{
		Success: false,
		Data:    zero,
		Meta:    SafeMeta(),
		Message: MessageFromError(ctx, c, err),
	}
}

func listFailure[T any](ctx context.Context, c *Client, err error) Result[[]T] {
	return Result[[]T]{
		Success: false,
		Data:    make([]T, 0),
		Meta:    SafeMeta(),
		Message: MessageFromError(ctx, c, err),
	}
}

// MessageFromError extracts a display-ready message from any error the
// pipeline can produce.
func MessageFromError(ctx context.Context, c *Client, err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return c.Fallback(ctx, KindUnknown)
}

func successMessage(ctx context.Context, c *Client, serverMsg string) string {
	if serverMsg != "" {
		return serverMsg
	}
	return c.SuccessMessage(ctx)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
