// Package api implements the shared request pipeline for the Mawadk
// dashboard API: auth and locale header injection, the one-shot token
// refresh-and-retry on 401, error classification, and the normalized
// result envelope consumed by every resource service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mawadk/dashboard-client/internal/session"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// DashboardPrefix is the versioned API prefix appended to the base URL.
const DashboardPrefix = "/api/v1/dashboard"

// RefreshPath is the token refresh endpoint, relative to the prefix.
const RefreshPath = "/auth/refresh"

var tracer = otel.Tracer("mawadk.internal.api")

// Config holds the explicit client configuration.
type Config struct {
	BaseURL       string
	SecretKey     string
	Timeout       time.Duration
	DefaultLocale string
}

// Client is the configured request pipeline shared by all services.
// Construct one at startup and pass it to every service; it is safe for
// concurrent use.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	store      session.Store
	logger     *logging.Logger
	notifier   Notifier
	metrics    *Metrics
	onExpired  func()
	defLocale  string

	routeMu   sync.RWMutex
	routePath string
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithNotifier sets the notification sink for user-facing messages.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithMetrics attaches request metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithOnSessionExpired registers the callback fired after an
// irrecoverable 401 has cleared the session.
func WithOnSessionExpired(fn func()) Option {
	return func(c *Client) { c.onExpired = fn }
}

// New creates a client against cfg.BaseURL. The versioned dashboard
// prefix is appended unless the base URL already carries it.
func New(cfg Config, store session.Store, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: base URL must be absolute: %q", cfg.BaseURL)
	}
	base := strings.TrimRight(u.String(), "/")
	if !strings.HasSuffix(base, DashboardPrefix) {
		base += DashboardPrefix
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	locale := cfg.DefaultLocale
	if locale == "" {
		locale = LocaleEnglish
	}

	c := &Client{
		baseURL:    base,
		secret:     cfg.SecretKey,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		logger:     logging.Default(),
		defLocale:  locale,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NewLogNotifier(c.logger)
	}
	return c, nil
}

// SetRoutePath mirrors the current UI route so locale resolution can
// prefer the URL path segment.
func (c *Client) SetRoutePath(path string) {
	c.routeMu.Lock()
	c.routePath = path
	c.routeMu.Unlock()
}

// RoutePath returns the mirrored route path.
func (c *Client) RoutePath() string {
	c.routeMu.RLock()
	defer c.routeMu.RUnlock()
	return c.routePath
}

// Locale returns the locale the next request would carry.
func (c *Client) Locale(ctx context.Context) string {
	return ResolveLocale(c.RoutePath(), session.Locale(ctx, c.store), c.defLocale)
}

// Fallback returns the localized fallback message for an error kind.
func (c *Client) Fallback(ctx context.Context, kind Kind) string {
	return fallbackForKind(c.Locale(ctx), kind)
}

// SuccessMessage returns the localized generic success message.
func (c *Client) SuccessMessage(ctx context.Context) string {
	return fallbackMessage(c.Locale(ctx), msgOK)
}

type payload struct {
	json any
	form *FormData
}

// newRequest builds one attempt. The body is re-encoded per attempt so a
// 401 retry never reuses a consumed reader.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body *payload) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	contentType := ""
	if body != nil {
		switch {
		case body.form != nil:
			data, ct, err := body.form.Encode()
			if err != nil {
				return nil, err
			}
			reader = bytes.NewReader(data)
			contentType = ct
		case body.json != nil:
			data, err := json.Marshal(body.json)
			if err != nil {
				return nil, fmt.Errorf("api: marshal request: %w", err)
			}
			reader = bytes.NewReader(data)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.secret != "" {
		req.Header.Set("X-Secret-Key", c.secret)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	stored, _ := c.store.Load(ctx)
	locale := ResolveLocale(c.RoutePath(), stored.Locale, c.defLocale)
	req.Header.Set("Accept-Language", locale)
	// URL wins: sync the stored preference to the resolved locale.
	if stored.Locale != locale {
		if err := session.SetLocale(ctx, c.store, locale); err != nil {
			c.logger.Warn("api: persist locale", "error", err)
		}
	}

	if stored.Token != "" {
		req.Header.Set("Authorization", "Bearer "+stored.Token)
	}
	return req, nil
}

// do runs the pipeline: build, send, classify, refresh-retry once on 401.
// Every failure is notified and returned; nothing is swallowed.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body *payload) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "dashboard "+method+" "+path)
	defer span.End()

	locale := c.Locale(ctx)
	start := time.Now()
	retried := false
	for {
		req, err := c.newRequest(ctx, method, path, query, body)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			kind := KindNetwork
			if isTimeout(err) {
				kind = KindTimeout
			}
			apiErr := &Error{Kind: kind, Message: fallbackForKind(locale, kind), Err: err}
			c.metrics.ObserveRequest(method, 0, time.Since(start))
			c.report(span, apiErr)
			return nil, apiErr
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		c.metrics.ObserveRequest(method, resp.StatusCode, time.Since(start))
		span.SetAttributes(
			attribute.Int("http.status_code", resp.StatusCode),
			attribute.Bool("mawadk.retried", retried),
		)
		if readErr != nil {
			apiErr := &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: fallbackForKind(locale, KindNetwork), Err: readErr}
			c.report(span, apiErr)
			return nil, apiErr
		}

		if resp.StatusCode < http.StatusMultipleChoices {
			return data, nil
		}

		if resp.StatusCode == http.StatusUnauthorized {
			if !retried {
				if err := c.refreshToken(ctx); err == nil {
					retried = true
					continue
				}
			}
			apiErr := c.expireSession(ctx, locale)
			c.report(span, apiErr)
			return nil, apiErr
		}

		apiErr := classify(resp.StatusCode, data, locale)
		c.notifyError(apiErr)
		c.report(span, apiErr)
		return nil, apiErr
	}
}

func (c *Client) report(span trace.Span, apiErr *Error) {
	c.metrics.ObserveError(apiErr.Kind)
	span.SetStatus(codes.Error, apiErr.Kind.String())
	if apiErr.Kind == KindTimeout || apiErr.Kind == KindNetwork {
		c.notifier.Notify(LevelError, apiErr.Message)
	}
	c.logger.Debug("api: request failed", "kind", apiErr.Kind.String(), "status", apiErr.Status, "message", apiErr.Message)
}

// refreshToken performs one refresh attempt with the current token and
// persists the replacement. Single-flight is per failed request, not
// global: concurrent 401s may each refresh, which is harmless because
// the endpoint is idempotent.
func (c *Client) refreshToken(ctx context.Context) error {
	token := session.Token(ctx, c.store)
	if token == "" {
		c.metrics.ObserveRefresh(false)
		return fmt.Errorf("api: refresh: no token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RefreshPath, nil)
	if err != nil {
		c.metrics.ObserveRefresh(false)
		return fmt.Errorf("api: refresh: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if c.secret != "" {
		req.Header.Set("X-Secret-Key", c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRefresh(false)
		return fmt.Errorf("api: refresh: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.metrics.ObserveRefresh(false)
		return fmt.Errorf("api: refresh failed with status %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Data.Token == "" {
		c.metrics.ObserveRefresh(false)
		return fmt.Errorf("api: refresh: bad response")
	}
	if err := session.SetToken(ctx, c.store, envelope.Data.Token); err != nil {
		c.metrics.ObserveRefresh(false)
		return fmt.Errorf("api: refresh: persist token: %w", err)
	}
	c.metrics.ObserveRefresh(true)
	c.logger.Info("api: token refreshed")
	return nil
}

// expireSession is the hard logout: credentials cleared, user notified,
// callback fired. The caller still receives the auth error.
func (c *Client) expireSession(ctx context.Context, locale string) *Error {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error("api: clear session", "error", err)
	}
	msg := fallbackMessage(locale, msgSessionExpired)
	c.notifier.Notify(LevelWarning, msg)
	c.logger.Warn("api: session expired")
	if c.onExpired != nil {
		c.onExpired()
	}
	return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: msg}
}

// notifyError surfaces a classified failure: 422 field maps fan out one
// notification per message, everything else notifies once.
func (c *Client) notifyError(apiErr *Error) {
	if apiErr.Kind == KindValidation {
		if msgs := apiErr.FieldMessages(); len(msgs) > 0 {
			for _, m := range msgs {
				c.notifier.Notify(LevelError, m)
			}
			return
		}
	}
	c.notifier.Notify(LevelError, apiErr.Message)
}

// classify builds the typed error for a non-401 failure status.
func classify(status int, body []byte, locale string) *Error {
	kind := kindForStatus(status)
	apiErr := &Error{Kind: kind, Status: status, Message: fallbackForKind(locale, kind)}

	var parsed struct {
		Message string          `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		if len(parsed.Errors) > 0 {
			apiErr.Fields = parseFieldErrors(parsed.Errors)
		}
	}
	return apiErr
}

// parseFieldErrors accepts both `{"field": ["msg"]}` and `{"field": "msg"}`.
func parseFieldErrors(raw json.RawMessage) map[string][]string {
	var multi map[string][]string
	if err := json.Unmarshal(raw, &multi); err == nil {
		return multi
	}
	var single map[string]string
	if err := json.Unmarshal(raw, &single); err == nil {
		out := make(map[string][]string, len(single))
		for k, v := range single {
			out[k] = []string{v}
		}
		return out
	}
	return nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// GetJSON issues a GET and decodes the raw response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// PostJSON issues a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, nil, &payload{json: body})
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPut, path, nil, &payload{json: body})
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// PostForm issues a POST with a multipart bracket-notation body. Update
// endpoints tunnel PUT through POST with a `_method` field, matching the
// backend's form-handling convention.
func (c *Client) PostForm(ctx context.Context, path string, form *FormData, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, nil, &payload{form: form})
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

func decodeInto(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}
