// Package auth wraps the dashboard authentication and profile endpoints
// and owns the login/logout lifecycle of the session credential.
package auth

import (
	"context"
	"io"
	"net/http"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/internal/session"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Credentials is the login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type,omitempty"`
}

// LoginData is the login response payload.
type LoginData struct {
	Token    string  `json:"token"`
	UserType string  `json:"user_type"`
	User     Profile `json:"user"`
}

// Profile is the authenticated user's profile.
type Profile struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
	Status string `json:"status"`
}

// Service wraps the auth endpoints.
type Service struct {
	client *api.Client
	store  session.Store
	logger *logging.Logger
}

// NewService creates an auth service. store must be the same store the
// client was built with.
func NewService(client *api.Client, store session.Store, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, store: store, logger: logger}
}

// Login authenticates and persists the session credential on success.
func (s *Service) Login(ctx context.Context, creds Credentials) api.Result[LoginData] {
	res := api.Mutate[LoginData](ctx, s.client, http.MethodPost, "/auth/login", creds)
	if !res.Success {
		return res
	}
	if res.Data.Token == "" {
		return api.Result[LoginData]{
			Success: false,
			Meta:    api.SafeMeta(),
			Message: s.client.Fallback(ctx, api.KindUnknown),
		}
	}

	current, _ := s.store.Load(ctx)
	err := s.store.Save(ctx, session.Session{
		Token:    res.Data.Token,
		UserType: res.Data.UserType,
		Locale:   current.Locale,
	})
	if err != nil {
		s.logger.Error("auth: persist session", "error", err)
		return api.Result[LoginData]{
			Success: false,
			Meta:    api.SafeMeta(),
			Message: s.client.Fallback(ctx, api.KindUnknown),
		}
	}
	s.logger.Info("auth: logged in", "user_type", res.Data.UserType)
	return res
}

// Logout revokes the token server-side, then clears the stored
// credential regardless of the server outcome.
func (s *Service) Logout(ctx context.Context) api.Result[struct{}] {
	res := api.Mutate[struct{}](ctx, s.client, http.MethodPost, "/auth/logout", nil)
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("auth: clear session", "error", err)
	}
	return res
}

// GetProfile fetches the authenticated user's profile.
func (s *Service) GetProfile(ctx context.Context) api.Result[Profile] {
	return api.FetchOne[Profile](ctx, s.client, "/profile", nil)
}

// UpdateProfile submits profile changes as a multipart form, optionally
// with a new avatar.
func (s *Service) UpdateProfile(ctx context.Context, p Profile, avatarName string, avatar io.Reader) api.Result[Profile] {
	form := api.NewFormData().
		Set("_method", "PUT").
		Set("name", p.Name).
		Set("email", p.Email).
		Set("phone", p.Phone)
	if avatar != nil {
		form.AddFile("avatar", avatarName, avatar)
	}
	return api.SubmitForm[Profile](ctx, s.client, "/profile", form)
}

// ChangePassword updates the account password.
func (s *Service) ChangePassword(ctx context.Context, current, next, confirmation string) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodPost, "/profile/password", map[string]string{
		"current_password":      current,
		"password":              next,
		"password_confirmation": confirmation,
	})
}
