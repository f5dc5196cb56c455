// Package mockapi is an in-memory stand-in for the Mawadk backend. It
// speaks the same envelope, auth, and form conventions as production so
// the client stack can be exercised end to end without network access.
package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mawadk/dashboard-client/pkg/logging"
)

// Config holds server configuration.
type Config struct {
	SecretKey string
	Logger    *logging.Logger
}

// Server is the in-memory backend.
type Server struct {
	cfg    Config
	logger *logging.Logger

	mu         sync.Mutex
	tokenSeq   int
	validToken string
	admins     []adminRow
	providers  []providerRow
	bookings   []bookingRow
	categories []categoryRow
	customers  []customerRow
	sliders    []sliderRow
	nextID     int
}

// New creates a server with seeded fixtures.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Server{
		cfg:        cfg,
		logger:     cfg.Logger.Component("mockapi"),
		admins:     seedAdmins(),
		providers:  seedProviders(),
		bookings:   seedBookings(),
		categories: seedCategories(),
		customers:  seedCustomers(),
		sliders:    seedSliders(),
		nextID:     1000,
	}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Use(s.requireSecret)

		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/refresh", s.handleRefresh)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)

			r.Post("/auth/logout", s.handleLogout)
			r.Get("/profile", s.handleProfile)

			r.Get("/admins", s.handleAdminList)
			r.Post("/admins", s.handleAdminCreate)

			r.Get("/providers", s.handleProviderList)
			r.Get("/bookings", s.handleBookingList)
			r.Get("/bookings/stats", s.handleBookingStats)
			r.Put("/bookings/{id}/status", s.handleBookingStatus)

			// Historically returns data as a bare array, no meta.
			r.Get("/categories", s.handleCategoryList)

			r.Get("/customers", s.handleCustomerList)
			r.Get("/sliders", s.handleSliderList)
		})
	})

	return r
}

// requireSecret rejects requests missing the static dashboard secret.
func (s *Server) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.SecretKey != "" && r.Header.Get("X-Secret-Key") != s.cfg.SecretKey {
			writeError(w, http.StatusForbidden, "Invalid secret key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireToken rejects requests without the current bearer token. A
// stale token gets a 401, which drives the client's refresh-retry path.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		valid := s.validToken
		s.mu.Unlock()
		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if valid == "" || got != valid {
			writeError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) issueToken() string {
	s.tokenSeq++
	s.validToken = fmt.Sprintf("mock-token-%d", s.tokenSeq)
	return s.validToken
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		UserType string `json:"user_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email == "" || creds.Password == "" {
		writeValidation(w, map[string][]string{
			"email":    {"The email field is required."},
			"password": {"The password field is required."},
		})
		return
	}
	if creds.Password != "secret" {
		writeValidation(w, map[string][]string{
			"email": {"These credentials do not match our records."},
		})
		return
	}

	s.mu.Lock()
	token := s.issueToken()
	s.mu.Unlock()

	writeSuccess(w, "Welcome back", map[string]any{
		"token":     token,
		"user_type": orDefault(creds.UserType, "admin"),
		"user":      map[string]any{"id": 1, "name": "Omar Hassan", "email": creds.Email},
	})
}

// handleRefresh rotates the token. The old token authenticates the
// refresh itself, matching production's grace behavior.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.validToken == "" || got == "" {
		writeError(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}
	token := s.issueToken()
	writeSuccess(w, "Token refreshed", map[string]any{"token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.validToken = ""
	s.mu.Unlock()
	writeSuccess(w, "Logged out", nil)
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "", map[string]any{"id": 1, "name": "Omar Hassan", "email": "omar@mawadk.com"})
}

// ExpireToken invalidates the current token without rotating it, so
// tests can force the 401 refresh path on demand.
func (s *Server) ExpireToken() {
	s.mu.Lock()
	s.validToken = fmt.Sprintf("mock-token-%d-expired", s.tokenSeq)
	s.mu.Unlock()
}
