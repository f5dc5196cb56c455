// mawadkctl is an operator CLI over the Mawadk dashboard API. It keeps a
// session on disk (or in redis when REDIS_ADDR is set) and mirrors the
// admin console's read and moderation flows.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mawadk/dashboard-client/internal/api"
	appconfig "github.com/mawadk/dashboard-client/internal/config"
	"github.com/mawadk/dashboard-client/internal/session"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := appconfig.LoadDotenv()
	logger := logging.New(cfg.LogLevel)

	store, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session store:", err)
		os.Exit(1)
	}

	client, err := api.New(api.Config{
		BaseURL:       cfg.APIBaseURL,
		SecretKey:     cfg.APISecret,
		Timeout:       cfg.RequestTimeout,
		DefaultLocale: cfg.DefaultLocale,
	}, store,
		api.WithLogger(logger),
		api.WithMetrics(api.NewMetrics(nil)),
		api.WithNotifier(api.NewLogNotifier(logger)),
		api.WithOnSessionExpired(func() {
			fmt.Fprintln(os.Stderr, "session expired, run `mawadkctl login` again")
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "client:", err)
		os.Exit(1)
	}

	app := &app{cfg: cfg, logger: logger, client: client, store: store}

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]
	if err := app.run(ctx, cmd, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildStore(cfg *appconfig.Config) (session.Store, error) {
	if cfg.RedisAddr != "" {
		client := session.BuildRedisClient(session.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			TLS:      cfg.RedisTLS,
		})
		return session.NewRedisStore(client, "mawadkctl"), nil
	}
	return session.NewFileStore(cfg.SessionFile), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: mawadkctl <command> [flags]

commands:
  login            authenticate and persist the session
  logout           revoke the token and clear the session
  admins           list admin accounts (--trashed, --search, --watch)
  stats            admin account counts (active/trashed fan-out)
  providers        list providers (--type, --search, --watch)
  doctors          list a provider roster (--provider)
  bookings         list bookings (--status, --search, --watch)
  clinic-bookings  clinic-only view, filtered and paged client-side
  categories       list specialty categories
  customers        list customer accounts (--search, --watch)
  sliders          list promotional sliders`)
}
