package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mawadk/dashboard-client/internal/admins"
	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/internal/auth"
	"github.com/mawadk/dashboard-client/internal/bookings"
	"github.com/mawadk/dashboard-client/internal/categories"
	appconfig "github.com/mawadk/dashboard-client/internal/config"
	"github.com/mawadk/dashboard-client/internal/customers"
	"github.com/mawadk/dashboard-client/internal/providerdoctors"
	"github.com/mawadk/dashboard-client/internal/providers"
	"github.com/mawadk/dashboard-client/internal/session"
	"github.com/mawadk/dashboard-client/internal/sliders"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

type app struct {
	cfg    *appconfig.Config
	logger *logging.Logger
	client *api.Client
	store  session.Store
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "admins":
		return a.admins(ctx, args)
	case "stats":
		return a.stats(ctx)
	case "providers":
		return a.providers(ctx, args)
	case "doctors":
		return a.doctors(ctx, args)
	case "bookings":
		return a.bookings(ctx, args)
	case "clinic-bookings":
		return a.clinicBookings(ctx, args)
	case "categories":
		return a.categories(ctx, args)
	case "customers":
		return a.customers(ctx, args)
	case "sliders":
		return a.sliders(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	userType := fs.String("user-type", "admin", "account type")
	fs.Parse(args)

	if *email == "" {
		fmt.Print("email: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		*email = strings.TrimSpace(line)
	}
	fmt.Print("password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return err
	}

	svc := auth.NewService(a.client, a.store, a.logger)
	res := svc.Login(ctx, auth.Credentials{Email: *email, Password: string(pw), UserType: *userType})
	if !res.Success {
		return fmt.Errorf("login failed: %s", res.Message)
	}
	fmt.Printf("%s (logged in as %s)\n", res.Message, res.Data.UserType)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	svc := auth.NewService(a.client, a.store, a.logger)
	res := svc.Logout(ctx)
	fmt.Println(res.Message)
	return nil
}

func (a *app) admins(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admins", flag.ExitOnError)
	search := fs.String("search", "", "name or email filter")
	trashed := fs.Bool("trashed", false, "show soft-deleted accounts")
	page := fs.Int("page", 1, "page")
	watch := fs.Bool("watch", false, "interactive refilter on typed input")
	fs.Parse(args)

	svc := admins.NewService(a.client, a.logger)
	render := func(term string) {
		params := api.ListParams{Search: term, Page: *page}
		var res api.Result[[]admins.Admin]
		if *trashed {
			res = svc.ListTrashed(ctx, params)
		} else {
			res = svc.List(ctx, params)
		}
		if !res.Success {
			fmt.Fprintln(os.Stderr, res.Message)
			return
		}
		for _, ad := range res.Data {
			fmt.Printf("%4d  %-24s  %-28s  %s\n", ad.ID, ad.Name, ad.Email, ad.Status)
		}
		printMeta(res.Meta)
	}
	if *watch {
		return watchLoop(*search, render)
	}
	render(*search)
	return nil
}

func (a *app) stats(ctx context.Context) error {
	svc := admins.NewService(a.client, a.logger)
	res := svc.Stats(ctx)
	if !res.Success {
		return fmt.Errorf("stats: %s", res.Message)
	}
	fmt.Printf("active: %d\ntrashed: %d\ntotal: %d\n", res.Data.Active, res.Data.Trashed, res.Data.Total)
	return nil
}

func (a *app) providers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("providers", flag.ExitOnError)
	search := fs.String("search", "", "name filter")
	typ := fs.String("type", "", "Hospital, Clinic or Doctor")
	page := fs.Int("page", 1, "page")
	watch := fs.Bool("watch", false, "interactive refilter on typed input")
	fs.Parse(args)

	svc := providers.NewService(a.client, a.logger)
	render := func(term string) {
		res := svc.List(ctx, api.ListParams{Search: term, Type: *typ, Page: *page})
		if !res.Success {
			fmt.Fprintln(os.Stderr, res.Message)
			return
		}
		for _, p := range res.Data {
			fmt.Printf("%4d  %-10s  %-28s  %.1f  %s\n", p.ID, p.Type, p.Name, p.Rating, p.Status)
		}
		printMeta(res.Meta)
	}
	if *watch {
		return watchLoop(*search, render)
	}
	render(*search)
	return nil
}

func (a *app) doctors(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("doctors", flag.ExitOnError)
	provider := fs.Int("provider", 0, "provider id (required)")
	page := fs.Int("page", 1, "page")
	fs.Parse(args)
	if *provider == 0 {
		return fmt.Errorf("doctors: --provider is required")
	}

	svc := providerdoctors.NewService(a.client, a.logger)
	res := svc.List(ctx, *provider, api.ListParams{Page: *page})
	if !res.Success {
		return fmt.Errorf("doctors: %s", res.Message)
	}
	for _, d := range res.Data {
		fmt.Printf("%4d  %-24s  %6.2f  %6.2f  %5.2f%%  %s\n",
			d.ID, d.Name, d.Price, d.PriceAfter, d.Discount, d.Status)
	}
	printMeta(res.Meta)
	return nil
}

func (a *app) bookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	search := fs.String("search", "", "reference or customer filter")
	status := fs.String("status", "", "status filter")
	page := fs.Int("page", 1, "page")
	watch := fs.Bool("watch", false, "interactive refilter on typed input")
	fs.Parse(args)

	svc := bookings.NewService(a.client, a.logger)
	render := func(term string) {
		res := svc.List(ctx, api.ListParams{Search: term, Status: *status, Page: *page})
		if !res.Success {
			fmt.Fprintln(os.Stderr, res.Message)
			return
		}
		printBookings(os.Stdout, res.Data, a.client.Locale(ctx))
		printMeta(res.Meta)
	}
	if *watch {
		return watchLoop(*search, render)
	}
	render(*search)
	return nil
}

func (a *app) clinicBookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clinic-bookings", flag.ExitOnError)
	page := fs.Int("page", 1, "page")
	perPage := fs.Int("per-page", 10, "rows per page")
	fs.Parse(args)

	svc := bookings.NewService(a.client, a.logger)
	res := svc.ClinicBookings(ctx, *page, *perPage)
	if !res.Success {
		return fmt.Errorf("clinic-bookings: %s", res.Message)
	}
	printBookings(os.Stdout, res.Data, a.client.Locale(ctx))
	printMeta(res.Meta)
	return nil
}

func (a *app) categories(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	search := fs.String("search", "", "name filter")
	fs.Parse(args)

	svc := categories.NewService(a.client, a.logger)
	res := svc.List(ctx, api.ListParams{Search: *search})
	if !res.Success {
		return fmt.Errorf("categories: %s", res.Message)
	}
	for _, c := range res.Data {
		fmt.Printf("%4d  %-20s  %-20s  %s\n", c.ID, c.Name, c.NameAr, c.Status)
	}
	return nil
}

func (a *app) customers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customers", flag.ExitOnError)
	search := fs.String("search", "", "name or phone filter")
	page := fs.Int("page", 1, "page")
	watch := fs.Bool("watch", false, "interactive refilter on typed input")
	fs.Parse(args)

	svc := customers.NewService(a.client, a.logger)
	render := func(term string) {
		res := svc.List(ctx, api.ListParams{Search: term, Page: *page})
		if !res.Success {
			fmt.Fprintln(os.Stderr, res.Message)
			return
		}
		for _, c := range res.Data {
			fmt.Printf("%4d  %-24s  %-16s  %s\n", c.ID, c.Name, c.Phone, c.Status)
		}
		printMeta(res.Meta)
	}
	if *watch {
		return watchLoop(*search, render)
	}
	render(*search)
	return nil
}

func (a *app) sliders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sliders", flag.ExitOnError)
	fs.Parse(args)

	svc := sliders.NewService(a.client, a.logger)
	res := svc.List(ctx, api.ListParams{})
	if !res.Success {
		return fmt.Errorf("sliders: %s", res.Message)
	}
	for _, sl := range res.Data {
		fmt.Printf("%4d  %-28s  %-10s  %s\n", sl.ID, sl.Title, sl.TargetType, sl.Status)
	}
	return nil
}

func printBookings(w io.Writer, rows []bookings.Booking, locale string) {
	for _, b := range rows {
		fmt.Fprintf(w, "%4d  %-10s  %-16s  %-20s  %-10s  %12s  %s\n",
			b.ID, b.Reference, b.CustomerName, b.ProviderName, b.Status,
			bookings.FormatPrice(b.Price, locale), bookings.FormatBookingTime(b.Time, b.DataAt))
	}
}

func printMeta(m api.PageMeta) {
	fmt.Printf("page %d/%d, %d total\n", m.CurrentPage, m.LastPage, m.Total)
}
