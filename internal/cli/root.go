// Package cli implements the washadmin console commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wash-admin/internal/authops"
	"wash-admin/internal/config"
	"wash-admin/internal/guard"
	"wash-admin/internal/mockapi"
	"wash-admin/internal/session"
	"wash-admin/internal/transport"
)

var rootCmd = &cobra.Command{
	Use:   "washadmin",
	Short: "Admin console for the SparkleWash detailing business",
	Long: `washadmin is the terminal admin console for a car-wash/detailing
business: sign in, then manage bookings, the service catalog, media,
reviews, customer feedback, staff accounts and analytics.

The console talks to the backend configured via WASHADMIN_API_URL
(default http://localhost:8080, see 'washadmin serve' docs for the dev
backend). When the backend is unreachable, auth operations fall back
to an offline mock so the console stays usable.`,
	SilenceUsage: true,
}

// ExecuteContext runs the root command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// deps bundles the client-side stack behind every command.
type deps struct {
	cfg      *config.Console
	sessions *session.Store
	client   *transport.Client
	auth     *authops.Service
	guard    *guard.Guard
}

func buildDeps() *deps {
	cfg := config.LoadConsole()
	sessions := session.NewStore(cfg.SessionFile)
	client := transport.New(cfg.APIBaseURL, sessions, cfg.ProbeTimeout)
	fallback := mockapi.New()

	warn := func(err error) {
		fmt.Fprintf(os.Stderr, "warning: could not update the local session file: %v\n", err)
	}

	return &deps{
		cfg:      cfg,
		sessions: sessions,
		client:   client,
		auth:     authops.New(client, fallback, sessions, warn),
		guard:    guard.New(sessions),
	}
}
