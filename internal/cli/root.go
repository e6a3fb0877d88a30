// Package cli implements rsvpctl, the offline admin tool for the RSVP database.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"weddingrsvp/config"
	"weddingrsvp/internal/db"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Driver      string
	DatabaseURL string
	Format      string // "json" | "text"
	Verbose     bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for rsvpctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rsvpctl",
		Short: "Manage the wedding RSVP database",
		Long: `rsvpctl applies migrations, creates events and imports guest lists
directly against the configured database.

Database settings default to DATABASE_DRIVER and DATABASE_URL (a .env file is read
outside production); --driver and --database-url override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.resolveDatabase()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "database driver (postgres|sqlite), default $DATABASE_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", "", "database URL or sqlite file, default $DATABASE_URL")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))

	return cmd
}

// resolveDatabase fills unset database flags from the environment.
func (o *RootOptions) resolveDatabase() error {
	if o.Driver != "" && o.DatabaseURL != "" {
		return nil
	}
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	if o.Driver == "" {
		o.Driver = cfg.Driver
	}
	if o.DatabaseURL == "" {
		o.DatabaseURL = cfg.URL
	}
	return nil
}

// logger writes to the command's stderr so json output on stdout stays parseable.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// open connects to the database. Callers close the returned handle.
func (o *RootOptions) open(ctx context.Context) (*sql.DB, error) {
	conn, err := db.Open(ctx, o.Driver, o.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", o.Driver, err)
	}
	return conn, nil
}
