package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/repository/sqlstore"
	"weddingrsvp/internal/services"
)

const commandTimeout = 30 * time.Second

// NewEventsCommand creates the events command group.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Create and list wedding events",
	}
	cmd.AddCommand(newEventsAddCommand(rootOpts))
	cmd.AddCommand(newEventsListCommand(rootOpts))
	return cmd
}

func newEventsAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> [date]",
		Short: "Create an event; date is YYYY-MM-DD",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := rootOpts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			var date string
			if len(args) == 2 {
				date = args[1]
			}
			svc := services.NewEventService(sqlstore.NewEventRepository(conn), commandTimeout)
			event, err := svc.CreateEvent(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), rootOpts.Format, event, func(w io.Writer) {
				printf(w, "created event %d: %s %s\n", event.ID, event.Name, event.Date)
			})
		},
	}
}

func newEventsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events ordered by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := rootOpts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			svc := services.NewEventService(sqlstore.NewEventRepository(conn), commandTimeout)
			events, err := svc.ListEvents(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), rootOpts.Format, events, func(w io.Writer) {
				printEvents(w, events)
			})
		},
	}
}

func printEvents(w io.Writer, events []*domain.Event) {
	if len(events) == 0 {
		printf(w, "no events\n")
		return
	}
	for _, e := range events {
		date := e.Date
		if date == "" {
			date = "-"
		}
		printf(w, "%d\t%s\t%s\n", e.ID, date, e.Name)
	}
}
