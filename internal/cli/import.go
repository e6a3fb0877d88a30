package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"weddingrsvp/internal/adapters/guestcsv"
	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/repository/sqlstore"
	"weddingrsvp/internal/services"
)

// ImportResult is the json output of the import command.
type ImportResult struct {
	Report *domain.ImportReport `json:"report"`
	Error  string               `json:"error,omitempty"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a guest list CSV",
		Long: `Import a guest list CSV with columns rsvp_code, has_children, has_spouse, name,
invited_events and optionally children_invited_events.

Rows are imported in order, each in its own transaction. The first failing row stops
the import; rows before it stay imported. Event names that do not exist are skipped
and listed in the report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, rootOpts, args[0])
		},
	}
}

func runImport(cmd *cobra.Command, opts *RootOptions, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := guestcsv.ReadGuestRowsFile(filepath.Base(path), f)
	if err != nil {
		return err
	}

	conn, err := opts.open(cmd.Context())
	if err != nil {
		return err
	}
	defer conn.Close()

	svc := services.NewImportService(sqlstore.NewGuestImportRepository(conn), opts.logger(cmd), commandTimeout)
	report, importErr := svc.ImportGuests(cmd.Context(), rows)

	result := ImportResult{Report: report}
	if importErr != nil {
		result.Error = importErr.Error()
	}
	if err := printResult(cmd.OutOrStdout(), opts.Format, result, func(w io.Writer) {
		printImportReport(w, report)
	}); err != nil {
		return err
	}
	if importErr != nil {
		var rowErr *domain.ImportRowError
		if errors.As(importErr, &rowErr) {
			return fmt.Errorf("import stopped at row %d: %w", rowErr.Row, rowErr.Err)
		}
		return importErr
	}
	return nil
}

func printImportReport(w io.Writer, report *domain.ImportReport) {
	printf(w, "rows imported:       %d\n", report.RowsImported)
	printf(w, "invitations created: %d\n", report.InvitationsCreated)
	if len(report.SkippedEvents) > 0 {
		printf(w, "skipped events:      %s\n", strings.Join(report.SkippedEvents, ", "))
	}
}
