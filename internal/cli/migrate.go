package cli

import (
	"io"

	"github.com/spf13/cobra"

	"weddingrsvp/internal/db"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := rootOpts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			logger := rootOpts.logger(cmd)
			if err := db.Migrate(cmd.Context(), conn, rootOpts.Driver, logger); err != nil {
				return err
			}
			status := map[string]string{"status": "ok", "driver": rootOpts.Driver}
			return printResult(cmd.OutOrStdout(), rootOpts.Format, status, func(w io.Writer) {
				printf(w, "migrations applied (%s)\n", rootOpts.Driver)
			})
		},
	}
}
