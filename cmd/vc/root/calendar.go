package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vitacoach/internal/calendar"
	"vitacoach/internal/engine"
	"vitacoach/internal/ui"
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar export",
	}

	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write check-ins and joined challenges as iCalendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.State(ctx)
			if err != nil {
				return err
			}
			if err := engine.RequireAuth(st); err != nil {
				return err
			}
			body, err := calendar.Render(st)
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ui.Good.Render(ui.IconCal+" Exported"), outPath)
			return nil
		},
	}
	export.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	cmd.AddCommand(export)
	return cmd
}
