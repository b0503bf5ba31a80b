package root

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vitacoach/internal/ui"
	"vitacoach/internal/upload"
)

func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a lab report (simulated)",
		Args:  exactlyOne("file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			onProgress := func(p upload.Progress) {
				fmt.Fprintf(out, "\r%s %s %3d%% %-10s", ui.IconUpload, ui.ProgressBar(p.Percent, 100, 20), p.Percent, p.Status)
			}
			rec, err := svc.UploadLabReport(ctx, filepath.Base(args[0]), onProgress)
			fmt.Fprintln(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Uploaded"), rec.FileName, ui.Muted.Render("id "+rec.ID))
			return nil
		},
	}
}
