package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vitacoach/internal/ui"
)

const Version = "0.1.0"

var (
	flagDBPath   string
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vc",
		Short:         "Vitacoach: local-first health coaching for doctors and patients",
		Long:          "Vitacoach is a local-first CLI/TUI health coach with daily check-ins, streaks, badges and challenges.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite database path (overrides VITACOACH_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides VITACOACH_LOG_LEVEL)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newRoleCmd(),
		newOnboardCmd(),
		newProfileCmd(),
		newCheckInCmd(),
		newBadgesCmd(),
		newXPCmd(),
		newChallengesCmd(),
		newPartnerCmd(),
		newContractCmd(),
		newPatientsCmd(),
		newPatientCmd(),
		newLiteratureCmd(),
		newSupplementsCmd(),
		newGeneticsCmd(),
		newPlansCmd(),
		newUploadCmd(),
		newCalendarCmd(),
		newBoardCmd(),
		newServeCmd(),
		newResetCmd(),
	)
	return rootCmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
