package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitacoach/internal/engine"
	"vitacoach/internal/ui"
)

var stepHints = map[engine.OnboardingStep]string{
	engine.StepWelcome:     "Welcome! Optionally tell us your name with --name.",
	engine.StepRole:        "Choose your view with --role doctor|patient.",
	engine.StepGoals:       "Describe your health goals with --goals.",
	engine.StepPreferences: "Add coaching preferences with --preferences (optional).",
}

func newOnboardCmd() *cobra.Command {
	var in engine.OnboardingInput
	var restart bool
	var step bool

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Walk through onboarding (welcome → role → goals → preferences)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if restart {
				if err := svc.RestartOnboarding(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Onboarding restarted."))
			}

			var res *engine.OnboardingResult
			if step {
				res, err = svc.AdvanceOnboarding(ctx, in)
			} else {
				res, err = svc.CompleteOnboarding(ctx, in)
			}
			if err != nil {
				st, stErr := svc.State(ctx)
				if stErr == nil {
					if hint, ok := stepHints[engine.OnboardingStep(st.OnboardingStep)]; ok {
						fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconInfo+" "+hint))
					}
				}
				return err
			}

			if res.Completed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Onboarding complete."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n", ui.Key.Render("Step:"), res.From, res.To)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(stepHints[res.To]))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&in.Role, "role", "", "View (doctor|patient)")
	cmd.Flags().StringVar(&in.Goals, "goals", "", "Health goals")
	cmd.Flags().StringVar(&in.Preferences, "preferences", "", "Coaching preferences")
	cmd.Flags().BoolVar(&restart, "restart", false, "Start onboarding over")
	cmd.Flags().BoolVar(&step, "step", false, "Advance a single step only")
	return cmd
}

func newProfileCmd() *cobra.Command {
	var in engine.OnboardingInput

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if in.Name != "" || in.Goals != "" || in.Preferences != "" {
				if _, err := svc.UpdateProfile(ctx, in); err != nil {
					return err
				}
			}
			st, err := svc.State(ctx)
			if err != nil {
				return err
			}
			if err := engine.RequireAuth(st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.RoleIcon(st.Role), "Profile"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", orDash(st.Profile.Name)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Goals", orDash(st.Profile.Goals)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Preferences", orDash(st.Profile.Preferences)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Set name")
	cmd.Flags().StringVar(&in.Goals, "goals", "", "Set goals")
	cmd.Flags().StringVar(&in.Preferences, "preferences", "", "Set preferences")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return ui.Muted.Render("-")
	}
	return s
}
