package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitacoach/internal/engine"
	"vitacoach/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show session, level, streak and commitments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := svc.Summary(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconHeart, "Vitacoach Status"))
			if !s.Authenticated {
				fmt.Fprintln(out, ui.LabelValue("Session", ui.Muted.Render("signed out (vc login <email>)")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Session", s.Email))
			}
			fmt.Fprintln(out, ui.LabelValue("View", ui.RoleIcon(string(s.Role))+" "+string(s.Role)))
			if s.Onboarded {
				fmt.Fprintln(out, ui.LabelValue("Onboarding", ui.Good.Render("complete")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Onboarding", ui.Warn.Render("step "+string(s.Step))))
			}
			if s.Profile.Name != "" {
				fmt.Fprintln(out, ui.LabelValue("Name", s.Profile.Name))
			}
			if s.Profile.Goals != "" {
				fmt.Fprintln(out, ui.LabelValue("Goals", s.Profile.Goals))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconSparkle+" Progress"))
			fmt.Fprintln(out, ui.LabelValue("Level", s.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s %s", s.XP,
				ui.ProgressBar(s.XP-s.LevelFloorXP, engine.XPPerLevel, 20),
				ui.Muted.Render(fmt.Sprintf("(%d to level %d)", s.XPToNext, s.Level+1)))))
			fmt.Fprintln(out, ui.LabelValue("Streak", streakText(s.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Badges", fmt.Sprintf("%d/%d", s.BadgesEarned, s.BadgesTotal)))
			fmt.Fprintln(out, ui.LabelValue("Uploads", s.Uploads))
			fmt.Fprintln(out, "")

			if len(s.Joined) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Challenges"))
				for _, c := range s.Joined {
					fmt.Fprintf(out, "- %s %s\n", c.Title, ui.Muted.Render(fmt.Sprintf("(%d days, +%d XP)", c.DurationDays, c.XPReward)))
				}
				fmt.Fprintln(out, "")
			}

			if s.Partner != "" || s.Contract != nil {
				fmt.Fprintln(out, ui.H2.Render(ui.IconFlag+" Accountability"))
				if s.Partner != "" {
					fmt.Fprintln(out, ui.LabelValue("Partner", s.Partner))
				}
				if s.Contract != nil {
					fmt.Fprintln(out, ui.LabelValue("Contract", contractText(s.Contract.Goal, s.Contract.StakeCents, s.Contract.AntiCharity)))
				}
			}
			return nil
		},
	}

	return cmd
}

func streakText(s engine.StreakStatus) string {
	text := fmt.Sprintf("%d day(s) %s, best %d", s.Current, ui.IconFire, s.Longest)
	switch {
	case s.CheckedInToday:
		return text + " " + ui.Good.Render("checked in today")
	case s.Broken:
		return text + " " + ui.Bad.Render("broken")
	case s.LastCheckInDate != "":
		return text + " " + ui.Warn.Render("check in today to keep it")
	default:
		return text
	}
}

func contractText(goal string, stakeCents int64, anti string) string {
	s := fmt.Sprintf("%s, %s at stake", goal, ui.Cents(stakeCents))
	if anti != "" {
		s += " " + ui.Muted.Render("(to "+anti+")")
	}
	return s
}
