package root

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"vitacoach/internal/engine"
	"vitacoach/internal/ui"
)

func newCheckInCmd() *cobra.Command {
	var in engine.CheckInInput

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in (+50 XP, keeps your streak)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CheckIn(ctx, in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Checked in"), ui.Muted.Render(res.Date))
			streak := fmt.Sprintf("%d day(s) %s", res.Streak, ui.IconFire)
			if !res.Continued && res.Streak == 1 && res.Longest > 1 {
				streak += " " + ui.Muted.Render(fmt.Sprintf("(new streak, best %d)", res.Longest))
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", streak))
			printAward(out, res.Award)
			return nil
		},
	}

	cmd.Flags().IntVarP(&in.Mood, "mood", "m", 3, "Mood (1-5)")
	cmd.Flags().IntVarP(&in.Energy, "energy", "e", 3, "Energy (1-5)")
	cmd.Flags().Float64VarP(&in.SleepHours, "sleep", "s", 0, "Hours slept last night")
	cmd.Flags().StringVarP(&in.Notes, "notes", "n", "", "Free-form notes")
	return cmd
}

func printAward(out io.Writer, res engine.AwardResult) {
	fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("+%d (total %d)", res.XPAwarded, res.XPTotal)))
	if res.LevelUp {
		fmt.Fprintf(out, "%s %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	}
	for _, b := range res.Unlocked {
		fmt.Fprintf(out, "%s %s %s\n", ui.Gold.Render(ui.IconTrophy+" Badge unlocked:"), b.Icon, b.Name)
	}
}

func newBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "List badges and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Badges(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Badges"))
			for _, b := range list {
				if b.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, ui.Good.Render(b.Name), ui.Muted.Render("earned "+b.UnlockedAt.Local().Format("2006-01-02")))
					continue
				}
				unit := "XP"
				if engine.BadgeKind(b.Kind) == engine.BadgeKindStreak {
					unit = "days"
				}
				fmt.Fprintf(out, "- %s %s %s %s\n", ui.IconLock, b.Name,
					ui.ProgressBar(b.Current, b.Requirement, 10),
					ui.Muted.Render(fmt.Sprintf("%d/%d %s, %s", b.Current, b.Requirement, unit, b.Description)))
			}
			return nil
		},
	}
}

func newXPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Show level progress",
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
			next := engine.XPRequiredForLevel(s.Level + 1)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", s.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total XP", fmt.Sprintf("%d (next at %d, %d to go)", s.XP, next, s.XPToNext)))
			return nil
		},
	}

	var reason string
	award := &cobra.Command{
		Use:   "award <amount>",
		Short: "Grant XP for a completed plan action",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("amount is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("amount must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := strconv.Atoi(args[0])
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.AwardXP(ctx, amount, reason)
			if err != nil {
				return err
			}
			printAward(cmd.OutOrStdout(), *res)
			return nil
		},
	}
	award.Flags().StringVar(&reason, "reason", "plan action", "What the XP is for")
	cmd.AddCommand(award)

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show the XP ledger, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			events, err := svc.History(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No XP earned yet."))
				return nil
			}
			for _, e := range events {
				fmt.Fprintf(out, "%s  %s  %s %s\n",
					ui.Muted.Render(e.OccurredAt.Local().Format("2006-01-02 15:04")),
					ui.Good.Render(fmt.Sprintf("+%d", e.Amount)),
					e.Reason,
					ui.Muted.Render(fmt.Sprintf("(total %d, level %d)", e.XPTotal, e.Level)))
			}
			return nil
		},
	}
	history.Flags().IntVarP(&limit, "limit", "l", 10, "Entries to show (0 for all)")
	cmd.AddCommand(history)

	return cmd
}
