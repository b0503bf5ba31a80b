package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitacoach/internal/storage"
	"vitacoach/internal/ui"
)

func newChallengesCmd() *cobra.Command {
	list := func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, cleanup, err := openService(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		challenges, err := svc.Challenges(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Community Challenges"))
		for _, c := range challenges {
			fmt.Fprintln(cmd.OutOrStdout(), challengeLine(c))
		}
		return nil
	}

	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List, join or leave community challenges",
		RunE:  list,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List challenges",
			RunE:  list,
		},
		&cobra.Command{
			Use:   "join <id>",
			Short: "Join a challenge",
			Args:  exactlyOne("challenge id"),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				svc, cleanup, err := openService(ctx, cmd)
				if err != nil {
					return err
				}
				defer cleanup()

				c, err := svc.JoinChallenge(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Joined"), c.Title, ui.Muted.Render(fmt.Sprintf("(%d participants)", c.Participants)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "leave <id>",
			Short: "Leave a challenge",
			Args:  exactlyOne("challenge id"),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				svc, cleanup, err := openService(ctx, cmd)
				if err != nil {
					return err
				}
				defer cleanup()

				c, err := svc.LeaveChallenge(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render("Left"), c.Title)
				return nil
			},
		},
	)

	return cmd
}

func challengeLine(c storage.Challenge) string {
	mark := "[ ]"
	if c.Joined {
		mark = ui.Good.Render("[x]")
	}
	return fmt.Sprintf("- %s %s %s\n    %s", mark, ui.Key.Render(c.ID), c.Title,
		ui.Muted.Render(fmt.Sprintf("%s · %d days · +%d XP · %d joined", c.Description, c.DurationDays, c.XPReward, c.Participants)))
}
