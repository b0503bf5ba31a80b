package root

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"vitacoach/internal/catalog"
	"vitacoach/internal/engine"
	"vitacoach/internal/ui"
)

func newPartnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partner <email>",
		Short: "Set your accountability partner",
		Args:  exactlyOne("partner email"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			acc, err := svc.SetPartner(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Accountability partner", acc.PartnerEmail))
			return nil
		},
	}
}

func newContractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Show, set or clear your commitment contract",
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
			c := st.Accountability.Contract
			if c == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No commitment contract. Set one with: vc contract set --goal ... --stake 25"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Contract", contractText(c.Goal, c.StakeCents, c.AntiCharity)))
			return nil
		},
	}

	var goal, anti string
	var stake float64
	set := &cobra.Command{
		Use:   "set",
		Short: "Record a commitment contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.SetContract(ctx, engine.ContractInput{
				Goal:        goal,
				StakeCents:  int64(math.Round(stake * 100)),
				AntiCharity: anti,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconFlag+" Committed:"), contractText(c.Goal, c.StakeCents, c.AntiCharity))
			return nil
		},
	}
	set.Flags().StringVar(&goal, "goal", "", "What you commit to")
	set.Flags().Float64Var(&stake, "stake", 0, "Amount at stake in dollars")
	set.Flags().StringVar(&anti, "anti-charity", "", "Where the stake goes if you fail: "+strings.Join(catalog.AntiCharities, "; "))

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the commitment contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ClearContract(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Commitment contract cleared."))
			return nil
		},
	}

	cmd.AddCommand(set, clearCmd)
	return cmd
}
