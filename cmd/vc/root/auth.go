package root

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vitacoach/internal/engine"
	"vitacoach/internal/ui"
)

// readPassword returns flagValue, or a line read from stdin when it is empty.
func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("password is required (--password or stdin)")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func exactlyOne(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func newRegisterCmd() *cobra.Command {
	var password string
	var role string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create a local account",
		Args:  exactlyOne("email"),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := engine.ParseRole(role)
			if err != nil {
				return err
			}
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := svc.Register(ctx, args[0], pw, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Registered"), acct.Email, ui.Muted.Render("("+acct.Role+")"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Sign in with: vc login "+acct.Email))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	cmd.Flags().StringVarP(&role, "role", "r", string(engine.DefaultRole), "Account role (doctor|patient)")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in",
		Args:  exactlyOne("email"),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			acct, err := svc.Login(ctx, args[0], pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Signed in as"), acct.Email, ui.Muted.Render(ui.RoleIcon(acct.Role)+" "+acct.Role+" view"))

			st, err := svc.State(ctx)
			if err != nil {
				return err
			}
			if !st.HasCompletedOnboarding {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Finish setting up with: vc onboard"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out (progress is kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Signed out."))
			return nil
		},
	}
}

func newRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role [doctor|patient]",
		Short: "Show or switch the active view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				st, err := svc.State(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("View", ui.RoleIcon(st.Role)+" "+st.Role))
				return nil
			}

			role, err := engine.ParseRole(args[0])
			if err != nil {
				return err
			}
			if err := svc.SwitchRole(ctx, role); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render("Switched to"), ui.RoleIcon(string(role)), role)
			return nil
		},
	}
}
