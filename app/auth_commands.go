package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/client"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/model"
)

func authCommands() []*cobra.Command {
	return []*cobra.Command{
		newLoginCommand(),
		newRegisterCommand(),
		newLogoutCommand(),
		newWhoamiCommand(),
	}
}

func newLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			session, err := d.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			cmd.Printf("Logged in as user %s\n", session.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand() *cobra.Command {
	var email, password, fullName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			session, err := d.client.Register(cmd.Context(), email, password, fullName)
			if err != nil {
				return err
			}
			cmd.Printf("Registered user %s\n", session.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&fullName, "name", "", "display name (optional)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			if err := d.client.Logout(); err != nil {
				return err
			}
			cmd.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user's profile and token expiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			info, err := d.client.TokenInfo()
			if errors.Is(err, client.ErrNotAuthenticated) {
				return fmt.Errorf("not logged in, run 'dashctl login' first")
			}
			if err != nil {
				return err
			}
			profile, err := d.profile.Me(cmd.Context())
			if err != nil {
				return wrapErr(err)
			}

			type tokenView struct {
				UserID    string `json:"user_id"`
				ExpiresAt string `json:"expires_at,omitempty"`
			}
			return printJSON(cmd, struct {
				Profile *model.Profile `json:"profile"`
				Token   tokenView      `json:"token"`
			}{
				Profile: profile,
				Token: tokenView{
					UserID:    info.UserID,
					ExpiresAt: formatTime(info.ExpiresAt),
				},
			})
		},
	}
}
