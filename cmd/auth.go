package main

import (
	"github.com/spf13/cobra"
)

func credentialFlags(cmd *cobra.Command, email, password *string) {
	cmd.Flags().StringVar(email, "email", "", "account email")
	cmd.Flags().StringVar(password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func newRegisterCmd(c *cli) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			session, err := a.Auth.Register(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), session)
		},
	}
	credentialFlags(cmd, &email, &password)
	return cmd
}

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			session, err := a.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), session)
		},
	}
	credentialFlags(cmd, &email, &password)
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			return a.Auth.Logout(cmd.Context())
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			session, ok := a.Auth.CurrentUser()
			if !ok {
				return errNotSignedIn
			}
			return c.print(cmd.OutOrStdout(), session)
		},
	}
}
