package main

import (
	"cmp"
	"fmt"

	"github.com/spf13/cobra"

	authdto "capacita/internal/modules/auth/dto"
)

func newLoginCmd(flags *globalFlags) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.AuthCLI.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in user=%s role=%s", out.UserID, out.Role)
			if !out.ExpiresAt.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " expires=%s", out.ExpiresAt.Format("2006-01-02 15:04"))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.AuthCLI.Logout(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newRegisterCmd(flags *globalFlags) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register --name <name> --email <email> --password <password>",
		Short: "Create a learner account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.AuthCLI.Register(cmd.Context(), name, email, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "account created; you can log in now")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "8-20 chars with upper, lower, digit and symbol")
	return cmd
}

func newPasswordCmd(flags *globalFlags) *cobra.Command {
	password := &cobra.Command{Use: "password", Short: "Password recovery"}

	var email string
	forgot := &cobra.Command{
		Use:   "forgot --email <email>",
		Short: "Request a password reset token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.AuthCLI.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reset requested")
			if out.ResetToken != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "token=%s\n", out.ResetToken)
			}
			return nil
		},
	}
	forgot.Flags().StringVar(&email, "email", "", "account email")

	var token, newPassword string
	reset := &cobra.Command{
		Use:   "reset --token <token> --new-password <password>",
		Short: "Set a new password with a reset token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.AuthCLI.ResetPassword(cmd.Context(), token, newPassword); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "password updated")
			return nil
		},
	}
	reset.Flags().StringVar(&token, "token", "", "reset token")
	reset.Flags().StringVar(&newPassword, "new-password", "", "new password")

	password.AddCommand(forgot, reset)
	return password
}

func newProfileCmd(flags *globalFlags) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Your account"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			p, err := app.AuthCLI.Profile(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id=%s name=%q email=%s role=%s\n", p.ID, p.Name, p.Email, p.Role)
			return nil
		},
	}

	var input authdto.UpdateProfileInput
	update := &cobra.Command{
		Use:   "update",
		Short: "Change name, email or password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if input.Name == "" || input.Email == "" {
				current, err := app.AuthCLI.Profile(cmd.Context())
				if err != nil {
					return err
				}
				input.Name = cmp.Or(input.Name, current.Name)
				input.Email = cmp.Or(input.Email, current.Email)
			}
			out, err := app.AuthCLI.UpdateProfile(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			if out.LoggedOut {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "password changed: log in again")
			}
			return nil
		},
	}
	update.Flags().StringVar(&input.Name, "name", "", "new name (defaults to current)")
	update.Flags().StringVar(&input.Email, "email", "", "new email (defaults to current)")
	update.Flags().StringVar(&input.NewPassword, "new-password", "", "new password")
	update.Flags().StringVar(&input.NewSecurityCode, "security-code", "", "new security code")

	var confirm bool
	remove := &cobra.Command{
		Use:   "delete --yes",
		Short: "Delete your account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return fmt.Errorf("pass --yes to delete your account")
			}
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.AuthCLI.DeleteProfile(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "account deleted")
			return nil
		},
	}
	remove.Flags().BoolVar(&confirm, "yes", false, "confirm deletion")

	profile.AddCommand(show, update, remove)
	return profile
}
