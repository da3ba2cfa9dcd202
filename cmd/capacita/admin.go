package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	faqdto "capacita/internal/modules/faq/dto"
	userdto "capacita/internal/modules/user/dto"
	"capacita/internal/platform/listing"
)

func newFAQCmd(flags *globalFlags) *cobra.Command {
	faq := &cobra.Command{Use: "faq", Short: "Frequently asked questions"}

	var search string
	var page int
	list := &cobra.Command{
		Use:   "list [--search <query>] [--page N]",
		Short: "List FAQs, five per page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.FAQCLI.List(cmd.Context(), search, page)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Total == 0 {
				_, _ = fmt.Fprintln(w, "no FAQs found")
				return nil
			}
			for _, f := range out.Items {
				_, _ = fmt.Fprintf(w, "%s  %-40s  %s\n", f.ID, listing.Truncate(f.Question, 40), listing.Truncate(f.Answer, 60))
			}
			_, _ = fmt.Fprintf(w, "page %d/%d (%d total)\n", out.Page, out.TotalPages, out.Total)
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter by question, answer or role")
	list.Flags().IntVar(&page, "page", 1, "page number")

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show one FAQ",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			f, err := app.FAQCLI.Show(cmd.Context(), showID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Q: %s\nA: %s\nroles=%s\n", f.Question, f.Answer, strings.Join(f.Roles, ","))
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "faq id")

	var create faqdto.CreateFAQInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a FAQ (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.FAQCLI.Add(cmd.Context(), create); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "faq created")
			return nil
		},
	}
	add.Flags().StringVar(&create.Question, "question", "", "question (5-100 chars)")
	add.Flags().StringVar(&create.Answer, "answer", "", "answer (10-500 chars)")
	add.Flags().StringSliceVar(&create.Roles, "roles", nil, "asesor,asesorJR,gerente_sucursal,gerente_zona")

	var update faqdto.UpdateFAQInput
	edit := &cobra.Command{
		Use:   "edit --id <id>",
		Short: "Edit a FAQ (admin); empty flags keep the current value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.FAQCLI.Edit(cmd.Context(), update); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "faq %s updated\n", update.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&update.ID, "id", "", "faq id")
	edit.Flags().StringVar(&update.Question, "question", "", "question")
	edit.Flags().StringVar(&update.Answer, "answer", "", "answer")
	edit.Flags().StringSliceVar(&update.Roles, "roles", nil, "replacement role list")

	var deleteID string
	remove := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a FAQ (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.FAQCLI.Delete(cmd.Context(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "faq %s deleted\n", deleteID)
			return nil
		},
	}
	remove.Flags().StringVar(&deleteID, "id", "", "faq id")

	faq.AddCommand(list, show, add, edit, remove)
	return faq
}

func newUserCmd(flags *globalFlags) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "User administration (admin)"}

	var search string
	var page int
	list := &cobra.Command{
		Use:   "list [--search <query>] [--page N]",
		Short: "List users, five per page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.UserCLI.List(cmd.Context(), search, page)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Total == 0 {
				_, _ = fmt.Fprintln(w, "no users found")
				return nil
			}
			for _, u := range out.Items {
				_, _ = fmt.Fprintf(w, "%s  %-30s  %-40s  %s\n", u.ID, listing.Truncate(u.Name, 30), listing.Truncate(u.Email, 40), u.Role)
			}
			_, _ = fmt.Fprintf(w, "page %d/%d (%d total)\n", out.Page, out.TotalPages, out.Total)
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter by name, email or role")
	list.Flags().IntVar(&page, "page", 1, "page number")

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show one user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			u, err := app.UserCLI.Show(cmd.Context(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id=%s name=%q email=%s role=%s\n", u.ID, u.Name, u.Email, u.Role)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "user id")

	var update userdto.UpdateUserInput
	edit := &cobra.Command{
		Use:   "edit --id <id>",
		Short: "Edit a user; empty flags keep the current value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.UserCLI.Edit(cmd.Context(), update); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user %s updated\n", update.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&update.ID, "id", "", "user id")
	edit.Flags().StringVar(&update.Name, "name", "", "name")
	edit.Flags().StringVar(&update.Email, "email", "", "email")
	edit.Flags().StringVar(&update.Role, "role", "", "asesor|asesorJR|gerente_sucursal|gerente_zona")

	var deleteID string
	var yes bool
	remove := &cobra.Command{
		Use:   "delete --id <id> --yes",
		Short: "Delete a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete user %s without --yes", deleteID)
			}
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.UserCLI.Delete(cmd.Context(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user %s deleted\n", deleteID)
			return nil
		},
	}
	remove.Flags().StringVar(&deleteID, "id", "", "user id")
	remove.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	user.AddCommand(list, show, edit, remove)
	return user
}
