package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProgressCmd(flags *globalFlags) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Training progress"}

	view := &cobra.Command{
		Use:   "view",
		Short: "Show your progress per material",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			records, err := app.ProgressCLI.View(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(w, "no progress recorded yet")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(w, "%-24s document=%3.0f%% video=%3.0f%% total=%3.0f%% %s\n",
					r.Title, r.DocumentProgress, r.VideoProgress, r.Progress, r.Status)
			}
			return nil
		},
	}

	completed := &cobra.Command{
		Use:   "completed",
		Short: "Report whether every material is completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			ok, err := app.ProgressCLI.Completed(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed=%t\n", ok)
			return nil
		},
	}

	all := &cobra.Command{
		Use:   "all",
		Short: "Show the progress of every user (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			users, err := app.ProgressCLI.AllProgress(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, u := range users {
				_, _ = fmt.Fprintf(w, "%s (%s) completed=%t\n", u.Name, u.Role, u.Completed)
				for _, t := range u.Trainings {
					_, _ = fmt.Fprintf(w, "  %-24s %3.0f%% %s\n", t.Title, t.Progress, t.Status)
				}
			}
			return nil
		},
	}

	report := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown progress report under the home directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			profile, err := app.AuthCLI.Profile(cmd.Context())
			if err != nil {
				return err
			}
			out, err := app.ProgressCLI.WriteReport(cmd.Context(), profile.Name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report=%s materials=%d completed=%t\n", out.Path, out.Materials, out.AllCompleted)
			return nil
		},
	}

	progress.AddCommand(view, completed, all, report)
	return progress
}
