package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	trainingdto "capacita/internal/modules/training/dto"
)

func newTrainingCmd(flags *globalFlags) *cobra.Command {
	training := &cobra.Command{Use: "training", Short: "Training materials"}

	var search string
	list := &cobra.Command{
		Use:   "list [--search <query>]",
		Short: "List materials grouped by section and module",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.TrainingCLI.List(cmd.Context(), search)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Total == 0 {
				_, _ = fmt.Fprintln(w, "no materials found")
				return nil
			}
			for _, s := range out.Sections {
				_, _ = fmt.Fprintf(w, "# %s\n", s.Name)
				for _, m := range s.Modules {
					_, _ = fmt.Fprintf(w, "  ## %s\n", m.Name)
					for _, mat := range m.Materials {
						_, _ = fmt.Fprintf(w, "    %s  %s  [%s]\n", mat.ID, mat.Title, assetKinds(mat))
					}
				}
			}
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter by title, description, roles, section or module")

	var id string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show one material",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			m, err := app.TrainingCLI.Show(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "id=%s title=%q section=%q module=%q submodule=%q\n", m.ID, m.Title, m.Section, m.Module, m.Submodule)
			_, _ = fmt.Fprintf(w, "roles=%s\n", strings.Join(m.Roles, ","))
			if m.DocumentURL != "" {
				_, _ = fmt.Fprintf(w, "document=%s (%s)\n", m.DocumentURL, m.DocumentName)
			}
			if m.VideoURL != "" {
				_, _ = fmt.Fprintf(w, "video=%s (%s)\n", m.VideoURL, m.VideoName)
			}
			_, _ = fmt.Fprintln(w, m.Description)
			return nil
		},
	}
	show.Flags().StringVar(&id, "id", "", "material id")

	var create trainingdto.CreateMaterialInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a material (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.TrainingCLI.Add(cmd.Context(), create); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "material %q created\n", create.Title)
			return nil
		},
	}
	add.Flags().StringVar(&create.Title, "title", "", "title (5-100 chars)")
	add.Flags().StringVar(&create.Description, "description", "", "description (10-500 chars)")
	add.Flags().StringVar(&create.Section, "section", "", "section")
	add.Flags().StringVar(&create.Module, "module", "", "module")
	add.Flags().StringVar(&create.Submodule, "submodule", "", "submodule")
	add.Flags().StringSliceVar(&create.Roles, "roles", nil, "asesor,asesorJR,gerente_sucursal,gerente_zona")
	add.Flags().StringVar(&create.Type, "type", "document", "document|video")
	add.Flags().StringVar(&create.FileURL, "file-url", "", "uploaded file url")
	add.Flags().StringVar(&create.FileName, "file-name", "", "original file name")

	var update trainingdto.UpdateMaterialInput
	edit := &cobra.Command{
		Use:   "edit --id <id>",
		Short: "Edit a material (admin); empty flags keep the current value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.TrainingCLI.Edit(cmd.Context(), update); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "material %s updated\n", update.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&update.ID, "id", "", "material id")
	edit.Flags().StringVar(&update.Title, "title", "", "title")
	edit.Flags().StringVar(&update.Description, "description", "", "description")
	edit.Flags().StringVar(&update.Section, "section", "", "section")
	edit.Flags().StringVar(&update.Module, "module", "", "module")
	edit.Flags().StringVar(&update.Submodule, "submodule", "", "submodule")
	edit.Flags().StringSliceVar(&update.Roles, "roles", nil, "replacement role list")
	edit.Flags().StringVar(&update.Type, "type", "", "document|video, with --file-url and --file-name to replace that file")
	edit.Flags().StringVar(&update.FileURL, "file-url", "", "replacement file url")
	edit.Flags().StringVar(&update.FileName, "file-name", "", "replacement file name")
	edit.Flags().BoolVar(&update.DeleteDocument, "delete-document", false, "remove the document")
	edit.Flags().BoolVar(&update.DeleteVideo, "delete-video", false, "remove the video")

	var deleteID string
	remove := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a material (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.TrainingCLI.Delete(cmd.Context(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "material %s deleted\n", deleteID)
			return nil
		},
	}
	remove.Flags().StringVar(&deleteID, "id", "", "material id")

	training.AddCommand(list, show, add, edit, remove)
	return training
}

func assetKinds(m trainingdto.MaterialOutput) string {
	var kinds []string
	if m.DocumentURL != "" {
		kinds = append(kinds, "document")
	}
	if m.VideoURL != "" {
		kinds = append(kinds, "video")
	}
	return strings.Join(kinds, "+")
}
