package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	progressdto "capacita/internal/modules/progress/dto"
	viewerdto "capacita/internal/modules/viewer/dto"
)

func newViewCmd(flags *globalFlags) *cobra.Command {
	view := &cobra.Command{Use: "view", Short: "Open materials and record progress"}

	var docID string
	var page int
	var external bool
	document := &cobra.Command{
		Use:   "document --id <id>",
		Short: "Open a document and run the reading timer until it completes or you interrupt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			ctx := cmd.Context()
			out, err := app.ViewerCLI.OpenDocument(ctx, docID, page, external)
			if err != nil {
				return err
			}
			printOpened(cmd, out)
			if !out.Tracking {
				return nil
			}
			return waitDwell(ctx, cmd, app.ProgressCLI.Status)
		},
	}
	document.Flags().StringVar(&docID, "id", "", "material id")
	document.Flags().IntVar(&page, "page", 1, "pdf page")
	document.Flags().BoolVar(&external, "external", false, "open in the system viewer")

	var videoID string
	var duration, position float64
	var ended, launch bool
	video := &cobra.Command{
		Use:   "video --id <id> (--position <seconds> | --ended)",
		Short: "Report a playback position for a video",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !ended && position < 0 {
				return fmt.Errorf("--position or --ended is required")
			}
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			ctx := cmd.Context()
			out, err := app.ViewerCLI.OpenVideo(ctx, videoID, duration, launch)
			if err != nil {
				return err
			}
			printOpened(cmd, out)
			if !out.Tracking {
				return nil
			}
			var played viewerdto.PlaybackOutput
			if ended {
				played, err = app.ViewerCLI.Ended(ctx, videoID)
			} else {
				played, err = app.ViewerCLI.Playback(ctx, videoID, position, out.Duration)
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if played.Sent {
				_, _ = fmt.Fprintf(w, "video progress %.0f%% saved\n", played.Percent)
			} else {
				_, _ = fmt.Fprintf(w, "video progress %.0f%% not sent (%s)\n", played.Percent, played.SkipReason)
			}
			if played.AllCompleted {
				_, _ = fmt.Fprintln(w, "all materials completed: the evaluation is unlocked")
			}
			return nil
		},
	}
	video.Flags().StringVar(&videoID, "id", "", "material id")
	video.Flags().Float64Var(&duration, "duration", 0, "video length in seconds (probed with ffprobe when 0)")
	video.Flags().Float64Var(&position, "position", -1, "current playback position in seconds")
	video.Flags().BoolVar(&ended, "ended", false, "the video was watched to the end")
	video.Flags().BoolVar(&launch, "external", false, "also open the video in the system player")

	view.AddCommand(document, video)
	return view
}

func printOpened(cmd *cobra.Command, out viewerdto.OpenResult) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "material=%s title=%q mode=%s", out.MaterialID, out.Title, out.Mode)
	if out.Tracking {
		_, _ = fmt.Fprintf(w, " progress=%.0f%%", out.Percent)
	}
	_, _ = fmt.Fprintln(w)
	if out.TotalPage > 0 {
		_, _ = fmt.Fprintf(w, "page=%d/%d\n", out.Page, out.TotalPage)
	}
	if out.ExternalTarget != "" && out.ExternalLaunched {
		_, _ = fmt.Fprintf(w, "opened %s\n", out.ExternalTarget)
	}
	if out.SeekTo > 0 {
		_, _ = fmt.Fprintf(w, "resume at %.0fs\n", out.SeekTo)
	}
	if strings.TrimSpace(out.Content) != "" && !out.ExternalLaunched {
		_, _ = fmt.Fprintln(w, out.Content)
	}
}

// waitDwell prints the reading timer once a second until the tracker stops
// or the command is interrupted.
func waitDwell(ctx context.Context, cmd *cobra.Command, status func(context.Context) progressdto.TrackerStatus) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	w := cmd.ErrOrStderr()
	for {
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(w)
			return nil
		case <-ticker.C:
			st := status(ctx)
			if st.Completed {
				_, _ = fmt.Fprintln(w, "\rdocument completed")
				return nil
			}
			if !st.Tracking {
				_, _ = fmt.Fprintln(w)
				return nil
			}
			_, _ = fmt.Fprintf(w, "\rreading %s  %.0f%%", formatElapsed(st.Elapsed), st.Percent)
		}
	}
}

func formatElapsed(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
