package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	viewerout "capacita/internal/modules/viewer/port/out"
)

type OSExternalLauncher struct{}

func NewOSExternalLauncher() viewerout.ExternalLauncher {
	return &OSExternalLauncher{}
}

// Open hands the asset URL to the desktop's default handler.
func (l *OSExternalLauncher) Open(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "linux", "freebsd":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("external open is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open external target: %w", err)
	}
	return nil
}
