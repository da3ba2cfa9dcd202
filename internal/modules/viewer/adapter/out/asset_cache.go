package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	viewerout "capacita/internal/modules/viewer/port/out"
)

type downloader interface {
	Fetch(ctx context.Context, url string, w io.Writer) error
}

// AssetCache keeps downloaded assets under <home>/cache, one file per URL.
type AssetCache struct {
	dir    string
	client downloader
}

func NewAssetCache(homeDir string, client downloader) viewerout.AssetFetcher {
	return &AssetCache{dir: filepath.Join(homeDir, "cache"), client: client}
}

func (c *AssetCache) Fetch(ctx context.Context, url string) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	local := filepath.Join(c.dir, cacheName(url))
	if info, err := os.Stat(local); err == nil && info.Size() > 0 {
		return local, nil
	}
	tmp, err := os.CreateTemp(c.dir, "download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := c.client.Fetch(ctx, url, tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close download: %w", err)
	}
	if err := os.Rename(tmp.Name(), local); err != nil {
		return "", fmt.Errorf("store download: %w", err)
	}
	return local, nil
}

func cacheName(url string) string {
	clean := url
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String() + strings.ToLower(path.Ext(clean))
}
