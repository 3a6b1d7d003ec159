package deps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"mediaprobe/internal/config"
)

const versionProbeTimeout = 10 * time.Second

// Requirements lists the external binaries the extraction engine needs.
//
// yt-dlp itself is required. Recent yt-dlp releases solve YouTube player
// challenges with an external JavaScript runtime; deno is its default, so it is
// reported as optional.
func Requirements(cfg *config.Config) []Requirement {
	binary := ""
	if cfg != nil {
		binary = cfg.Extractor.Binary
	}
	return []Requirement{
		{
			Name:        "yt-dlp",
			Command:     binary,
			Description: "Extraction engine for media metadata",
		},
		{
			Name:        "Deno",
			Command:     "deno",
			Description: "JavaScript runtime used by yt-dlp for some sites",
			Optional:    true,
		},
	}
}

// EngineVersion asks the engine for its version and returns the first line.
func EngineVersion(ctx context.Context, binary string) (string, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return "", errors.New("engine binary not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	res, err := ytdlp.New().SetExecutable(binary).Version(ctx)
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", binary, err)
	}
	lines := strings.SplitN(strings.TrimSpace(res.Stdout), "\n", 2)
	return strings.TrimSpace(lines[0]), nil
}
