package extraction

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"mediaprobe/internal/config"
)

// Result is the captured output of one engine run.
type Result struct {
	Stdout []byte
	Stderr string
}

// Engine runs the external extractor for a single URL. Implementations must
// stop work when ctx is done.
type Engine interface {
	Run(ctx context.Context, url string) (Result, error)
}

// YTDLPEngine invokes yt-dlp through go-ytdlp with a fixed metadata-only flag
// set: no download, no playlist expansion, no cache, quiet output, relaxed TLS
// and geo-restriction bypass.
type YTDLPEngine struct {
	binary        string
	socketTimeout time.Duration
	retries       int
	proxy         string
}

// NewYTDLPEngine builds an engine from extractor settings.
func NewYTDLPEngine(cfg config.Extractor) *YTDLPEngine {
	return &YTDLPEngine{
		binary:        strings.TrimSpace(cfg.Binary),
		socketTimeout: time.Duration(cfg.SocketTimeout) * time.Second,
		retries:       cfg.Retries,
		proxy:         strings.TrimSpace(cfg.Proxy),
	}
}

func (e *YTDLPEngine) command() *ytdlp.Command {
	cmd := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		NoPlaylist().
		Quiet().
		NoWarnings().
		NoCheckCertificates().
		GeoBypass().
		NoCacheDir().
		Retries(strconv.Itoa(e.retries))
	if e.socketTimeout > 0 {
		cmd = cmd.SocketTimeout(e.socketTimeout.Seconds())
	}
	if e.proxy != "" {
		cmd = cmd.Proxy(e.proxy)
	}
	if e.binary != "" {
		cmd = cmd.SetExecutable(e.binary)
	}
	return cmd
}

// Run executes yt-dlp and returns its JSON output. stderr is returned alongside
// any error so callers can classify the failure.
func (e *YTDLPEngine) Run(ctx context.Context, url string) (Result, error) {
	res, err := e.command().Run(ctx, url)
	var out Result
	if res != nil {
		out.Stdout = []byte(res.Stdout)
		out.Stderr = res.Stderr
	}
	return out, err
}
