package testsupport

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"mediaprobe/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config bound to an ephemeral port. It applies
// any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Extractor.Workers = 2

	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithExtractorTimeout overrides the extraction timeout, in seconds.
func WithExtractorTimeout(seconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Extractor.Timeout = seconds
	}
}

// WithMaxBodyBytes overrides the HTTP request body limit.
func WithMaxBodyBytes(limit int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.MaxBodyBytes = limit
	}
}

// WithStubbedEngine writes a shell script standing in for yt-dlp and points the
// extractor at it. The script prints stdout and stderr verbatim and exits with
// exitCode.
func WithStubbedEngine(stdout, stderr string, exitCode int) ConfigOption {
	return func(b *configBuilder) {
		b.writeEngineStub("", stdout, stderr, exitCode)
	}
}

// WithRecordingEngine is WithStubbedEngine for a successful run that also
// writes every argument it receives, one per line, to argsPath.
func WithRecordingEngine(stdout, argsPath string) ConfigOption {
	return func(b *configBuilder) {
		b.writeEngineStub(argsPath, stdout, "", 0)
	}
}

func (b *configBuilder) writeEngineStub(argsPath, stdout, stderr string, exitCode int) {
	binDir := filepath.Join(b.baseDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		b.t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, "yt-dlp")
	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	if argsPath != "" {
		script.WriteString("printf '%s\\n' \"$@\" > '" + argsPath + "'\n")
	}
	if stdout != "" {
		script.WriteString("cat <<'STDOUT_EOF'\n" + stdout + "\nSTDOUT_EOF\n")
	}
	if stderr != "" {
		script.WriteString("cat >&2 <<'STDERR_EOF'\n" + stderr + "\nSTDERR_EOF\n")
	}
	script.WriteString("exit " + strconv.Itoa(exitCode) + "\n")
	if err := os.WriteFile(target, []byte(script.String()), 0o755); err != nil {
		b.t.Fatalf("write stub yt-dlp: %v", err)
	}
	b.cfg.Extractor.Binary = target
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, yt-dlp is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"yt-dlp"}
		}
		binDir := filepath.Join(b.baseDir, "path-bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// WithAPIToken enables bearer authentication on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.APIToken = token
	}
}
