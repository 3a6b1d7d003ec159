package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"mediaprobe/internal/api"
	"mediaprobe/internal/config"
	"mediaprobe/internal/testsupport"
)

const engineOutput = `{
  "title": "Canal walk",
  "thumbnail": "https://img.example/c.jpg",
  "duration": 125,
  "tags": ["canal"],
  "formats": [
    {"format_id": "140", "ext": "m4a", "vcodec": "none", "acodec": "mp4a.40.2", "abr": 129.4, "filesize": 2097152, "url": "https://cdn.example/140"},
    {"format_id": "18", "ext": "mp4", "height": 360, "fps": 25, "vcodec": "avc1", "acodec": "mp4a", "filesize": 5242880, "url": "https://cdn.example/18"},
    {"format_id": "22", "ext": "mp4", "height": 720, "fps": 25, "vcodec": "avc1", "acodec": "mp4a", "filesize_approx": 10485760, "url": "https://cdn.example/22"}
  ]
}`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a unix shell")
	}

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("YTDLP_PATH", "")
	t.Setenv("MEDIAPROBE_API_TOKEN", "")

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(base, "mediaprobe.toml")
	writeTestConfig(t, configPath, cfg)
	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[server]\nbind = %q\n\n[extractor]\nbinary = %q\ntimeout = %d\n\n[logging]\nlevel = %q\n",
		cfg.Server.Bind,
		cfg.Extractor.Binary,
		cfg.Extractor.Timeout,
		"error",
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
}

func TestInfoCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedEngine(engineOutput, "", 0))

	out, _, err := runCLI(t, []string{"info", "https://video.example/watch?v=1"}, env.configPath)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	requireContains(t, out, "Canal walk")
	requireContains(t, out, "02:05")
	requireContains(t, out, "360p, 720p")
	requireContains(t, out, "Formats")

	out, _, err = runCLI(t, []string{"info", "--json", "https://video.example/watch?v=1"}, env.configPath)
	if err != nil {
		t.Fatalf("info --json: %v", err)
	}
	var info api.InfoResponse
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode info json: %v", err)
	}
	if len(info.Formats) != 3 || info.Duration != "02:05" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestResolveCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedEngine(engineOutput, "", 0))

	out, _, err := runCLI(t, []string{"resolve", "--resolution", "480p", "https://video.example/watch?v=1"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, "360p\thttps://cdn.example/18")

	out, _, err = runCLI(t, []string{"resolve", "--audio", "--json", "https://video.example/watch?v=1"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve --audio: %v", err)
	}
	var audio api.AudioDownloadResponse
	if err := json.Unmarshal([]byte(out), &audio); err != nil {
		t.Fatalf("decode audio json: %v", err)
	}
	if audio.DownloadURL != "https://cdn.example/140" || audio.Type != "mp3" {
		t.Fatalf("unexpected audio response: %+v", audio)
	}

	if _, _, err := runCLI(t, []string{"resolve", "--resolution", "big", "https://video.example/watch?v=1"}, env.configPath); err == nil {
		t.Fatal("expected invalid resolution to fail")
	}
}

func TestFormatsCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedEngine(engineOutput, "", 0))

	out, _, err := runCLI(t, []string{"formats", "https://video.example/watch?v=1"}, env.configPath)
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	requireContains(t, out, "720p")
	requireContains(t, out, "10 MiB")
	requireContains(t, out, "Audio only")
	requireContains(t, out, "2.0 MiB")
}

func TestInfoCommandReportsEngineFailure(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedEngine("", "ERROR: Unsupported URL: https://video.example/", 1))

	_, _, err := runCLI(t, []string{"info", "https://video.example/"}, env.configPath)
	if err == nil {
		t.Fatal("expected engine failure to surface")
	}
	requireContains(t, err.Error(), "unsupported source")
}

func TestMediaCommandsRejectNonHTTPArguments(t *testing.T) {
	argsPath := filepath.Join(t.TempDir(), "args.txt")
	env := setupCLITestEnv(t, testsupport.WithRecordingEngine(engineOutput, argsPath))

	for _, args := range [][]string{
		{"info", "--", "--exec=touch /tmp/pwned"},
		{"resolve", "--", "--exec=touch /tmp/pwned"},
		{"formats", "file:///etc/passwd"},
	} {
		_, _, err := runCLI(t, args, env.configPath)
		if err == nil {
			t.Fatalf("expected %v to be rejected", args)
		}
		requireContains(t, err.Error(), "validation error")
	}
	if _, err := os.Stat(argsPath); !os.IsNotExist(err) {
		t.Fatalf("engine should not have been invoked, stat err=%v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedEngine("2025.10.22", "", 0))

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "yt-dlp")
	requireContains(t, out, "version 2025.10.22")

	missing := setupCLITestEnv(t)
	missing.cfg.Extractor.Binary = filepath.Join(t.TempDir(), "absent-yt-dlp")
	writeTestConfig(t, missing.configPath, missing.cfg)
	if _, _, err := runCLI(t, []string{"check"}, missing.configPath); err == nil {
		t.Fatal("expected check to fail when yt-dlp is missing")
	}
}
