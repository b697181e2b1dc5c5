package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"morson/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogs := filepath.Join(tempHome, ".local", "share", "morson", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	wantLocks := filepath.Join(tempHome, ".local", "share", "morson", "locks")
	if cfg.Paths.LockDir != wantLocks {
		t.Fatalf("unexpected lock dir: got %q want %q", cfg.Paths.LockDir, wantLocks)
	}
	wantHistory := filepath.Join(tempHome, ".local", "share", "morson", "history.db")
	if cfg.Paths.HistoryPath != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.Paths.HistoryPath, wantHistory)
	}
	wantOutput, err := filepath.Abs("output")
	if err != nil {
		t.Fatalf("abs output: %v", err)
	}
	if cfg.Output.Path != wantOutput {
		t.Fatalf("unexpected output path: got %q want %q", cfg.Output.Path, wantOutput)
	}
	if !cfg.Output.Overwrite || !cfg.Output.Lock {
		t.Fatalf("expected overwrite and lock enabled by default: %+v", cfg.Output)
	}
	if cfg.Batch.Workers != config.Default().Batch.Workers {
		t.Fatalf("unexpected batch workers: %d", cfg.Batch.Workers)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("expected file logging off by default, got %q", cfg.LogFilePath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.LockDir, filepath.Dir(cfg.Paths.HistoryPath)} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "morson.toml")

	type payload struct {
		Output struct {
			Path      string `toml:"path"`
			Overwrite bool   `toml:"overwrite"`
		} `toml:"output"`
		Batch struct {
			Workers   int    `toml:"workers"`
			Extension string `toml:"extension"`
		} `toml:"batch"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Output.Path = filepath.Join(tempDir, "result.txt")
	custom.Batch.Workers = 9
	custom.Batch.Extension = "msn"
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Output.Path != custom.Output.Path {
		t.Fatalf("expected output path from file, got %q", cfg.Output.Path)
	}
	if cfg.Output.Overwrite {
		t.Fatal("expected overwrite disabled from file")
	}
	if cfg.Batch.Workers != 9 {
		t.Fatalf("expected 9 workers, got %d", cfg.Batch.Workers)
	}
	if cfg.Batch.Extension != ".msn" {
		t.Fatalf("expected extension to gain a leading dot, got %q", cfg.Batch.Extension)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "morson.toml")
	if err := os.WriteFile(configPath, []byte("[output]\npaht = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "morson.toml")
	contents := "[output]\npath = \"from-file\"\n\n[logging]\nlevel = \"info\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	envOutput := filepath.Join(tempDir, "from-env")
	t.Setenv("MORSON_OUTPUT", envOutput)
	t.Setenv("MORSON_LOG_LEVEL", "WARN")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Output.Path != envOutput {
		t.Errorf("expected output path from env, got %q", cfg.Output.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[output]") {
		t.Fatalf("sample config missing output section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Output.Path != "output" {
		t.Fatalf("expected sample output path, got %q", cfg.Output.Path)
	}
	if cfg.Batch.Workers != config.Default().Batch.Workers {
		t.Fatalf("expected sample workers to match defaults, got %d", cfg.Batch.Workers)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero workers")
	}

	cfg = config.Default()
	cfg.Batch.Extension = "out/x"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for extension with separator")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Output.Path = "/tmp/morson/history.db"
	cfg.Paths.HistoryPath = "/tmp/morson/history.db"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when output collides with history database")
	}

	cfg = config.Default()
	cfg.Output.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty output path")
	}
}
