package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/provenlabs/origintrace/pkg/routing"
)

func TestDefaultCLIConfig(t *testing.T) {
	cfg := DefaultCLIConfig()

	if cfg.Clearance != routing.DefaultClearance {
		t.Errorf("Clearance = %f, want %f", cfg.Clearance, routing.DefaultClearance)
	}
	if cfg.Style != routing.StyleSmooth {
		t.Errorf("Style = %q, want %q", cfg.Style, routing.StyleSmooth)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr should default to empty, got %q", cfg.Redis.Addr)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `clearance = 55.0
offset_step = 30.0
style = "tight"
show_nodes = true

[redis]
addr = "localhost:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Clearance != 55 {
		t.Errorf("Clearance = %f, want 55", cfg.Clearance)
	}
	if cfg.OffsetStep != 30 {
		t.Errorf("OffsetStep = %f, want 30", cfg.OffsetStep)
	}
	if cfg.Style != "tight" {
		t.Errorf("Style = %q, want tight", cfg.Style)
	}
	if !cfg.ShowNodes {
		t.Error("ShowNodes should be true")
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want localhost:6379", cfg.Redis.Addr)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Redis.DB)
	}

	// Unset keys keep defaults
	if cfg.ParallelThreshold != routing.DefaultParallelThreshold {
		t.Errorf("ParallelThreshold = %f, want default %f", cfg.ParallelThreshold, routing.DefaultParallelThreshold)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadConfig() with missing explicit path should fail")
	}
}

func TestLoadConfigMissingDefaultPath(t *testing.T) {
	oldXdg := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", t.TempDir())
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CONFIG_HOME", oldXdg)
		} else {
			os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() with absent default should not fail: %v", err)
	}
	if cfg.Clearance != routing.DefaultClearance {
		t.Error("absent default config should yield defaults")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[redis]\naddr = \"filehost:6379\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ORIGINTRACE_REDIS_ADDR", "envhost:6379")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Redis.Addr != "envhost:6379" {
		t.Errorf("Redis.Addr = %q, want env override envhost:6379", cfg.Redis.Addr)
	}
}

func TestLoadConfigInvalidStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`style = "wavy"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with invalid style should fail")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`clearance = [not toml`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with malformed TOML should fail")
	}
}
