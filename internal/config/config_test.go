package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.ShutdownDuration() != 5*time.Second {
		t.Fatalf("shutdown want=5s got=%s", cfg.ShutdownDuration())
	}
	if cfg.TimeLocation().String() != "America/Recife" {
		t.Fatalf("timezone: %s", cfg.TimeLocation())
	}
}

func TestLoadConfigWithInfo_TOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "config.toml", `
[server]
port = 8080
shutdown_timeout = "10s"

[data]
roster_path = "quadro.xlsx"

[dashboard]
top_n = 0
timezone = "UTC"
`)

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo: %v", err)
	}
	if !info.PortSpecified || info.Path != path {
		t.Fatalf("unexpected info: %+v", info)
	}
	if cfg.Server.Port != 8080 || cfg.ShutdownDuration() != 10*time.Second {
		t.Fatalf("server: %+v", cfg.Server)
	}
	if cfg.Data.RosterPath != "quadro.xlsx" {
		t.Fatalf("roster path: %q", cfg.Data.RosterPath)
	}
	if cfg.Dashboard.TopN != 5 || cfg.Dashboard.OtherLocationKey != "OUTRAS" {
		t.Fatalf("dashboard defaults not applied: %+v", cfg.Dashboard)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("log defaults: %+v", cfg.Log)
	}
}

func TestLoadConfigWithInfo_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "config.yaml", `
dashboard:
  top_n: 3
  other_role_key: DEMAIS
log:
  level: DEBUG
  format: console
`)

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo: %v", err)
	}
	if info.PortSpecified {
		t.Fatalf("port was not in the file")
	}
	if cfg.Server.Port != 20262 {
		t.Fatalf("port default: %d", cfg.Server.Port)
	}
	if cfg.Dashboard.TopN != 3 || cfg.Dashboard.OtherRoleKey != "DEMAIS" {
		t.Fatalf("dashboard: %+v", cfg.Dashboard)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Fatalf("log: %+v", cfg.Log)
	}
}

func TestLoadConfigWithInfo_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("explicit missing file should fail")
	}

	bad := writeFile(t, "bad.toml", "[dashboard]\ntimezone = \"Mars/Olympus\"\n")
	if _, _, err := LoadConfigWithInfo(bad); err == nil {
		t.Fatalf("unknown timezone should fail")
	}

	broken := writeFile(t, "broken.toml", "[server\nport = ")
	if _, _, err := LoadConfigWithInfo(broken); err == nil {
		t.Fatalf("malformed toml should fail")
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*AppConfig){
		"port":     func(c *AppConfig) { c.Server.Port = 70000 },
		"shutdown": func(c *AppConfig) { c.Server.ShutdownTimeout = "soon" },
		"level":    func(c *AppConfig) { c.Log.Level = "verbose" },
		"format":   func(c *AppConfig) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: want error", name)
		}
	}
}

func TestLoadConfigWithInfo_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvRosterPath, "/tmp/quadro.csv")
	t.Setenv(EnvTimezone, "UTC")
	t.Setenv(EnvLogLevel, "warn")

	path := writeFile(t, "config.toml", "[server]\nport = 8080\n")
	cfg, _, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Data.RosterPath != "/tmp/quadro.csv" {
		t.Fatalf("env not applied: %+v %+v", cfg.Server, cfg.Data)
	}
	if cfg.Dashboard.Timezone != "UTC" || cfg.Log.Level != "warn" {
		t.Fatalf("env not applied: %+v %+v", cfg.Dashboard, cfg.Log)
	}

	t.Setenv(EnvPort, "abc")
	if _, _, err := LoadConfigWithInfo(path); err == nil {
		t.Fatalf("invalid port env should fail")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "PAINEL_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := writeFile(t, ".env", key+"=carregado\n")
	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv(key); got != "carregado" {
		t.Fatalf("want=carregado got=%q", got)
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.ApplyOverrides(Overrides{Port: 8081, DevMode: true, RosterPath: "quadro.csv"}); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if cfg.Server.Port != 8081 || !cfg.Server.DevMode || cfg.Log.Format != "console" || cfg.Data.RosterPath != "quadro.csv" {
		t.Fatalf("overrides not applied: %+v %+v %+v", cfg.Server, cfg.Log, cfg.Data)
	}

	cfg = DefaultConfig()
	if err := cfg.ApplyOverrides(Overrides{}); err != nil || cfg.Server.Port != 20262 {
		t.Fatalf("empty overrides: err=%v port=%d", err, cfg.Server.Port)
	}

	for _, port := range []int{70000, -1} {
		cfg = DefaultConfig()
		if err := cfg.ApplyOverrides(Overrides{Port: port}); err == nil {
			t.Fatalf("port %d should fail validation", port)
		}
	}
}
