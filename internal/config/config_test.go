package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Error(d)
	}
	if cfg.TLS() {
		t.Error("TLS enabled without certificates")
	}
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"ADDR":       ":443",
		"TLS_CERT":   "server.crt",
		"TLS_KEY":    "server.key",
		"RATE_LIMIT": "0.5",
		"RATE_BURST": "3",
		"STATIC_DIR": "./static/main",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Addr: ":443", TLSCert: "server.crt", TLSKey: "server.key", RateLimit: 0.5, RateBurst: 3, StaticDir: "./static/main"}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}
	if !cfg.TLS() {
		t.Error("TLS not enabled")
	}
}

func TestFromEnvInvalid(t *testing.T) {
	for _, m := range []map[string]string{
		{"TLS_CERT": "server.crt"},
		{"RATE_LIMIT": "fast"},
		{"RATE_LIMIT": "-1"},
		{"RATE_BURST": "0"},
	} {
		if _, err := FromEnv(env(m)); err == nil {
			t.Errorf("FromEnv(%v) succeeded, want error", m)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("RATE_BURST=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RATE_BURST", "")
	os.Unsetenv("RATE_BURST")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RateBurst != 7 {
		t.Errorf("RateBurst %d, want 7", cfg.RateBurst)
	}
}
