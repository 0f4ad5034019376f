package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSecretKeyDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	os.Unsetenv("SECRET_KEY")

	cases := map[Variant]string{
		VariantV1: "default",
		VariantV2: "default",
		VariantV3: "no_secret",
	}
	for variant, want := range cases {
		if got := GetSecretKey(variant); got != want {
			t.Errorf("GetSecretKey(%s) = %q, want %q", variant, got, want)
		}
	}
}

func TestGetSecretKeyEmptyValue(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	for _, variant := range []Variant{VariantV1, VariantV2, VariantV3} {
		if got := GetSecretKey(variant); got != "" {
			t.Errorf("GetSecretKey(%s) = %q, want empty string", variant, got)
		}
	}
}

func TestGetSecretKeyFromEnv(t *testing.T) {
	t.Setenv("SECRET_KEY", "abc123")

	for _, variant := range []Variant{VariantV1, VariantV2, VariantV3} {
		if got := GetSecretKey(variant); got != "abc123" {
			t.Errorf("GetSecretKey(%s) = %q, want abc123", variant, got)
		}
	}
}

func TestGetSecretKeyReadsEveryCall(t *testing.T) {
	t.Setenv("SECRET_KEY", "first")
	if got := GetSecretKey(VariantV3); got != "first" {
		t.Fatalf("expected first, got %q", got)
	}

	os.Setenv("SECRET_KEY", "second")
	if got := GetSecretKey(VariantV3); got != "second" {
		t.Errorf("expected second, got %q", got)
	}
}

func TestParseVariant(t *testing.T) {
	for _, name := range []string{"v1", "v2", "v3"} {
		if _, err := ParseVariant(name); err != nil {
			t.Errorf("ParseVariant(%q) returned error: %v", name, err)
		}
	}

	if _, err := ParseVariant("v4"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestGetServerConfigDefaults(t *testing.T) {
	t.Setenv("APP_VARIANT", "")
	t.Setenv("HTTP_HOST", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("LOG_HTTP", "")

	cfg, err := GetServerConfig()
	if err != nil {
		t.Fatalf("GetServerConfig failed: %v", err)
	}

	if cfg.Variant != DefaultVariant {
		t.Errorf("expected variant %s, got %s", DefaultVariant, cfg.Variant)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("expected 0.0.0.0:5000, got %s", cfg.Addr())
	}
	if cfg.LogHTTP {
		t.Error("LogHTTP should be off by default")
	}
}

func TestGetServerConfigV1UsesFrameworkDefault(t *testing.T) {
	t.Setenv("APP_VARIANT", "v1")
	t.Setenv("HTTP_HOST", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := GetServerConfig()
	if err != nil {
		t.Fatalf("GetServerConfig failed: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:5000" {
		t.Errorf("expected 127.0.0.1:5000, got %s", cfg.Addr())
	}
}

func TestGetServerConfigOverrides(t *testing.T) {
	t.Setenv("APP_VARIANT", "v2")
	t.Setenv("HTTP_HOST", "localhost")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("LOG_HTTP", "true")

	cfg, err := GetServerConfig()
	if err != nil {
		t.Fatalf("GetServerConfig failed: %v", err)
	}
	if cfg.Addr() != "localhost:8081" {
		t.Errorf("expected localhost:8081, got %s", cfg.Addr())
	}
	if !cfg.LogHTTP {
		t.Error("expected LogHTTP to be enabled")
	}
}

func TestGetServerConfigUnknownVariant(t *testing.T) {
	t.Setenv("APP_VARIANT", "prod")

	if _, err := GetServerConfig(); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadMissingFile(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("missing .env should not be an error: %v", err)
	}
	if loaded {
		t.Error("expected loaded to be false")
	}
}

func TestLoadKeepsExistingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SECRET_KEY=from_file\nLOAD_TEST_ONLY=yes\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SECRET_KEY", "from_env")
	t.Setenv("LOAD_TEST_ONLY", "")
	os.Unsetenv("LOAD_TEST_ONLY")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded {
		t.Error("expected loaded to be true")
	}

	if got := os.Getenv("SECRET_KEY"); got != "from_env" {
		t.Errorf("existing env was overridden: got %q", got)
	}
	if got := os.Getenv("LOAD_TEST_ONLY"); got != "yes" {
		t.Errorf("expected LOAD_TEST_ONLY=yes, got %q", got)
	}
}
