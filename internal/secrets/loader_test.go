package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  file-secret \n"), 0o600); err != nil {
		t.Fatalf("writing secret file: %v", err)
	}

	secret, err := Load(Source{Name: "api key", File: path, Env: "UNSET_ENV", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "file-secret" {
		t.Fatalf("unexpected secret: %q", secret)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKILLSWAP_TEST_KEY", "  env-secret ")

	secret, err := Load(Source{Name: "api key", Env: "SKILLSWAP_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "env-secret" {
		t.Fatalf("expected env to win over inline value, got %q", secret)
	}
}

func TestLoadFromValue(t *testing.T) {
	t.Setenv("SKILLSWAP_TEST_KEY", "")

	secret, err := Load(Source{Name: "api key", Env: "SKILLSWAP_TEST_KEY", Value: " inline "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "inline" {
		t.Fatalf("unexpected secret: %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api key"}); err == nil {
		t.Fatalf("expected error when nothing is configured")
	}

	if _, err := Load(Source{Name: "api key", File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("   "), 0o600); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}
	if _, err := Load(Source{Name: "api key", File: empty}); err == nil {
		t.Fatalf("expected error for empty file")
	}
}
