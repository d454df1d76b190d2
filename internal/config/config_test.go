package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearPolkaEnv unsets every POLKA_* variable so tests see a clean slate.
// t.Setenv registers the restore automatically.
func clearPolkaEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"POLKA_API_URL",
		"POLKA_API_TOKEN",
		"POLKA_LOCALE",
		"POLKA_HTTP_TIMEOUT",
		"POLKA_NO_COLOR",
		"POLKA_DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		clearPolkaEnv(t)

		s, err := Load(filepath.Join(t.TempDir(), "nonexistent.env"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if s.APIURL != "http://localhost:8000" {
			t.Errorf("APIURL: got %q, want %q", s.APIURL, "http://localhost:8000")
		}
		if s.APIToken != "" {
			t.Errorf("APIToken: got %q, want empty", s.APIToken)
		}
		if s.Locale != "ru" {
			t.Errorf("Locale: got %q, want %q", s.Locale, "ru")
		}
		if s.HTTPTimeout != 10*time.Second {
			t.Errorf("HTTPTimeout: got %s, want 10s", s.HTTPTimeout)
		}
		if s.NoColor {
			t.Error("NoColor: got true, want false")
		}
		if s.Debug {
			t.Error("Debug: got true, want false")
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		clearPolkaEnv(t)
		t.Setenv("POLKA_API_URL", "https://api.polka.example")
		t.Setenv("POLKA_API_TOKEN", "secret-token")
		t.Setenv("POLKA_LOCALE", "en")
		t.Setenv("POLKA_HTTP_TIMEOUT", "30s")
		t.Setenv("POLKA_NO_COLOR", "true")

		s, err := Load(filepath.Join(t.TempDir(), "nonexistent.env"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if s.APIURL != "https://api.polka.example" {
			t.Errorf("APIURL: got %q, want %q", s.APIURL, "https://api.polka.example")
		}
		if s.APIToken != "secret-token" {
			t.Errorf("APIToken: got %q, want %q", s.APIToken, "secret-token")
		}
		if s.Locale != "en" {
			t.Errorf("Locale: got %q, want %q", s.Locale, "en")
		}
		if s.HTTPTimeout != 30*time.Second {
			t.Errorf("HTTPTimeout: got %s, want 30s", s.HTTPTimeout)
		}
		if !s.NoColor {
			t.Error("NoColor: got false, want true")
		}
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		clearPolkaEnv(t)

		dir := t.TempDir()
		envPath := filepath.Join(dir, ".env")
		content := "POLKA_API_URL=http://polka.local:9000\nPOLKA_LOCALE=en\n"
		if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
			t.Fatalf("setup: write env file failed: %v", err)
		}

		s, err := Load(envPath)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if s.APIURL != "http://polka.local:9000" {
			t.Errorf("APIURL: got %q, want %q", s.APIURL, "http://polka.local:9000")
		}
		if s.Locale != "en" {
			t.Errorf("Locale: got %q, want %q", s.Locale, "en")
		}
	})

	t.Run("environment wins over env file", func(t *testing.T) {
		clearPolkaEnv(t)
		t.Setenv("POLKA_API_URL", "http://from-env:8000")

		dir := t.TempDir()
		envPath := filepath.Join(dir, ".env")
		if err := os.WriteFile(envPath, []byte("POLKA_API_URL=http://from-file:8000\n"), 0644); err != nil {
			t.Fatalf("setup: write env file failed: %v", err)
		}

		s, err := Load(envPath)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if s.APIURL != "http://from-env:8000" {
			t.Errorf("APIURL: got %q, want %q", s.APIURL, "http://from-env:8000")
		}
	})

	t.Run("missing env file is not an error", func(t *testing.T) {
		clearPolkaEnv(t)

		_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	})

	t.Run("bad timeout is an error", func(t *testing.T) {
		clearPolkaEnv(t)
		t.Setenv("POLKA_HTTP_TIMEOUT", "not-a-duration")

		_, err := Load(filepath.Join(t.TempDir(), "nonexistent.env"))
		if err == nil {
			t.Fatal("Load should fail for an unparseable timeout")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{
			name:    "valid http",
			s:       Settings{APIURL: "http://localhost:8000", Locale: "ru", HTTPTimeout: 10 * time.Second},
			wantErr: false,
		},
		{
			name:    "valid https",
			s:       Settings{APIURL: "https://api.polka.example", Locale: "en", HTTPTimeout: time.Second},
			wantErr: false,
		},
		{
			name:    "missing scheme",
			s:       Settings{APIURL: "localhost:8000", Locale: "ru", HTTPTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			s:       Settings{APIURL: "ftp://polka.example", Locale: "ru", HTTPTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "missing host",
			s:       Settings{APIURL: "http://", Locale: "ru", HTTPTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "zero timeout",
			s:       Settings{APIURL: "http://localhost:8000", Locale: "ru", HTTPTimeout: 0},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			s:       Settings{APIURL: "http://localhost:8000", Locale: "ru", HTTPTimeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "unknown locale",
			s:       Settings{APIURL: "http://localhost:8000", Locale: "fr", HTTPTimeout: time.Second},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate should have failed")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		apiURL string
		want   string
	}{
		{"no trailing slash", "http://localhost:8000", "http://localhost:8000"},
		{"one trailing slash", "http://localhost:8000/", "http://localhost:8000"},
		{"several trailing slashes", "http://localhost:8000///", "http://localhost:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{APIURL: tt.apiURL}
			if got := s.BaseURL(); got != tt.want {
				t.Errorf("BaseURL: got %q, want %q", got, tt.want)
			}
		})
	}
}
