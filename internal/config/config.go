package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Settings holds everything polka reads from the environment. Values can come
// from the process environment or from a .env file in the working directory;
// real environment variables win over the file.
type Settings struct {
	// APIURL is the base URL of the Polka backend.
	APIURL string `env:"POLKA_API_URL,default=http://localhost:8000"`

	// APIToken is the bearer token attached to every request when set.
	APIToken string `env:"POLKA_API_TOKEN"`

	// Locale selects the UI language ("ru" or "en").
	Locale string `env:"POLKA_LOCALE,default=ru"`

	// HTTPTimeout bounds every backend call.
	HTTPTimeout time.Duration `env:"POLKA_HTTP_TIMEOUT,default=10s"`

	// NoColor disables styled output.
	NoColor bool `env:"POLKA_NO_COLOR,default=false"`

	// Debug enables slog output on stderr.
	Debug bool `env:"POLKA_DEBUG,default=false"`
}

// Load reads settings from the environment, honoring an optional env file.
// With no arguments it tries ".env"; a missing file is not an error.
func Load(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	var s Settings
	if err := envdecode.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the decoded settings for values that cannot work.
func (s *Settings) Validate() error {
	u, err := url.Parse(s.APIURL)
	if err != nil {
		return fmt.Errorf("invalid POLKA_API_URL %q: %w", s.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid POLKA_API_URL %q: scheme must be http or https", s.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid POLKA_API_URL %q: missing host", s.APIURL)
	}
	if s.HTTPTimeout <= 0 {
		return fmt.Errorf("POLKA_HTTP_TIMEOUT must be positive, got %s", s.HTTPTimeout)
	}
	switch s.Locale {
	case "ru", "en":
	default:
		return fmt.Errorf("unsupported POLKA_LOCALE %q (want ru or en)", s.Locale)
	}
	return nil
}

// BaseURL returns the API URL without a trailing slash, ready for joining
// request paths.
func (s *Settings) BaseURL() string {
	return strings.TrimRight(s.APIURL, "/")
}
