package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/config"
	"github.com/polkashop/polka/internal/i18n"
)

var (
	version  string
	settings *config.Settings

	flagAPIURL  string
	flagToken   string
	flagLocale  string
	flagNoColor bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "polka",
	Short: "Terminal client for the Polka marketplace",
	Long: `polka - A terminal front-end for the Polka fashion marketplace.

Browse recommendations, search the catalog, pick favorite brands and
styles, review orders, and send brand notifications without leaving the
terminal. Run without arguments to open the interactive storefront.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBrowse,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Backend base URL (overrides POLKA_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (overrides POLKA_API_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "UI language, ru or en (overrides POLKA_LOCALE)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable styled output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "shop", Title: "Shopping Commands:"},
		&cobra.Group{ID: "admin", Title: "Admin Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)

	addViewFlag(rootCmd.Flags())
}

// addViewFlag registers --view; the bare root command and browse both
// accept it.
func addViewFlag(fs *pflag.FlagSet) {
	fs.String("view", "", "Starting view: discover, preferences, orders, broadcast")
}

// initSettings loads the environment configuration and layers the
// persistent flags on top. Runs once per invocation, before any RunE.
func initSettings() {
	s, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	applyOverrides(s, flagAPIURL, flagToken, flagLocale, flagNoColor)
	if err := s.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if s.NoColor {
		os.Setenv("NO_COLOR", "1")
	}
	configureLogging(s.Debug)
	settings = s
}

// applyOverrides copies set flag values onto the environment settings.
// Flags win over the environment; an unset flag leaves it alone.
func applyOverrides(s *config.Settings, apiURL, token, locale string, noColor bool) {
	if apiURL != "" {
		s.APIURL = apiURL
	}
	if token != "" {
		s.APIToken = token
	}
	if locale != "" {
		s.Locale = locale
	}
	if noColor {
		s.NoColor = true
	}
}

// configureLogging routes slog to stderr in debug mode and discards it
// otherwise, keeping command output and the storefront screen clean.
func configureLogging(debug bool) {
	if debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newClient builds the backend client from the active settings.
func newClient() *api.Client {
	return api.New(api.Config{
		BaseURL: settings.BaseURL(),
		Token:   settings.APIToken,
		Timeout: settings.HTTPTimeout,
	})
}

// newLocalizer resolves user-facing messages in the configured language.
func newLocalizer() *i18n.Localizer {
	return i18n.New(settings.Locale)
}
