package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/polkashop/polka/pkg/storefront"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive storefront",
	Long: `Open the full-screen storefront: recommendation feed and catalog
search, favorite brand and style pickers, order history, and the brand
broadcast form.

The storefront needs an interactive terminal. For scripted use, the
catalog, orders, and search commands print plain output instead.`,
	GroupID: "shop",
	Args:    cobra.NoArgs,
	RunE:    runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	addViewFlag(browseCmd.Flags())
}

// runBrowse backs both "polka" and "polka browse"; each registers its
// own --view flag, so cmd is always the one that was invoked.
func runBrowse(cmd *cobra.Command, args []string) error {
	viewFlag, _ := cmd.Flags().GetString("view")
	return launchStorefront(storefront.ParseView(viewFlag))
}

// launchStorefront runs the TUI starting at the given view.
func launchStorefront(view storefront.View) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the storefront needs an interactive terminal (stdout is not a TTY)")
	}

	model := storefront.New(storefront.Options{
		Client:    newClient(),
		Localizer: newLocalizer(),
		Locale:    settings.Locale,
		Version:   version,
		StartView: view,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("storefront: %w", err)
	}
	return nil
}
