package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	release "github.com/polkashop/polka/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the polka version",
	Long: `Print the running version.

A cached release check may add an update notice; --check asks GitHub
directly instead of trusting the cache.`,
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("polka %s\n", version)

		if check, _ := cmd.Flags().GetBool("check"); check {
			return checkRelease()
		}

		// Reuse the storefront's cached check when it is still fresh,
		// without touching the network.
		if entry, err := release.LoadCache(); err == nil && release.IsCacheValid(entry, version) && entry.HasUpdate {
			printUpdateNotice(entry.LatestVersion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("check", false, "Query GitHub for the latest release")
}

func checkRelease() error {
	result := release.Check(version)
	if result.Error != nil {
		return fmt.Errorf("release check: %w", result.Error)
	}
	switch {
	case result.LatestVersion == "":
		fmt.Println("no published release to compare against")
	case result.HasUpdate:
		printUpdateNotice(result.LatestVersion)
	default:
		fmt.Println("up to date")
	}
	return nil
}

func printUpdateNotice(latest string) {
	fmt.Printf("update available: %s\n", latest)
	fmt.Printf("  %s\n", release.UpdateCommand)
}
