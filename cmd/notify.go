package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polkashop/polka/internal/output"
	"github.com/polkashop/polka/pkg/storefront"
)

var notifyCmd = &cobra.Command{
	Use:   "notify [message]...",
	Short: "Send a notification to every active brand",
	Long: `Send a plain-text notification to every active brand on the
marketplace. The message goes out exactly once; a failed send is
reported and retrying is left to the operator.

Examples:
  polka notify "Осенняя распродажа стартует в пятницу"
  polka notify --interactive`,
	GroupID: "admin",
	Args:    cobra.ArbitraryArgs,
	RunE:    runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)

	notifyCmd.Flags().BoolP("interactive", "i", false, "Compose the message in the storefront form")
}

func runNotify(cmd *cobra.Command, args []string) error {
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return launchStorefront(storefront.ViewBroadcast)
	}

	loc := newLocalizer()
	message := messageFromArgs(args)
	if message == "" {
		return errors.New(loc.T("broadcast_empty"))
	}

	if err := newClient().Broadcast(cmd.Context(), message); err != nil {
		output.Error("%s", loc.T("broadcast_failed"))
		return err
	}
	output.Success("%s", loc.T("broadcast_sent"))
	return nil
}

// messageFromArgs joins the positional arguments into one message, so
// quoting is optional on the command line.
func messageFromArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
