package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PraloyG18/Banking-Application/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bankapp",
		Short:   "In-memory banking ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newOpenCommand(),
		newDepositCommand(),
		newWithdrawCommand(),
		newTransferCommand(),
		newStatementCommand(),
		newAccountsCommand(),
		newSearchCommand(),
	)

	return rootCmd
}
