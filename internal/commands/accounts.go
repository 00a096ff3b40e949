package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PraloyG18/Banking-Application/internal/export"
	"github.com/PraloyG18/Banking-Application/internal/model"
)

func newAccountsCommand() *cobra.Command {
	var dir, format string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List all accounts ordered by account number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openBank(dir)
			if err != nil {
				return err
			}
			return printAccounts(svc.ListAccounts(), format)
		},
	}

	dataDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&format, "format", "table", "output format (table or csv)")

	return cmd
}

func printAccounts(accts []model.Account, format string) error {
	switch format {
	case "csv":
		return export.WriteAccounts(os.Stdout, accts)
	case "table":
		for _, acct := range accts {
			fmt.Printf("%s  %-8s  %12s\n", acct.Number, acct.Type, acct.Balance.StringFixed(2))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or csv)", format)
	}
}
