package commands

import (
	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var dir, format string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find accounts by customer name (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openBank(dir)
			if err != nil {
				return err
			}
			return printAccounts(svc.SearchAccountsByCustomerName(args[0]), format)
		},
	}

	dataDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&format, "format", "table", "output format (table or csv)")

	return cmd
}
