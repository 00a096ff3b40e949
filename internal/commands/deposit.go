package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDepositCommand() *cobra.Command {
	var dir, note string

	cmd := &cobra.Command{
		Use:   "deposit <account> <amount>",
		Short: "Deposit funds into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			svc, cfg, err := openBank(dir)
			if err != nil {
				return err
			}

			acct, err := svc.Deposit(args[0], amount, note)
			if err != nil {
				return err
			}

			if err := saveBank(dir, cfg, svc); err != nil {
				return err
			}

			fmt.Printf("Deposited %s into %s (balance %s)\n", amount, acct.Number, acct.Balance)
			return nil
		},
	}

	dataDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&note, "note", "", "free-text note on the transaction")

	return cmd
}
