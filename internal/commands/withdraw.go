package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWithdrawCommand() *cobra.Command {
	var dir, note string

	cmd := &cobra.Command{
		Use:   "withdraw <account> <amount>",
		Short: "Withdraw funds from an account",
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

			acct, err := svc.Withdraw(args[0], amount, note)
			if err != nil {
				return err
			}

			if err := saveBank(dir, cfg, svc); err != nil {
				return err
			}

			fmt.Printf("Withdrew %s from %s (balance %s)\n", amount, acct.Number, acct.Balance)
			return nil
		},
	}

	dataDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&note, "note", "", "free-text note on the transaction")

	return cmd
}
