package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTransferCommand() *cobra.Command {
	var dir, note string

	cmd := &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Transfer funds between two accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			svc, cfg, err := openBank(dir)
			if err != nil {
				return err
			}

			src, dst, err := svc.Transfer(args[0], args[1], amount, note)
			if err != nil {
				return err
			}

			if err := saveBank(dir, cfg, svc); err != nil {
				return err
			}

			fmt.Printf("Transferred %s from %s (balance %s) to %s (balance %s)\n",
				amount, src.Number, src.Balance, dst.Number, dst.Balance)
			return nil
		},
	}

	dataDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&note, "note", "", "free-text note on the transaction")

	return cmd
}
