package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCommand() *cobra.Command {
	var dir, name, email, accountType string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account for a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openBank(dir)
			if err != nil {
				return err
			}

			number, err := svc.OpenAccount(name, email, accountType)
			if err != nil {
				return err
			}

			if err := saveBank(dir, cfg, svc); err != nil {
				return err
			}

			fmt.Printf("Opened account %s\n", number)
			return nil
		},
	}

	dataDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&name, "name", "", "customer name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&email, "email", "", "customer email (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&accountType, "type", "savings", "account type (savings or current)")

	return cmd
}
