package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/PraloyG18/Banking-Application/internal/export"
)

func newStatementCommand() *cobra.Command {
	var dir, format string

	cmd := &cobra.Command{
		Use:   "statement <account>",
		Short: "Show an account's transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openBank(dir)
			if err != nil {
				return err
			}

			recs, err := svc.GetStatement(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				return export.WriteStatement(os.Stdout, recs)
			case "table":
				for _, rec := range recs {
					fmt.Printf("%s  %-12s  %12s  %s\n",
						rec.Timestamp.Format(time.RFC3339), rec.Type, rec.Amount.StringFixed(2), rec.Note)
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q (want table or csv)", format)
			}
		},
	}

	dataDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&format, "format", "table", "output format (table or csv)")

	return cmd
}
