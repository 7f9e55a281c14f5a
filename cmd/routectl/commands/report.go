package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the service day and print the end-of-day status of every item",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runDay(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if err := printStatuses(out, a.Depot.EndOfDay()); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return printVehicles(out, a.Depot.Vehicles(), a.Depot.TotalDistance())
		},
	}
	return cmd
}
