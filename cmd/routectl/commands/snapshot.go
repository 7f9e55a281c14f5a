package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipment-routing-service/internal/config"
)

func snapshotCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the status of every item at a time of day",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runDay(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			t, err := config.ParseClock(a.Manifest.Day(), at)
			if err != nil {
				return fmt.Errorf("snapshot: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status at %s\n", t.Format(clockLayout))
			return printStatuses(cmd.OutOrStdout(), a.Depot.AllStatusesAt(t))
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "time of day, HH:MM[:SS]")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
