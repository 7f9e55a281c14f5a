package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"shipment-routing-service/internal/config"
	"shipment-routing-service/internal/pkg/errs"
	"shipment-routing-service/internal/services"
)

func itemCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "item <id>",
		Short: "Print the status of one item, at end of day or at --at",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errs.NewQueryError(errs.NewInvalidInputErrorWithCause("item id", err))
			}

			a, err := runDay(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			day := a.Manifest.Day()
			t := day.Add(24*time.Hour - time.Nanosecond)
			if at != "" {
				if t, err = config.ParseClock(day, at); err != nil {
					return fmt.Errorf("item: %w", errs.NewQueryError(err))
				}
			}

			st, err := a.Depot.StatusAt(id, t)
			if err != nil {
				return err
			}
			return printStatuses(cmd.OutOrStdout(), []services.ItemStatus{st})
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "time of day, HH:MM[:SS] (default end of day)")
	return cmd
}
