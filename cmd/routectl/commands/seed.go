package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipment-routing-service/internal/adapters/repositories"
	"shipment-routing-service/internal/platform/db"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Initialize the database and load the CSV tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.OpenFor(cfg.DBDriver, cfg.DBPath, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer conn.Close()

			dialect, err := repositories.DialectFor(cfg.DBDriver)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := repositories.InitSchema(ctx, conn); err != nil {
				return err
			}
			if err := repositories.SeedFromCSV(ctx, conn, dialect, cfg.ItemsCSV, cfg.AddressesCSV, cfg.DistancesCSV); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Seeding complete.")
			return nil
		},
	}
	return cmd
}
