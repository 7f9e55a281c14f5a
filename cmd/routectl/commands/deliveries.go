package commands

import (
	"github.com/spf13/cobra"

	"shipment-routing-service/internal/adapters/repositories"
	"shipment-routing-service/internal/platform/db"
)

func deliveriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliveries",
		Short: "List the delivery timestamps recorded by the last run",
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

			deliveries, err := repositories.NewSQLStore(conn, dialect).ListDeliveries(cmd.Context())
			if err != nil {
				return err
			}
			return printDeliveries(cmd.OutOrStdout(), deliveries)
		},
	}
	return cmd
}
