package commands

import (
	"context"

	"github.com/spf13/cobra"

	"shipment-routing-service/internal/app"
	"shipment-routing-service/internal/config"
)

var (
	cfg      config.Config
	manifest string
	redisURL string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "routectl",
		Short:        "Plan, simulate and inspect a delivery service day",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg = config.Load()
			if manifest != "" {
				cfg.ManifestPath = manifest
			}
			if redisURL != "" {
				cfg.RedisURL = redisURL
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&manifest, "manifest", "m", "", "manifest JSON path (default $MANIFEST_PATH)")
	root.PersistentFlags().StringVar(&redisURL, "redis", "", "plan cache URL, e.g. redis://127.0.0.1:6379/0")

	root.AddCommand(reportCmd(), snapshotCmd(), itemCmd(), seedCmd(), deliveriesCmd())
	return root.Execute()
}

// runDay plans and simulates the configured service day.
func runDay(ctx context.Context) (*app.App, error) {
	return app.Open(ctx, cfg)
}
