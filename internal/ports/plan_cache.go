package ports

import (
	"context"
	"shipment-routing-service/internal/domain"
)

// Optional memoization of planned routes, keyed by the planning inputs.
type PlanCache interface {
	// Return the cached route and whether it was found.
	Get(ctx context.Context, key string) (*domain.Route, bool, error)
	Put(ctx context.Context, key string, route *domain.Route) error
}
