package ports

import (
	"context"
	"shipment-routing-service/internal/domain"
)

// Port: a boundary for retrieving Item entities from a data source.
type ItemRepository interface {
	// Retrieve all items in ascending id order.
	ListItems(ctx context.Context) ([]*domain.Item, error)
}

// Port: static location data (address table and distance table).
type LocationRepository interface {
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	// Return the distance table as rows; undefined cells are NaN.
	LoadDistances(ctx context.Context) ([][]float64, error)
}

// Port: persists delivery timestamps produced by simulation.
type DeliveryRecorder interface {
	SaveDeliveries(ctx context.Context, deliveries []domain.Delivery) error
}
