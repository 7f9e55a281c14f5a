package ports

// Read-only symmetric distance lookup between two location ids.
type DistanceIndex interface {
	// Return the distance between two locations. Fails with errs.ErrOutOfRange
	// when either location is outside the table.
	Distance(a, b int) (float64, error)
}

// Maps an item's destination to a location id usable by a DistanceIndex.
type LocationResolver interface {
	// Return the location of the item. Item id 0 resolves to the hub.
	LocationFor(itemID int) (int, error)
}
