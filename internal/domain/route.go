package domain

// Represents a single stop in a delivery route.
// LegDistance is the distance travelled from the previous stop (or the start).
type RouteStop struct {
	ItemID      int
	Location    int
	LegDistance float64
}

// Represents the planned visiting order for a single vehicle.
// A Route is the output of the routing algorithm and contains no side effects;
// TotalDistance equals the sum of the leg distances.
type Route struct {
	VehicleID     int
	Start         int
	Stops         []RouteStop
	TotalDistance float64
}

// Locations returns the location sequence of the route, starting at Start.
func (r *Route) Locations() []int {
	out := make([]int, 0, len(r.Stops)+1)
	out = append(out, r.Start)
	for _, s := range r.Stops {
		out = append(out, s.Location)
	}
	return out
}

// ItemIDs returns the items in visiting order.
func (r *Route) ItemIDs() []int {
	out := make([]int, 0, len(r.Stops))
	for _, s := range r.Stops {
		out = append(out, s.ItemID)
	}
	return out
}
