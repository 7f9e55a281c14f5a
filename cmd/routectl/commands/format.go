package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/services"
)

const clockLayout = "15:04:05"

func printStatuses(w io.Writer, statuses []services.ItemStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tADDRESS\tDEADLINE\tVEHICLE\tSTATUS\tDELIVERED")
	for _, st := range statuses {
		delivered := "-"
		if st.DeliveredAt != nil {
			delivered = st.DeliveredAt.Format(clockLayout)
		}
		vehicle := "-"
		if st.Item.VehicleID != 0 {
			vehicle = fmt.Sprint(st.Item.VehicleID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			st.Item.ItemID, st.Item.Address, st.Item.Deadline, vehicle, st.Status, delivered)
	}
	return tw.Flush()
}

func printVehicles(w io.Writer, vehicles []domain.Vehicle, total float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VEHICLE\tDEPARTS\tITEMS\tMILES")
	for _, v := range vehicles {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\n", v.VehicleID, v.DepartAt.Format(clockLayout), len(v.ItemIDs), v.DistanceTraveled)
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%.2f\n", total)
	return tw.Flush()
}

func printDeliveries(w io.Writer, deliveries []domain.Delivery) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tVEHICLE\tDELIVERED")
	for _, d := range deliveries {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", d.ItemID, d.VehicleID, d.DeliveredAt.Format(time.DateTime))
	}
	return tw.Flush()
}
