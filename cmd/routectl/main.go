package main

import (
	"os"

	"shipment-routing-service/cmd/routectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
