package main

import (
	"os"

	"github.com/nexus-infinity/nixvet/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
