package main

import (
	"os"

	"github.com/DjordjeVuckovic/letter-rdp/cmd/rdp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
