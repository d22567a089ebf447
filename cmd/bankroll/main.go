package main

import (
	"os"

	"github.com/Ronney221/Bankroll-Buddy/cmd/bankroll/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
