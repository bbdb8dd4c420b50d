package main

import (
	"os"

	"github.com/skillswap-app/skillswap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
