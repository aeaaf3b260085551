package main

import (
	"fmt"
	"os"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
