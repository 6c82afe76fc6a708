package main

import (
	"fmt"
	"os"

	"github.com/vuer-ai/vuer-split/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "vuer-split:", err)
		os.Exit(1)
	}
}
