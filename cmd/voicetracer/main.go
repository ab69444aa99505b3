// Command voicetracer analyzes documents from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/voicetracer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
