// Command takeoff computes construction material quantities.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ChicagoDave/takeoff/internal/commands"
)

func main() {
	if err := commands.NewRootCmd(os.Getenv).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
