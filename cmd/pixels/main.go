// pixels - command-line front end for the region abstraction and negate
// transforms served by pixels-mcp.
package main

import (
	"context"
	"os"

	"github.com/ironsheep/pixels-mcp/internal/cli"
)

func main() {
	ctx, stop := cli.NotifyContext(context.Background())
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
