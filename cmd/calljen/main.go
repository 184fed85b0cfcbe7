// Command calljen prints and generates families of generic call wrappers.
//
//	calljen calls                 # reflect-style wrappers to stdout
//	calljen invokes               # cast-style wrappers to stdout
//	calljen generate              # write targets from calljen.yaml
//	calljen generate --verify     # fail if generated files are stale
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
