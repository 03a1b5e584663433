package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rshade/esgfocus/internal/cli"
	"github.com/rshade/esgfocus/pkg/version"
)

func run(ctx context.Context) error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
