// Package main is the entry point for the osadmin CLI.
//
// osadmin creates and administers projects and users on an OpenStack
// cloud, pairs users with projects through roles, and sets up a new
// project's private network and SSH access.
//
// For detailed usage information, run:
//
//	osadmin --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/osadmin/cmd/osadmin/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
