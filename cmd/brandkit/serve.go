// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/history"
	"github.com/brandkit/brandkit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the generation pipeline over HTTP: profile management,
ideas, posts, plans, model listing, and history search. The server
reuses the same configuration, credential lookup, and history store as
the CLI commands.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	ctx := context.Background()
	stack := newStack(ctx)
	defer stack.Close()

	if addr == "" {
		addr = stack.cfg.Server.Addr
	}

	opts := server.Options{
		Profiles:  stack.profiles,
		Generator: stack.svc,
		Session:   stack.session,
	}
	// A nil *gemini.Client must not become a non-nil Catalog interface.
	if stack.client != nil {
		opts.Catalog = stack.client
	}

	hist, err := history.NewStore(stack.cfg.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
	} else {
		defer hist.Close()
		opts.Recorder = hist
	}

	return server.New(opts).Run(addr)
}

func init() {
	serveCmd.Flags().String("addr", "", `listen address (default from config, ":8080")`)

	rootCmd.AddCommand(serveCmd)
}
