package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pathway-dev/pathway/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		routes string
		region string
		addr   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the route inspector",
		Long: `Start the route inspector server.

The inspector serves the route table over HTTP and rebuilds it
whenever the definition file changes on disk.

Endpoints:
  GET /routes            the route table as JSON
  GET /match?path=...    resolve a path
  GET /assemble?name=... build a path
  GET /metrics           Prometheus metrics
  GET /ws                live table updates over WebSocket

Examples:
  pathway serve --routes routes.yaml
  pathway serve --routes routes.yaml --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(routes, region, addr)
		},
	}

	cmd.Flags().StringVarP(&routes, "routes", "r", "routes.yaml", "Route definition file or s3:// URL")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region for s3:// sources")
	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:8520", "Listen address")

	return cmd
}

func runServe(routes, region, addr string) error {
	src, err := sourceFromArg(routes, region)
	if err != nil {
		return err
	}

	// Only local files can be watched; S3 sources load once.
	var watch []string
	if !strings.HasPrefix(routes, "s3://") {
		watch = []string{routes}
	} else {
		warn("s3 sources are not watched; the table loads once at startup")
	}

	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	server := dev.NewServer(dev.ServerConfig{
		Addr:   addr,
		Source: src,
		Watch:  watch,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	success("inspector on http://%s", addr)
	err = server.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
