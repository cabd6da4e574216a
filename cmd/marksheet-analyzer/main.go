package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/marklytic/marksheet-analyzer/internal/analyzer"
	"github.com/marklytic/marksheet-analyzer/internal/config"
	"github.com/marklytic/marksheet-analyzer/internal/export"
	"github.com/marklytic/marksheet-analyzer/internal/server"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.Version = version

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if cfg.IsDebug() {
		log.Printf("Configuration: %s", cfg)
	}

	store, err := export.NewArtifactStore(cfg.ArtifactDirectory)
	if err != nil {
		log.Fatalf("Failed to create artifact store: %v", err)
	}

	svc := analyzer.NewService(cfg.MaxFileSize, store)
	srv := server.New(cfg, svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runServer(ctx, cancel, srv, cfg)
}

// runServer handles server execution with signal handling
func runServer(ctx context.Context, cancel context.CancelFunc, srv *server.Server, cfg *config.Config) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on http://%s", cfg.Address())
		serverErrCh <- srv.Run(ctx)
	}()

	select {
	case sig := <-signalCh:
		log.Printf("Received signal: %s", sig)
		log.Println("Initiating graceful shutdown...")
		cancel()

		if err := <-serverErrCh; err != nil {
			log.Printf("Server shutdown with error: %v", err)
			os.Exit(1)
		}

	case err := <-serverErrCh:
		if err != nil {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}

	log.Println("Server stopped successfully")
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("marksheet-analyzer %s\n", version)
	fmt.Printf("  build time: %s\n", buildTime)
	fmt.Printf("  git commit: %s\n", gitCommit)
	fmt.Printf("  go version: %s\n", runtime.Version())
	fmt.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
