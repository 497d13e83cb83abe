// Package main is the stdio entry point for the lspcore language server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/lspcore/internal/config"
	"github.com/dshills/lspcore/internal/logging"
	"github.com/dshills/lspcore/internal/script"
	"github.com/dshills/lspcore/internal/server"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "path to lspcore.toml")
		logFile     = flag.String("log-file", "", "log destination (default stderr)")
		logLevel    = flag.String("log-level", "", "debug, info, warn, or error")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("lspcore %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up logging: %v\n", err)
		return 1
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	srv := server.New(
		server.WithConfig(cfg),
		server.WithLogger(logger),
	)
	registerDemoHandlers(srv)

	// Handler scripts extend the registry before the client connects.
	if cfg.Script.Enabled {
		engine := script.NewEngine(srv.Registry(), logger)
		defer engine.Close()
		for _, path := range cfg.Script.Paths {
			if err := engine.LoadFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		}
	}

	// Config changes apply the trace value to the live server; the log
	// level and other fields keep their startup values.
	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath, logger)
		if err != nil {
			logger.Warn("config watcher unavailable", "error", err)
		} else {
			defer watcher.Close()
			watcher.Subscribe(func(next config.Config) {
				srv.Client().SetTrace(next.TraceValue())
			})
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		logger.Info("signal received, shutting down")
		cancel()
	}()

	logger.Info("lspcore starting", "version", version,
		"requestThreads", cfg.Pools.RequestThreads,
		"workerThreads", cfg.Pools.WorkerThreads,
	)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", "error", err)
		return 1
	}
	return srv.ExitCode()
}
