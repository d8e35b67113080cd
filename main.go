// Boomerang accepts typed units of work over HTTP or MCP, dispatches each to
// a registered processor, and persists inputs and results in SQLite.
//
// Usage:
//
//	boomerang               serve HTTP (default)
//	boomerang -mcp          serve MCP over stdio
//	boomerang add-user      interactively create a basic-auth account
//	boomerang setup-admin   create the admin account from APP_USERNAME/APP_PASSWORD
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	flag.Parse()

	cfg := loadConfig()
	store, err := OpenStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	switch flag.Arg(0) {
	case "add-user":
		if err := runAddUser(store); err != nil {
			log.Fatalf("add-user: %v", err)
		}
		return
	case "setup-admin":
		if err := runSetupAdmin(store); err != nil {
			log.Fatalf("setup-admin: %v", err)
		}
		return
	case "":
		// fall through to serving
	default:
		log.Fatalf("unknown command %q", flag.Arg(0))
	}

	registry := NewRegistry()
	registerBuiltins(registry, cfg)
	log.Printf("registered processors: %v", registry.Types())

	service := NewService(store, registry)
	runner := NewRunner(service, cfg.Workers, cfg.QueueSize)

	if *mcpMode {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := runMCP(ctx, service, runner); err != nil {
			log.Fatalf("mcp server error: %v", err)
		}
		runner.Stop()
		return
	}

	server := NewServer(cfg, store, service, runner)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
