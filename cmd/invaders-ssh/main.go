package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"invaders/game"
	"invaders/term"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	addr := flag.String("addr", "", "listen address (overrides ssh.addr, or set PORT env var)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	switch {
	case *addr != "":
		config.SSH.Addr = *addr
	case os.Getenv("PORT") != "":
		config.SSH.Addr = ":" + os.Getenv("PORT")
	}

	logger, err := game.NewLogger(config.LogLevel, config.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	created, err := term.EnsureHostKey(config.SSH.HostKey)
	if err != nil {
		logger.Fatal("host key error", zap.Error(err))
	}
	if created {
		logger.Info("generated new host key", zap.String("path", config.SSH.HostKey))
	}

	assets, err := game.LoadAssetsFile(config.Sprites)
	if err != nil {
		logger.Fatal("failed to load sprites", zap.String("path", config.Sprites), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := term.NewServer(config, assets, logger)
	logger.Info("connect with: ssh -t -p <port> localhost", zap.String("addr", config.SSH.Addr))
	if err := server.Run(ctx); err != nil {
		logger.Fatal("SSH server error", zap.Error(err))
	}
}
