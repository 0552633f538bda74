package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"invaders/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	scale := flag.Int("scale", 0, "window pixels per buffer pixel (overrides config)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *scale > 0 {
		config.Scale = *scale
	}

	logger, err := game.NewLogger(config.LogLevel, config.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	assets, err := game.LoadAssetsFile(config.Sprites)
	if err != nil {
		logger.Fatal("failed to load sprites", zap.String("path", config.Sprites), zap.Error(err))
	}

	g, err := NewGame(config, assets, logger)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}

	ebiten.SetWindowSize(config.Width*config.Scale, config.Height*config.Scale)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(config.TPS)

	logger.Info("starting",
		zap.Int("width", config.Width),
		zap.Int("height", config.Height),
		zap.Int("tps", config.TPS))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", zap.Error(err))
	}
}
