package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/soocke/quad-crop-go/app"
	"github.com/soocke/quad-crop-go/config"
	"github.com/soocke/quad-crop-go/debug"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON configuration file")
	imagePath := flag.String("image", "", "input image to edit; empty uses the embedded sample document")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger)
	}

	application := app.NewApp("Quad Crop", 900, 700, cfg, logger, *cfgPath, *imagePath)
	application.Start()
}
