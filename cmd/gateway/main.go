package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/adilkhan-sa/bluelink-gateway/config"
	"github.com/adilkhan-sa/bluelink-gateway/internal/app"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	// Local .env is optional
	_ = godotenv.Load()

	ctx := context.Background()
	log := logger.InitLogger(types.ServiceName, logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		os.Exit(1)
	}

	config.PrintConfig(cfg)

	if logger.ValidateLogLevel(cfg.Log.Level) {
		log = logger.InitLogger(types.ServiceName, cfg.Log.Level)
	}

	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	if err = application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
