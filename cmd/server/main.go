package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/config"
	"github.com/kazakovdmitriy/go-idioms/internal/logger"
	"github.com/kazakovdmitriy/go-idioms/internal/server"
)

func main() {
	cfg := config.ParseServerConfig(os.Args[1:])

	zlog, err := logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger initialization error: %v", err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog); err != nil {
		zlog.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.ServerFlags, zlog *zap.Logger) error {
	app, err := server.NewApp(cfg, zlog)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run()
}
