package main

import (
	"context"
	"log"
	"os"

	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/logger"
	"github.com/agenthands/wardrobe/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, cfgErr := config.Load(cfgPath)
	if cfgErr != nil {
		cfg = &config.Config{}
	}
	cfg.ApplyEnv()
	cfg.ApplyDefaults()

	lg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Sync()

	if envErr != nil {
		lg.Info("no .env file found, using environment")
	}
	if cfgErr != nil {
		lg.Warn("could not load config file, using defaults", "path", cfgPath, "error", cfgErr)
	}
	if cfg.Log.Mode == "prod" || cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, closeFn, err := server.Build(context.Background(), cfg, lg)
	if err != nil {
		lg.Fatal("failed to build server", "error", err)
	}
	defer closeFn()

	lg.Info("starting server", "port", cfg.Server.Port, "catalog", cfg.Catalog.Driver, "llm_provider", cfg.LLM.Provider)
	if err := srv.SetupRouter().Run(":" + cfg.Server.Port); err != nil {
		lg.Error("server stopped", "error", err)
	}
}
