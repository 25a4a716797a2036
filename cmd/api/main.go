package main

import (
	"context"
	"fmt"
	"os"

	_ "billing_core/docs"
	"billing_core/internal/adapter/http/routes"
	"billing_core/internal/config"
	"billing_core/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Billing Core API
// @version         1.0
// @description     Billing statements, revenue rollups and budgets backed by DynamoDB and the analytics warehouse.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(context.Background(), cfg, log); err != nil {
		log.Fatal("[api][main] server stopped", zap.Error(err))
	}
}
