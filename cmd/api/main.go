// @title Place Between API
// @description Today-Set selection and points engine for the "Place Between" app
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/placebetween/internal/api"
	"github.com/limbo/placebetween/internal/app"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/cleanup"
	"github.com/limbo/placebetween/pkg/config"
	jwtservice "github.com/limbo/placebetween/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.New()
	deps, err := app.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatal("building services error: " + err.Error())
	}
	defer cleanup.CleanUp()

	jwtService := jwtservice.New(cfg.JWTSecret)
	if !jwtService.Verifying() {
		logger.Warn("JWT secret is empty, tokens are accepted without signature checks")
	}
	opts := &api.ServicesList{
		EngineService: deps.Engine,
		MirrorService: deps.Mirror,
		JwtService:    jwtService,
		Logger:        logger,
	}
	// leaves room for the local writes after a slow remote call
	opts.HandlerTimeout = cfg.RemoteTimeout + 5*time.Second
	serv := api.New(opts)
	if err := serv.Run(ctx, cfg.APIAddress); err != nil {
		logger.Error("server error: " + err.Error())
	}
}
