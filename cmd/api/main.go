// @title        Auth System API
// @version      1.0
// @description  User, role and JWT authentication microservice.
// @BasePath     /
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/diceprojects/auth-system/internal/api"
	"github.com/diceprojects/auth-system/internal/core/service"
	"github.com/diceprojects/auth-system/internal/infrastructure/config"
	"github.com/diceprojects/auth-system/internal/infrastructure/configclient"
	"github.com/diceprojects/auth-system/internal/infrastructure/db/mongo"
	"github.com/diceprojects/auth-system/internal/infrastructure/db/redis"
	"github.com/diceprojects/auth-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongo.NewUserRepository(db)
	roleRepo := mongo.NewRoleRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := roleRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("role indexes failed")
	}

	params := configclient.New(cfg.ConfigServiceURL, nil)
	limiter := redis.NewLoginLimiter(rdb, cfg.Login.MaxFailures, time.Duration(cfg.Login.WindowMinutes)*time.Minute)

	// --- Core services ---
	statusResolver := service.NewStatusResolver(params)
	roleService := service.NewRoleService(roleRepo, statusResolver, log)
	userService := service.NewUserService(userRepo, roleService, statusResolver, log)

	tokenService, err := service.NewTokenService(ctx, userService, params, log)
	if err != nil {
		log.Fatal().Err(err).Msg("token service bootstrap failed")
	}

	authService := service.NewAuthService(userRepo, tokenService, limiter, log)

	if err := service.NewInitializer(userService, roleService, log).Run(ctx); err != nil {
		log.Warn().Err(err).Msg("default data initialization failed")
	}

	// --- HTTP ---
	e := api.NewRouter(api.Services{
		Auth:   authService,
		Users:  userService,
		Roles:  roleService,
		Tokens: tokenService,
	}, db, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
