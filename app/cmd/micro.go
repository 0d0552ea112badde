package cmd

import (
	"context"
	"time"

	"github.com/pathfinder/pkg/cache"
	"github.com/pathfinder/pkg/config"
	"github.com/pathfinder/pkg/database"
	"github.com/pathfinder/pkg/domains/auth"
	"github.com/pathfinder/pkg/domains/media"
	"github.com/pathfinder/pkg/logger"
	"github.com/pathfinder/pkg/mailer"
	"github.com/pathfinder/pkg/server"
	"github.com/pathfinder/pkg/utils"
)

func StartApp() {
	utils.LoadEnv()
	config := config.InitConfig()
	log := logger.New(config.Log)

	database.InitDB(config.Database)

	deps := server.Dependencies{
		DB:        database.DBClient(),
		Cache:     cache.Noop{},
		Generator: media.Disabled{},
		Log:       log,
	}

	// Verification still works without SMTP; emails are skipped and logged.
	var notifier auth.Notifier
	if m, err := mailer.NewMailer(config.Mail); err != nil {
		log.Warn().Err(err).Msg("mailer disabled")
	} else {
		notifier = m
	}
	deps.Notifier = notifier

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if config.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, config.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", config.Redis.Addr).Msg("redis unavailable, reputation cache disabled")
		} else {
			defer redisCache.Close()
			deps.Cache = redisCache
		}
	}

	if config.Media.APIKey != "" {
		generator, err := media.NewGenAI(ctx, config.Media)
		if err != nil {
			log.Warn().Err(err).Msg("media generation disabled")
		} else {
			deps.Generator = generator
		}
	}

	server.LaunchHttpServer(*config, deps)
}
