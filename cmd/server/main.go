package main

import (
	"github.com/go-redis/redis/v8"

	"github.com/GitPiyusha/flask-microblog/internal/application/services"
	"github.com/GitPiyusha/flask-microblog/internal/config"
	"github.com/GitPiyusha/flask-microblog/internal/delivery/web"
	"github.com/GitPiyusha/flask-microblog/internal/infrastructure"
	"github.com/GitPiyusha/flask-microblog/internal/infrastructure/db/gormdb"
	"github.com/GitPiyusha/flask-microblog/internal/logging"
	"github.com/GitPiyusha/flask-microblog/internal/session"
)

func main() {
	cfg := config.Load()
	logger := logging.New("microblog")

	db, err := gormdb.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := gormdb.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions = session.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}), cfg.SessionTTL)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis session store")
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		logger.Info().Msg("using in-memory session store")
	}

	var mailer infrastructure.Mailer
	if cfg.SendgridAPIKey != "" {
		mailer = infrastructure.NewSendGridMailer(cfg.SendgridAPIKey, cfg.MailSender)
	} else {
		mailer = infrastructure.NewLogMailer(logger)
	}

	resetTokens := infrastructure.NewResetTokenService(cfg.SecretKey, cfg.ResetTokenTTL)

	userRepo := gormdb.NewUserRepository(db)
	followRepo := gormdb.NewFollowRepository(db)
	postRepo := gormdb.NewPostRepository(db)

	userService := services.NewUserService(userRepo, resetTokens, mailer, cfg.BaseURL, logger)
	followService := services.NewFollowService(followRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo)
	feedService := services.NewFeedService(postRepo)

	handler := web.NewHandler(userService, followService, postService, feedService, sessions, cfg.SessionTTL, logger)
	auth := web.NewAuthMiddleware(sessions, userService, logger)

	e := web.NewRouter(handler, auth, logger)

	logger.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
	if err := e.Start(cfg.HTTPAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
