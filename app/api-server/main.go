package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Darpan-10/HUMAN-API/config"
	"github.com/Darpan-10/HUMAN-API/internal/api/handlers"
	"github.com/Darpan-10/HUMAN-API/internal/api/middleware"
	"github.com/Darpan-10/HUMAN-API/internal/api/routes"
	"github.com/Darpan-10/HUMAN-API/internal/cache"
	"github.com/Darpan-10/HUMAN-API/internal/logger"
	mongorepo "github.com/Darpan-10/HUMAN-API/internal/repositories/mongo"
	"github.com/Darpan-10/HUMAN-API/internal/services"
	"github.com/Darpan-10/HUMAN-API/internal/workers"
)

func main() {
	_ = godotenv.Load()

	settings := config.LoadSettings()
	l := logger.New()

	// Document store
	client, err := config.InitMongo(settings.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(settings.DatabaseName)

	if err := config.EnsureIndexes(db); err != nil {
		l.WithError(err).Warn("index creation issue")
	}
	l.Info("MongoDB connected")

	// Suggestion cache is optional; run without it if Redis is absent.
	var suggestionCache cache.Cache
	if settings.RedisAddr != "" {
		rdb, err := config.InitRedis(settings.RedisAddr)
		if err != nil {
			l.WithError(err).Warn("Redis unavailable, suggestion cache disabled")
		} else {
			suggestionCache = cache.NewRedisCache(rdb)
			l.Info("Redis connected")
		}
	}

	// Repositories and services
	userRepo := mongorepo.NewUserRepo(db)
	intentRepo := mongorepo.NewIntentRepo(db)

	userSvc := services.NewUserService(userRepo, suggestionCache)
	intentSvc := services.NewIntentService(intentRepo, userRepo, suggestionCache, settings.IntentTTL)

	matchCfg := services.DefaultMatchConfig()
	matchCfg.MinScore = settings.MinMatchScore
	matchCfg.MaxLimit = settings.MaxCandidates
	matchSvc := services.NewMatchService(userRepo, intentRepo, suggestionCache, l, matchCfg)

	// Background expiry sweep
	expirer := &workers.IntentExpirer{Intents: intentRepo, Logger: l}
	if err := expirer.Start(context.Background()); err != nil {
		log.Fatalf("intent expirer start error: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	r.Use(middleware.CORS(settings.CORSOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:        handlers.NewAuthHandler(userSvc, settings.SecretKey, settings.AccessTokenTTL),
		Profile:     handlers.NewProfileHandler(userSvc),
		Intent:      handlers.NewIntentHandler(intentSvc),
		Suggestions: handlers.NewSuggestionHandler(matchSvc),
		JWTSecret:   settings.SecretKey,
	})

	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
