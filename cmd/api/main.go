package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bamborapay/internal/config"
	"bamborapay/internal/database"
	"bamborapay/internal/middleware"
	"bamborapay/internal/modules/admin"
	"bamborapay/internal/modules/bambora"
	jwtsvc "bamborapay/internal/pkg/jwt"
	"bamborapay/internal/repository"
	"bamborapay/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatal(err)
	}
	defer logger.Log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	orderRepo := repository.NewOrderRepository(db)
	noteRepo := repository.NewOrderNoteRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	directoryRepo := repository.NewDirectoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 12*time.Hour)

	bamboraService := bambora.NewService(
		orderRepo,
		orderRepo,
		noteRepo,
		addressRepo,
		directoryRepo,
		settingsRepo,
		logger.Log,
		cfg.GatewayURL,
	)
	bamboraHandler := bambora.NewHandler(bamboraService, logger.Log, cfg.StoreURL)

	adminService := admin.NewService(settingsRepo, j, cfg.AdminPasswordHash, logger.Log)
	adminHandler := admin.NewHandler(adminService, logger.Log)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger.Log), gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		// public: gateway callbacks, checkout redirect, admin login
		bamboraHandler.RegisterRoutes(v1)
		adminHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			adminHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
