// Package bootstrap assembles the application: configuration, logging,
// infrastructure, dependency wiring, routing and lifecycle.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "reserveit/internal/handler/http"
	gormpersistence "reserveit/internal/infra/persistence/gorm"
	"reserveit/internal/infra/setup"
	"reserveit/internal/middleware"
	"reserveit/internal/service"
)

// Config holds settings loaded from the environment.
type Config struct {
	DBUser          string
	DBPassword      string
	DBHost          string
	DBPort          string
	DBName          string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ServerPort      string
	LogLevel        string
	AppEnv          string
	CORSOrigin      string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // env vars alone are fine

	cfg := &Config{
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBName:          os.Getenv("DB_NAME"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ServerPort:      os.Getenv("SERVER_PORT"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		AppEnv:          os.Getenv("APP_ENV"),
		CORSOrigin:      os.Getenv("CORS_ALLOWED_ORIGIN"),
		RateLimitMax:    100,
		RateLimitWindow: 1 * time.Second,
	}
	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	if cfg.DBHost == "" {
		cfg.DBHost = "127.0.0.1"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}
	if cfg.DBName == "" {
		cfg.DBName = "reserveit_db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3000"
	}
	if cfg.DBUser == "" {
		return nil, fmt.Errorf("environment variable DB_USER must be set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App holds the components of the running application.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	HTTPServer  *http.Server
}

// NewApp creates and wires all application components.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Info("Configuration loaded successfully")

	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	log.Info("Database initialized")

	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database migrated")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis client initialized")

	userRepo := gormpersistence.NewGormUserRepository(db)
	reservationRepo := gormpersistence.NewGormReservationRepository(db)

	authService := service.NewAuthService(userRepo)
	reservationService := service.NewReservationService(reservationRepo)

	authHandler := httpHandler.NewAuthHandler(authService)
	reservationHandler := httpHandler.NewReservationHandler(reservationService)
	roomHandler := httpHandler.NewRoomHandler()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(corsMiddleware(cfg.CORSOrigin))
	router.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))

	RegisterRoutes(router, authHandler, reservationHandler, roomHandler)
	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		HTTPServer:  httpServer,
	}, nil
}

// RegisterRoutes attaches the API routes to the router. List and read
// endpoints require no authentication; mutations authorize through the
// username carried in the request body.
func RegisterRoutes(router *gin.Engine, auth *httpHandler.AuthHandler, reservations *httpHandler.ReservationHandler, rooms *httpHandler.RoomHandler) {
	api := router.Group("/api")
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)
		api.GET("/health", httpHandler.Health)
		api.GET("/rooms", rooms.List)
		api.GET("/reservations", reservations.List)
		api.POST("/reservations", reservations.Create)
		api.PUT("/reservations/:id", reservations.Update)
		api.DELETE("/reservations/:id", reservations.Delete)
	}
}

// Start runs the HTTP server in a background goroutine.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown stops the HTTP server gracefully and closes the Redis and
// database connections.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		}
	}

	if err := setup.CloseDB(a.DB); err != nil {
		a.Log.Errorf("Error closing database connection: %v", err)
	}

	a.Log.Info("Application shutdown complete.")
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware returns a gin middleware that logs each request through
// the application logger.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			entry.Error(errorMessage)
		} else if statusCode >= 500 {
			entry.Error("Server error")
		} else if statusCode >= 400 {
			entry.Warn("Client error")
		} else {
			entry.Info("Request handled")
		}
	}
}
