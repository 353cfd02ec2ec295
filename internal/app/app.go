package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-timesheet/internal/config"
	"go-timesheet/internal/database"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/shared/connection"
)

const connectRetries = 5

// App holds the wired process-wide dependencies.
type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

// BuildApp connects storage, runs migrations and registers every module's
// routes. Redis being down only disables the report cache.
func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(
		cfg.Database.DSN(),
		connectRetries,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		connectRetries,
	)
	if err != nil {
		logger.Warn("redis unavailable, report caching disabled", zap.Error(err))
		rdb = nil
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowOrigins))

	app := &App{
		Config: cfg,
		Router: router,
		DB:     db,
		SQLDB:  sqlDB,
		Redis:  rdb,
		Logger: logger,
	}

	registerModules(app)
	return app, nil
}
