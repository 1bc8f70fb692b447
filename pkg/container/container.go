package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"selleradmin-backend/internal/config"
	infraCache "selleradmin-backend/internal/infrastructure/cache"
	"selleradmin-backend/internal/infrastructure/database"
	"selleradmin-backend/pkg/cache"
	"selleradmin-backend/pkg/jwt"

	"selleradmin-backend/internal/domains/account"
	accountHandler "selleradmin-backend/internal/domains/account/handler"
	accountRepo "selleradmin-backend/internal/domains/account/repository"
	accountService "selleradmin-backend/internal/domains/account/service"

	"selleradmin-backend/internal/domains/seller"
	sellerHandler "selleradmin-backend/internal/domains/seller/handler"
	sellerRepo "selleradmin-backend/internal/domains/seller/repository"
	sellerService "selleradmin-backend/internal/domains/seller/service"
)

// Container wires the full dependency graph: config, infrastructure,
// repositories, services and handlers, in that order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AccountRepo account.Repository
	SellerRepo  seller.Repository

	AccountService account.Service
	SellerService  seller.Service

	AccountHandler *accountHandler.AccountHandler
	SellerHandler  *sellerHandler.SellerHandler
}

// NewContainer builds the application. Each layer only sees the layers
// beneath it, so initialization order matters.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("configuration loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(context.Background()); err != nil {
		// The cache is an optimization, not a dependency; reads fall
		// back to the database when it is down.
		log.Warn().Err(err).Msg("redis unavailable, continuing without warm cache")
	} else {
		log.Info().Msg("redis connected")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AccountRepo = accountRepo.NewPostgresRepository(pool)
	c.SellerRepo = sellerRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.JWTManager)
	c.SellerService = sellerService.NewSellerService(c.SellerRepo, c.Cache)
}

func (c *Container) initHandlers() {
	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.SellerHandler = sellerHandler.NewSellerHandler(c.SellerService, c.AccountService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}

	log.Info().Msg("container cleanup completed")
}
