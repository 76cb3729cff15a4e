package container

import (
	"context"
	"fmt"
	"time"

	"pet-registry-backend/internal/config"
	infraCache "pet-registry-backend/internal/infrastructure/cache"
	"pet-registry-backend/internal/infrastructure/database"
	"pet-registry-backend/pkg/cache"
	"pet-registry-backend/pkg/logger"

	"pet-registry-backend/internal/domains/cat"
	catHandler "pet-registry-backend/internal/domains/cat/handler"
	catRepo "pet-registry-backend/internal/domains/cat/repository"
	catService "pet-registry-backend/internal/domains/cat/service"
	"pet-registry-backend/internal/domains/owner"
	ownerHandler "pet-registry-backend/internal/domains/owner/handler"
	ownerRepo "pet-registry-backend/internal/domains/owner/repository"
	ownerService "pet-registry-backend/internal/domains/owner/service"
)

// Container is the root of the dependency graph: config, infrastructure,
// then repositories, services and handlers per domain. Everything here is a
// singleton for the lifetime of the process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	OwnerRepo    owner.Repository
	OwnerService owner.Service
	OwnerHandler *ownerHandler.OwnerHandler

	CatRepo    cat.Repository
	CatService cat.Service
	CatHandler *catHandler.CatHandler
}

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, database, cache, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// A missing Redis is non-critical: the repositories degrade to plain
	// database reads on cache misses.
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis connection failed (non-critical)", err)
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.OwnerRepo = ownerRepo.NewPostgresRepository(pool, c.Cache)
	c.CatRepo = catRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.OwnerService = ownerService.NewOwnerService(c.OwnerRepo)
	c.CatService = catService.NewCatService(c.CatRepo)
}

func (c *Container) initHandlers() {
	c.OwnerHandler = ownerHandler.NewOwnerHandler(c.OwnerService)
	c.CatHandler = catHandler.NewCatHandler(c.CatService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", err)
		}
	}
}
