package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"idealink-backend/internal/config"
	infraCache "idealink-backend/internal/infrastructure/cache"
	"idealink-backend/internal/infrastructure/database"
	"idealink-backend/internal/infrastructure/queue"
	"idealink-backend/pkg/cache"
	"idealink-backend/pkg/jwt"

	"idealink-backend/internal/domains/application"
	appHandler "idealink-backend/internal/domains/application/handler"
	appRepo "idealink-backend/internal/domains/application/repository"
	appService "idealink-backend/internal/domains/application/service"
	"idealink-backend/internal/domains/idea"
	ideaHandler "idealink-backend/internal/domains/idea/handler"
	ideaRepo "idealink-backend/internal/domains/idea/repository"
	ideaService "idealink-backend/internal/domains/idea/service"
	"idealink-backend/internal/domains/user"
	userHandler "idealink-backend/internal/domains/user/handler"
	userRepo "idealink-backend/internal/domains/user/repository"
	userService "idealink-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the application lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Enqueuer   *queue.Client

	// Repositories
	UserRepo        user.Repository
	IdeaRepo        idea.Repository
	ApplicationRepo application.Repository

	// Services
	UserService        user.Service
	IdeaService        idea.Service
	ApplicationService application.Service

	// Handlers
	UserHandler        *userHandler.UserHandler
	IdeaHandler        *ideaHandler.IdeaHandler
	ApplicationHandler *appHandler.ApplicationHandler
}

// NewContainer builds the whole dependency graph, in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Config first; it depends on nothing.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Database
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
	log.Println("✅ Database connected")

	// Redis cache. A Redis outage is non-critical: repositories degrade to
	// plain DB reads.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TokenExpiry)*time.Hour,
	)

	// Task queue client (shares the Redis instance with the cache).
	c.Enqueuer = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool, c.Cache)
	c.IdeaRepo = ideaRepo.NewPostgresRepository(pool, c.Cache)
	c.ApplicationRepo = appRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.IdeaService = ideaService.NewIdeaService(c.IdeaRepo)
	c.ApplicationService = appService.NewApplicationService(
		c.ApplicationRepo,
		c.IdeaRepo, // cross-domain: idea existence + author checks
		c.Enqueuer,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.JWTManager)
	c.IdeaHandler = ideaHandler.NewIdeaHandler(c.IdeaService)
	c.ApplicationHandler = appHandler.NewApplicationHandler(c.ApplicationService)
}

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Enqueuer != nil {
		if err := c.Enqueuer.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
