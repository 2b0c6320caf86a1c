package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"growhub/app/config"
	"growhub/app/driver/kratos"
	"growhub/app/driver/postgres"
	"growhub/app/driver/redis"
	"growhub/app/gateway"
	"growhub/app/port"
	"growhub/app/rest"
	"growhub/app/rest/handlers"
	"growhub/app/usecase"
	"growhub/app/utils/webhook"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	Redis          *goredis.Client
	ProviderClient *kratos.Client

	// Gateways
	ProviderGateway port.ProviderGateway

	// Repositories
	Users port.UserRepository
	Orgs  port.OrganizationRepository

	// Usecases
	IdentitySync port.IdentitySyncUsecase
	Strains      port.StrainUsecase
	Grows        port.GrowUsecase
	Environments port.EnvironmentUsecase
	Tasks        port.TaskUsecase
	Profiles     port.ProfileUsecase
	Activity     port.ActivityUsecase

	// Webhook intake
	Verifier *webhook.Verifier
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Drivers
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.Redis = redis.NewClient(cfg)

	container.ProviderClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider client: %w", err)
	}

	container.Verifier, err = webhook.NewVerifier(cfg.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize webhook verifier: %w", err)
	}

	// Repositories
	pool := container.DB.Pool()
	container.Users = postgres.NewUserRepository(pool, logger)
	container.Orgs = postgres.NewOrganizationRepository(pool, logger)
	strains := postgres.NewStrainRepository(pool, logger)
	grows := postgres.NewGrowRepository(pool, logger)
	plants := postgres.NewPlantRepository(pool, logger)
	environments := postgres.NewEnvironmentRepository(pool, logger)
	tasks := postgres.NewTaskRepository(pool, logger)

	// Gateways
	identityAdapter := kratos.NewIdentityAdapter(container.ProviderClient, logger)
	container.ProviderGateway = gateway.NewProviderGateway(identityAdapter, logger)

	dedupe := redis.NewEventDedupe(container.Redis, cfg.DedupeTTL, logger)

	// Usecases
	container.IdentitySync = usecase.NewIdentitySyncUseCase(
		container.Users, container.Orgs, container.ProviderGateway, dedupe, logger)
	container.Strains = usecase.NewStrainUseCase(strains, logger)
	container.Grows = usecase.NewGrowUseCase(grows, plants, environments, logger)
	container.Environments = usecase.NewEnvironmentUseCase(environments, logger)
	container.Tasks = usecase.NewTaskUseCase(tasks, grows, logger)
	container.Profiles = usecase.NewProfileUseCase(container.Users, logger)
	container.Activity = usecase.NewActivityUseCase(
		container.Users, container.Orgs, container.ProviderGateway, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:       c.Logger,
		Verifier:     c.Verifier,
		IdentitySync: c.IdentitySync,
		Strains:      c.Strains,
		Grows:        c.Grows,
		Environments: c.Environments,
		Tasks:        c.Tasks,
		Profiles:     c.Profiles,
		Activity:     c.Activity,
		Provider:     c.ProviderGateway,
		Users:        c.Users,
		ReadinessChecks: map[string]handlers.DependencyCheck{
			"database": c.DB.HealthCheck,
			"provider": c.ProviderClient.HealthCheck,
			"redis": func(ctx context.Context) error {
				return redis.HealthCheck(ctx, c.Redis)
			},
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("failed to close redis client", "error", err)
		}
	}

	c.Logger.Info("container closed")
	return nil
}
