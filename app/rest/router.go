package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"growhub/app/port"
	"growhub/app/rest/handlers"
	custommw "growhub/app/rest/middleware"
	"growhub/app/utils/validator"
	"growhub/app/utils/webhook"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	Verifier        *webhook.Verifier
	IdentitySync    port.IdentitySyncUsecase
	Strains         port.StrainUsecase
	Grows           port.GrowUsecase
	Environments    port.EnvironmentUsecase
	Tasks           port.TaskUsecase
	Profiles        port.ProfileUsecase
	Activity        port.ActivityUsecase
	Provider        port.ProviderGateway
	Users           port.UserRepository
	ReadinessChecks map[string]handlers.DependencyCheck
	EnableDebug     bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	v := validator.New()

	// Create handlers
	webhookHandler := handlers.NewWebhookHandler(config.IdentitySync, config.Verifier, config.Logger)
	strainHandler := handlers.NewStrainHandler(config.Strains, v, config.Logger)
	growHandler := handlers.NewGrowHandler(config.Grows, v, config.Logger)
	environmentHandler := handlers.NewEnvironmentHandler(config.Environments, v, config.Logger)
	taskHandler := handlers.NewTaskHandler(config.Tasks, v, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.Profiles, v, config.Logger)
	activityHandler := handlers.NewActivityHandler(config.Activity, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.ReadinessChecks, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.Provider, config.Users, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Webhook intake authenticates by signature, not session
	v1.POST("/webhooks/identity", webhookHandler.HandleIdentityEvent)

	// Caller-facing endpoints (require a provider session)
	authed := v1.Group("")
	authed.Use(authMiddleware.RequireAuth())

	authed.GET("/profile", profileHandler.GetProfile)
	authed.PUT("/profile/preferences", profileHandler.UpdatePreferences)

	// Cultivation endpoints additionally require organization membership
	org := authed.Group("")
	org.Use(authMiddleware.RequireOrganization())

	org.GET("/strains", strainHandler.ListStrains)
	org.POST("/strains", strainHandler.CreateStrain)
	org.GET("/strains/:strainId", strainHandler.GetStrain)
	org.PUT("/strains/:strainId", strainHandler.UpdateStrain)
	org.DELETE("/strains/:strainId", strainHandler.DeleteStrain)

	org.GET("/grows", growHandler.ListGrows)
	org.POST("/grows", growHandler.CreateGrow)
	org.GET("/grows/:growId", growHandler.GetGrow)
	org.PUT("/grows/:growId", growHandler.UpdateGrow)
	org.DELETE("/grows/:growId", growHandler.DeleteGrow)
	org.POST("/grows/:growId/advance", growHandler.AdvanceGrow)
	org.GET("/grows/:growId/plants", growHandler.ListPlants)
	org.POST("/grows/:growId/plants", growHandler.AddPlant)
	org.GET("/plants/:plantId", growHandler.GetPlant)
	org.PUT("/plants/:plantId", growHandler.UpdatePlant)
	org.DELETE("/plants/:plantId", growHandler.DeletePlant)
	org.POST("/plants/:plantId/harvest", growHandler.HarvestPlant)

	org.GET("/environments", environmentHandler.ListEnvironments)
	org.POST("/environments", environmentHandler.CreateEnvironment)
	org.GET("/environments/:environmentId", environmentHandler.GetEnvironment)
	org.PUT("/environments/:environmentId", environmentHandler.UpdateEnvironment)
	org.DELETE("/environments/:environmentId", environmentHandler.DeleteEnvironment)

	org.GET("/tasks", taskHandler.ListTasks)
	org.POST("/tasks", taskHandler.CreateTask)
	org.GET("/tasks/:taskId", taskHandler.GetTask)
	org.PUT("/tasks/:taskId", taskHandler.UpdateTask)
	org.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
	org.POST("/tasks/:taskId/complete", taskHandler.CompleteTask)

	// Admin endpoints
	admin := org.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	admin.GET("/organizations/:orgProviderId/activity", activityHandler.ListOrganizationActivity)

	return e
}
