package container

import (
	"sync"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"esweb-http-service/internal/domain/services"
	"esweb-http-service/internal/infrastructure/config"
)

// ServiceContainer wires all services to the shared database handle and
// configuration. Handlers resolve services by name; nothing reaches for
// process-wide state.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService   services.InterfaceJWTService
	emailService services.InterfaceEmailService
	redisService services.InterfaceRedisService

	// Business services
	adminService          services.InterfaceAdminService
	contactService        services.InterfaceContactService
	faqService            services.InterfaceFAQService
	latestWorkService     services.InterfaceLatestWorkService
	jobListingService     services.InterfaceJobListingService
	jobApplicationService services.InterfaceJobApplicationService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database handle is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.emailService = services.NewEmailService(c.config)
	if c.redis != nil {
		c.redisService = services.NewRedisServiceWithClient(c.redis)
	} else {
		c.redisService = services.NewRedisService(c.config)
	}

	// Business services
	c.adminService = services.NewAdminService(c.db, c.config)
	c.contactService = services.NewContactService(c.db, c.config, c.emailService)
	c.faqService = services.NewFAQService(c.db, c.config)
	c.latestWorkService = services.NewLatestWorkService(c.db, c.config)
	c.jobListingService = services.NewJobListingService(c.db, c.config)
	c.jobApplicationService = services.NewJobApplicationService(c.db, c.config)
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "email":
		return c.emailService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "contact":
		return c.contactService
	case "faq":
		return c.faqService
	case "latest_work":
		return c.latestWorkService
	case "job_listing":
		return c.jobListingService
	case "job_application":
		return c.jobApplicationService
	default:
		return nil
	}
}

// ReplaceService swaps a service implementation, primarily for tests
func (c *ServiceContainer) ReplaceService(name string, svc interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case "email":
		c.emailService = svc.(services.InterfaceEmailService)
		c.contactService = services.NewContactService(c.db, c.config, c.emailService)
	case "contact":
		c.contactService = svc.(services.InterfaceContactService)
	case "admin":
		c.adminService = svc.(services.InterfaceAdminService)
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetJWTService returns the JWT service
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetRedisService returns the Redis service
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}
