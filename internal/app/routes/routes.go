package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/app/controllers"
	"esweb-http-service/internal/app/middleware"
	"esweb-http-service/internal/domain/services/container"
	"esweb-http-service/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(cfg *config.Config, serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.Default()

	// CORS for the public site frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 JSON on every response
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	middleware.InitAuthMiddleware(cfg)

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	registerPublicRoutes(r, container)
	registerAuthenticatedRoutes(r, container)
}

// registerPublicRoutes registers the routes the site frontend calls without
// credentials
func registerPublicRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	public := r.Group("/")
	// 10 requests per second per IP with a burst of 20
	public.Use(middleware.IPRateLimiter(10, 20))

	// Health checks
	public.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health", controllers.HandleHealthFunc(container, "status"))

	// Contact form intake
	public.POST("/submit", controllers.HandleContactFunc(container, "submitForm"))

	// Public catalogues, served through the response cache when Redis is
	// configured
	catalogueCache := middleware.Cache(container.GetRedisService(), middleware.CacheConfig{
		Expiration: time.Minute,
	})
	public.GET("/faqs", catalogueCache, controllers.HandleFAQFunc(container, "getFAQs"))
	public.GET("/latest-works", catalogueCache, controllers.HandleLatestWorkFunc(container, "getWorks"))
	public.GET("/job-listings", catalogueCache, controllers.HandleJobListingFunc(container, "getListings"))

	// Job application intake
	public.POST("/job-applications", controllers.HandleJobApplicationFunc(container, "submitApplication"))

	// Admin login issues the bearer token used by the authenticated group
	public.POST("/admin/login", controllers.HandleAdminFunc(container, "login"))
}

// registerAuthenticatedRoutes registers the admin console routes. Every
// route in the group requires a valid bearer token.
func registerAuthenticatedRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	authenticated := r.Group("/")
	authenticated.Use(middleware.AuthenticateAdmin())

	// Inquiry review
	authenticated.GET("/inquiries", controllers.HandleContactFunc(container, "getInquiries"))
	authenticated.PATCH("/inquiries/:id/solve", controllers.HandleContactFunc(container, "solveInquiry"))
	authenticated.POST("/inquiries/:id/reply", controllers.HandleContactFunc(container, "replyInquiry"))

	// Admin account management
	authenticated.POST("/admin/add", controllers.HandleAdminFunc(container, "addAdmin"))
	authenticated.PATCH("/admin/update/:id", controllers.HandleAdminFunc(container, "updateAdmin"))

	// FAQ catalogue management
	authenticated.POST("/faqs", controllers.HandleFAQFunc(container, "createFAQ"))
	authenticated.PUT("/faqs/:id", controllers.HandleFAQFunc(container, "updateFAQ"))
	authenticated.DELETE("/faqs/:id", controllers.HandleFAQFunc(container, "deleteFAQ"))

	// Portfolio management
	authenticated.POST("/latest-works", controllers.HandleLatestWorkFunc(container, "createWork"))
	authenticated.PUT("/latest-works/:id", controllers.HandleLatestWorkFunc(container, "updateWork"))
	authenticated.DELETE("/latest-works/:id", controllers.HandleLatestWorkFunc(container, "deleteWork"))

	// Job listing management
	authenticated.POST("/job-listings", controllers.HandleJobListingFunc(container, "createListing"))
	authenticated.PUT("/job-listings/:id", controllers.HandleJobListingFunc(container, "updateListing"))
	authenticated.DELETE("/job-listings/:id", controllers.HandleJobListingFunc(container, "deleteListing"))

	// Application review
	authenticated.GET("/job-applications", controllers.HandleJobApplicationFunc(container, "getApplications"))
	authenticated.PATCH("/job-applications/:id/status", controllers.HandleJobApplicationFunc(container, "updateStatus"))
}
