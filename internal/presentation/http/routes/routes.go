package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/serviflow/serviflow-api/internal/config"
	domainRepo "github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/internal/presentation/http/handler"
	"github.com/serviflow/serviflow-api/internal/presentation/http/middleware"
	"github.com/serviflow/serviflow-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Client      *handler.ClientHandler
	Provider    *handler.ProviderHandler
	Catalog     *handler.CatalogHandler
	Draft       *handler.DraftHandler
	Quotation   *handler.QuotationHandler
	Collection  *handler.CollectionHandler
	CuentaCobro *handler.CuentaCobroHandler
	Contract    *handler.ContractHandler
	Task        *handler.TaskHandler
	MasterData  *handler.MasterDataHandler
	Profile     *handler.ProfileHandler
	Preferences *handler.PreferencesHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Mutating endpoints can replay via Idempotency-Key
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Account
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Preferences
	protected.GET("/preferences", h.Preferences.Get)
	protected.PATCH("/preferences", h.Preferences.Update)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
	}

	registerClientRoutes(protected, h)
	registerProviderRoutes(protected, h)
	registerCatalogRoutes(protected, h)
	registerQuotationRoutes(protected, h)
	registerCollectionRoutes(protected, h)
	registerCuentaCobroRoutes(protected, h)
	registerContractRoutes(protected, h)
	registerTaskRoutes(protected, h)
	registerMasterDataRoutes(protected, h)
	registerCompanyRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	clients.Use(middleware.RequirePermission("manage-clients"))
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

func registerProviderRoutes(protected *gin.RouterGroup, h *Handlers) {
	providers := protected.Group("/providers")
	providers.Use(middleware.RequirePermission("manage-providers"))
	{
		providers.GET("", h.Provider.List)
		providers.POST("", h.Provider.Create)
		providers.GET("/:id", h.Provider.Get)
		providers.PUT("/:id", h.Provider.Update)
		providers.DELETE("/:id", h.Provider.Delete)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	catalog := protected.Group("/catalog")
	catalog.Use(middleware.RequirePermission("manage-catalog"))
	{
		catalog.GET("", h.Catalog.List)
		catalog.POST("", h.Catalog.Create)
		catalog.GET("/:id", h.Catalog.Get)
		catalog.PUT("/:id", h.Catalog.Update)
		catalog.DELETE("/:id", h.Catalog.Delete)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission("manage-quotations"))
	{
		// Wizard sessions. Registered before /:id so "drafts" doesn't
		// collide with the ID parameter.
		drafts := quotations.Group("/drafts")
		{
			drafts.POST("", h.Draft.Start)
			drafts.GET("/clients", h.Draft.SearchClients)
			drafts.GET("/:id", h.Draft.Get)
			drafts.DELETE("/:id", h.Draft.Discard)
			drafts.PATCH("/:id/issuer", h.Draft.UpdateIssuer)
			drafts.PATCH("/:id/client", h.Draft.UpdateClient)
			drafts.POST("/:id/client/select", h.Draft.SelectClient)
			drafts.POST("/:id/items", h.Draft.AddItem)
			drafts.POST("/:id/items/catalog", h.Draft.AddCatalogItem)
			drafts.PATCH("/:id/items/:itemId", h.Draft.UpdateItem)
			drafts.DELETE("/:id/items/:itemId", h.Draft.RemoveItem)
			drafts.PUT("/:id/expiry", h.Draft.SetExpiry)
			drafts.POST("/:id/next", h.Draft.Next)
			drafts.POST("/:id/previous", h.Draft.Previous)
			drafts.PUT("/:id/step", h.Draft.GoToStep)
			drafts.POST("/:id/save", h.Draft.Save)
			drafts.POST("/:id/send", h.Draft.Send)
		}

		quotations.GET("", h.Quotation.List)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id/status", h.Quotation.ChangeStatus)
		quotations.POST("/:id/send", h.Quotation.Send)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerCollectionRoutes(protected *gin.RouterGroup, h *Handlers) {
	collections := protected.Group("/collections")
	collections.Use(middleware.RequirePermission("manage-collections"))
	{
		collections.GET("", h.Collection.List)
		collections.POST("", h.Collection.Create)
		collections.POST("/from-quotation/:id", h.Collection.CreateFromQuotation)
		collections.GET("/:id", h.Collection.Get)
		collections.POST("/:id/payments", h.Collection.RegisterPayment)
		collections.POST("/:id/cancel", h.Collection.Cancel)
		collections.DELETE("/:id", h.Collection.Delete)
	}
}

func registerCuentaCobroRoutes(protected *gin.RouterGroup, h *Handlers) {
	cuentas := protected.Group("/cuentas-cobro")
	cuentas.Use(middleware.RequirePermission("manage-cuentas"))
	{
		cuentas.GET("", h.CuentaCobro.List)
		cuentas.POST("", h.CuentaCobro.Create)
		cuentas.GET("/:id", h.CuentaCobro.Get)
		cuentas.PUT("/:id/paid", h.CuentaCobro.MarkPaid)
		cuentas.DELETE("/:id", h.CuentaCobro.Delete)
	}
}

func registerContractRoutes(protected *gin.RouterGroup, h *Handlers) {
	contracts := protected.Group("/contracts")
	contracts.Use(middleware.RequirePermission("manage-contracts"))
	{
		templates := contracts.Group("/templates")
		{
			templates.GET("", h.Contract.ListTemplates)
			templates.POST("", h.Contract.CreateTemplate)
			templates.GET("/:id", h.Contract.GetTemplate)
			templates.PUT("/:id", h.Contract.UpdateTemplate)
			templates.DELETE("/:id", h.Contract.DeleteTemplate)
		}

		contracts.GET("", h.Contract.List)
		contracts.POST("", h.Contract.Create)
		contracts.GET("/:id", h.Contract.Get)
		contracts.PUT("/:id/status", h.Contract.ChangeStatus)
		contracts.DELETE("/:id", h.Contract.Delete)
	}
}

func registerTaskRoutes(protected *gin.RouterGroup, h *Handlers) {
	tasks := protected.Group("/tasks")
	tasks.Use(middleware.RequirePermission("manage-tasks"))
	{
		tasks.GET("", h.Task.List)
		tasks.POST("", h.Task.Create)
		tasks.GET("/calendar", h.Task.Calendar)
		tasks.GET("/:id", h.Task.Get)
		tasks.PUT("/:id", h.Task.Update)
		tasks.DELETE("/:id", h.Task.Delete)
	}
}

func registerMasterDataRoutes(protected *gin.RouterGroup, h *Handlers) {
	masterdata := protected.Group("/masterdata")
	masterdata.Use(middleware.RequirePermission("manage-masterdata"))
	{
		masterdata.GET("/countries", h.MasterData.ListCountries)
		masterdata.POST("/countries", h.MasterData.CreateCountry)
		masterdata.DELETE("/countries/:id", h.MasterData.DeleteCountry)
		masterdata.GET("/countries/:countryId/cities", h.MasterData.ListCities)
		masterdata.POST("/cities", h.MasterData.CreateCity)
		masterdata.DELETE("/cities/:id", h.MasterData.DeleteCity)
		masterdata.GET("/sectors", h.MasterData.ListSectors)
		masterdata.POST("/sectors", h.MasterData.CreateSector)
		masterdata.DELETE("/sectors/:id", h.MasterData.DeleteSector)
	}
}

func registerCompanyRoutes(protected *gin.RouterGroup, h *Handlers) {
	company := protected.Group("/company")
	company.Use(middleware.RequirePermission("manage-company"))
	{
		company.GET("/profile", h.Profile.Get)
		company.PUT("/profile", h.Profile.Update)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/roles", h.User.ListRoles)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
		users.POST("/:id/roles", h.User.AssignRole)
		users.DELETE("/:id/roles", h.User.RemoveRole)
	}
}
