package routes

import (
	"fmt"
	"net/http"
	"time"

	"institute-portal-backend/internal/api/handlers"
	"institute-portal-backend/internal/api/middleware"
	"institute-portal-backend/internal/auth"
	"institute-portal-backend/internal/authz"
	"institute-portal-backend/internal/cache"
	"institute-portal-backend/internal/config"
	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the long-lived resources the router is built from
type Dependencies struct {
	DB         *gorm.DB
	Config     *config.Config
	Cache      cache.Store
	Files      *storage.FileStore
	Authorizer *authz.Authorizer
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	db := deps.DB
	perm := deps.Authorizer.RequirePermission

	// Create router
	router, err := newEngine(cfg)
	if err != nil {
		return nil, err
	}

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.BodyLimit(deps.Files.MaxBytes() + 1<<20))

	// Initialize validator
	validator := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	runRepo := repository.NewPayrollRunRepository(db)
	entryRepo := repository.NewPayrollEntryRepository(db)
	procurementRepo := repository.NewProcurementRepository(db)
	portariaRepo := repository.NewPortariaRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	pageRepo := repository.NewPageRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	federationRepo := repository.NewFederationRepository(db)
	schoolRepo := repository.NewSchoolRepository(db)
	regRepo := repository.NewPreRegistrationRepository(db)
	managerRepo := repository.NewSchoolManagerRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, employeeRepo, auth.HashPassword, validator)
	directoryService := service.NewDirectoryService(cfg)
	unitService := service.NewUnitService(unitRepo, validator)
	positionService := service.NewPositionService(positionRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, employeeRepo, unitRepo, positionRepo, validator)
	payrollService := service.NewPayrollService(runRepo, entryRepo, employeeRepo, validator)
	procurementService := service.NewProcurementService(procurementRepo, validator)
	portariaService := service.NewPortariaService(portariaRepo, employeeRepo, deps.Files, validator)
	meetingService := service.NewMeetingService(meetingRepo, deps.Files, validator)
	newsService := service.NewNewsService(newsRepo, deps.Files, validator)
	galleryService := service.NewGalleryService(galleryRepo, deps.Files, validator)
	pageService := service.NewPageService(pageRepo, validator)
	transparencyService := service.NewTransparencyService(payrollService, procurementRepo, portariaRepo)
	assetService := service.NewAssetService(assetRepo, unitRepo, validator)
	federationService := service.NewFederationService(federationRepo, validator)
	schoolService := service.NewSchoolService(schoolRepo, federationRepo, validator)
	regService := service.NewPreRegistrationService(regRepo, schoolRepo, managerRepo, validator)
	managerService := service.NewSchoolManagerService(managerRepo, schoolRepo, validator)
	dashboardService := service.NewDashboardService(service.DashboardRepositories{
		Employees:        employeeRepo,
		PayrollRuns:      runRepo,
		Procurement:      procurementRepo,
		Portarias:        portariaRepo,
		PreRegistrations: regRepo,
		Assets:           assetRepo,
	}, deps.Cache, deps.Authorizer)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), deps.Cache, userRepo)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService, deps.Authorizer)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, deps.Cache)
	userHandler := handlers.NewUserHandler(userService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	unitHandler := handlers.NewUnitHandler(unitService)
	positionHandler := handlers.NewPositionHandler(positionService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, assignmentService)
	payrollHandler := handlers.NewPayrollHandler(payrollService)
	procurementHandler := handlers.NewProcurementHandler(procurementService)
	governanceHandler := handlers.NewGovernanceHandler(portariaService, meetingService)
	communicationsHandler := handlers.NewCommunicationsHandler(newsService, galleryService, pageService)
	transparencyHandler := handlers.NewTransparencyHandler(transparencyService)
	assetHandler := handlers.NewAssetHandler(assetService)
	credentialingHandler := handlers.NewCredentialingHandler(federationService, schoolService, regService, managerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	fileHandler := handlers.NewFileHandler(deps.Files)

	publicLimit := middleware.RateLimit(deps.Cache, cfg.PublicRateLimit, time.Duration(cfg.PublicRateWindowSec)*time.Second)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.SecurityHeaders())

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", publicLimit, authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/validate", authHandler.Validate)

		providerGroup := authGroup.Group("/:provider")
		{
			providerGroup.GET("/start", authHandler.Start)
			providerGroup.GET("/handler", authHandler.HandlerFrame)
		}
	}

	// Public portal, no authentication
	public := api.Group("/public")
	{
		transparency := public.Group("/transparency")
		{
			transparency.GET("/payroll", transparencyHandler.Payroll)
			transparency.GET("/procurement", transparencyHandler.Procurement)
			transparency.GET("/portarias", transparencyHandler.Portarias)
			transparency.GET("/:dataset/export", publicLimit, transparencyHandler.Export)
		}

		public.GET("/news", communicationsHandler.PublicNews)
		public.GET("/news/:slug", communicationsHandler.PublicNewsBySlug)
		public.GET("/galleries", communicationsHandler.PublicGalleries)
		public.GET("/galleries/:id", communicationsHandler.PublicGallery)
		public.GET("/pages", communicationsHandler.PublicPages)
		public.GET("/pages/:slug", communicationsHandler.PublicPageBySlug)
		public.GET("/portarias/:id/document", governanceHandler.PublicDocument)
		public.GET("/media/*path", fileHandler.PublicMedia)
		public.GET("/federations", credentialingHandler.ListFederations)

		public.POST("/pre-registrations", publicLimit, credentialingHandler.SubmitPreRegistration)
		public.GET("/pre-registrations/status", publicLimit, credentialingHandler.PreRegistrationStatus)
	}

	// API v1 routes - All endpoints require authentication
	v1 := api.Group("/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", authHandler.Me)
		v1.GET("/me/modules", authHandler.Modules)
		v1.GET("/dashboard", perm("dashboard.home:read"), dashboardHandler.Get)
		v1.GET("/files/*path", perm("files.documents:read"), fileHandler.Download)

		// Administration
		admin := v1.Group("/admin")
		{
			users := admin.Group("/users", perm("admin.users:admin"))
			{
				users.POST("", userHandler.CreateUser)
				users.GET("", userHandler.ListUsers)
				users.GET("/:id", userHandler.GetUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.POST("/:id/password", userHandler.ResetPassword)
			}
			admin.GET("/directory/search", perm("admin.directory:read"), directoryHandler.Search)
		}

		// Human resources
		hr := v1.Group("/hr")
		{
			units := hr.Group("/units")
			{
				units.POST("", perm("hr.units:write"), unitHandler.Create)
				units.GET("", perm("hr.units:read"), unitHandler.List)
				units.GET("/tree", perm("hr.units:read"), unitHandler.Tree)
				units.GET("/:id", perm("hr.units:read"), unitHandler.Get)
				units.PUT("/:id", perm("hr.units:write"), unitHandler.Update)
				units.DELETE("/:id", perm("hr.units:write"), unitHandler.Delete)
			}

			positions := hr.Group("/positions")
			{
				positions.POST("", perm("hr.positions:write"), positionHandler.Create)
				positions.GET("", perm("hr.positions:read"), positionHandler.List)
				positions.GET("/:id", perm("hr.positions:read"), positionHandler.Get)
				positions.PUT("/:id", perm("hr.positions:write"), positionHandler.Update)
				positions.DELETE("/:id", perm("hr.positions:write"), positionHandler.Delete)
			}

			employees := hr.Group("/employees")
			{
				employees.POST("", perm("hr.employees:write"), employeeHandler.Create)
				employees.GET("", perm("hr.employees:read"), employeeHandler.List)
				employees.GET("/export", perm("hr.employees:read"), employeeHandler.Export)
				employees.GET("/:id", perm("hr.employees:read"), employeeHandler.Get)
				employees.PUT("/:id", perm("hr.employees:write"), employeeHandler.Update)
				employees.DELETE("/:id", perm("hr.employees:write"), employeeHandler.Delete)
				employees.GET("/:id/assignments", perm("hr.assignments:read"), employeeHandler.History)
				employees.POST("/:id/assignments", perm("hr.assignments:write"), employeeHandler.Assign)
				employees.POST("/:id/assignments/end", perm("hr.assignments:write"), employeeHandler.EndAssignment)
			}
		}

		// Payroll
		payroll := v1.Group("/payroll")
		{
			payroll.GET("/summary", perm("payroll.runs:read"), payrollHandler.YearSummary)

			runs := payroll.Group("/runs")
			{
				runs.POST("", perm("payroll.runs:write"), payrollHandler.CreateRun)
				runs.GET("", perm("payroll.runs:read"), payrollHandler.ListRuns)
				runs.GET("/:id", perm("payroll.runs:read"), payrollHandler.GetRun)
				runs.DELETE("/:id", perm("payroll.runs:write"), payrollHandler.DeleteRun)
				runs.POST("/:id/process", perm("payroll.runs:write"), payrollHandler.Transition(models.PayrollStatusProcessing))
				runs.POST("/:id/cancel-processing", perm("payroll.runs:write"), payrollHandler.Transition(models.PayrollStatusOpen))
				runs.POST("/:id/close", perm("payroll.runs:approve"), payrollHandler.Transition(models.PayrollStatusClosed))
				runs.POST("/:id/reopen", perm("payroll.runs:approve"), payrollHandler.Transition(models.PayrollStatusReopened))
				runs.GET("/:id/entries", perm("payroll.runs:read"), payrollHandler.ListEntries)
				runs.POST("/:id/entries", perm("payroll.runs:write"), payrollHandler.AddEntry)
				runs.GET("/:id/summary", perm("payroll.runs:read"), payrollHandler.Summary)
				runs.POST("/:id/import", perm("payroll.runs:write"), payrollHandler.Import)
				runs.GET("/:id/export", perm("payroll.runs:read"), payrollHandler.Export)
			}

			payroll.PUT("/entries/:id", perm("payroll.runs:write"), payrollHandler.UpdateEntry)
			payroll.DELETE("/entries/:id", perm("payroll.runs:write"), payrollHandler.DeleteEntry)
		}

		// Procurement
		procurement := v1.Group("/procurement")
		{
			cases := procurement.Group("/cases")
			{
				cases.POST("", perm("procurement.cases:write"), procurementHandler.Create)
				cases.GET("", perm("procurement.cases:read"), procurementHandler.List)
				cases.GET("/:id", perm("procurement.cases:read"), procurementHandler.Get)
				cases.PUT("/:id", perm("procurement.cases:write"), procurementHandler.Update)
				cases.DELETE("/:id", perm("procurement.cases:write"), procurementHandler.Delete)
				cases.POST("/:id/start", perm("procurement.cases:write"), procurementHandler.Start)
				cases.POST("/:id/complete", perm("procurement.cases:approve"), procurementHandler.Complete)
				cases.POST("/:id/cancel", perm("procurement.cases:approve"), procurementHandler.Cancel)
			}
			procurement.PUT("/checklist-items/:id", perm("procurement.cases:write"), procurementHandler.ToggleItem)
		}

		// Governance
		governance := v1.Group("/governance")
		{
			portarias := governance.Group("/portarias")
			{
				portarias.POST("", perm("governance.portarias:write"), governanceHandler.CreatePortaria)
				portarias.GET("", perm("governance.portarias:read"), governanceHandler.ListPortarias)
				portarias.GET("/:id", perm("governance.portarias:read"), governanceHandler.GetPortaria)
				portarias.PUT("/:id", perm("governance.portarias:write"), governanceHandler.UpdatePortaria)
				portarias.DELETE("/:id", perm("governance.portarias:write"), governanceHandler.DeletePortaria)
				portarias.POST("/:id/publish", perm("governance.portarias:approve"), governanceHandler.PublishPortaria)
				portarias.POST("/:id/revoke", perm("governance.portarias:approve"), governanceHandler.RevokePortaria)
				portarias.POST("/:id/document", perm("governance.portarias:write"), governanceHandler.AttachDocument)
			}

			meetings := governance.Group("/meetings")
			{
				meetings.POST("", perm("governance.meetings:write"), governanceHandler.CreateMeeting)
				meetings.GET("", perm("governance.meetings:read"), governanceHandler.ListMeetings)
				meetings.GET("/:id", perm("governance.meetings:read"), governanceHandler.GetMeeting)
				meetings.PUT("/:id", perm("governance.meetings:write"), governanceHandler.UpdateMeeting)
				meetings.DELETE("/:id", perm("governance.meetings:write"), governanceHandler.DeleteMeeting)
				meetings.POST("/:id/minutes", perm("governance.meetings:write"), governanceHandler.UploadMinutes)
			}
		}

		// Communications
		communications := v1.Group("/communications")
		{
			news := communications.Group("/news")
			{
				news.POST("", perm("communications.news:write"), communicationsHandler.CreateNews)
				news.GET("", perm("communications.news:read"), communicationsHandler.ListNews)
				news.GET("/:id", perm("communications.news:read"), communicationsHandler.GetNews)
				news.PUT("/:id", perm("communications.news:write"), communicationsHandler.UpdateNews)
				news.DELETE("/:id", perm("communications.news:write"), communicationsHandler.DeleteNews)
				news.POST("/:id/cover", perm("communications.news:write"), communicationsHandler.UploadCover)
				news.POST("/:id/publish", perm("communications.news:approve"), communicationsHandler.PublishNews)
				news.POST("/:id/archive", perm("communications.news:approve"), communicationsHandler.ArchiveNews)
			}

			galleries := communications.Group("/galleries")
			{
				galleries.POST("", perm("communications.galleries:write"), communicationsHandler.CreateGallery)
				galleries.GET("", perm("communications.galleries:read"), communicationsHandler.ListGalleries)
				galleries.GET("/:id", perm("communications.galleries:read"), communicationsHandler.GetGallery)
				galleries.PUT("/:id", perm("communications.galleries:write"), communicationsHandler.UpdateGallery)
				galleries.DELETE("/:id", perm("communications.galleries:write"), communicationsHandler.DeleteGallery)
				galleries.POST("/:id/photos", perm("communications.galleries:write"), communicationsHandler.AddPhoto)
				galleries.PUT("/:id/photos/order", perm("communications.galleries:write"), communicationsHandler.ReorderPhotos)
			}
			communications.DELETE("/photos/:id", perm("communications.galleries:write"), communicationsHandler.DeletePhoto)

			pages := communications.Group("/pages")
			{
				pages.POST("", perm("communications.pages:write"), communicationsHandler.CreatePage)
				pages.GET("", perm("communications.pages:read"), communicationsHandler.ListPages)
				pages.GET("/:id", perm("communications.pages:read"), communicationsHandler.GetPage)
				pages.PUT("/:id", perm("communications.pages:write"), communicationsHandler.UpdatePage)
				pages.DELETE("/:id", perm("communications.pages:write"), communicationsHandler.DeletePage)
			}
		}

		// Assets
		assets := v1.Group("/assets")
		{
			assets.GET("/summary", perm("assets.items:read"), assetHandler.Summary)

			items := assets.Group("/items")
			{
				items.POST("", perm("assets.items:write"), assetHandler.Create)
				items.GET("", perm("assets.items:read"), assetHandler.List)
				items.GET("/:id", perm("assets.items:read"), assetHandler.Get)
				items.PUT("/:id", perm("assets.items:write"), assetHandler.Update)
				items.DELETE("/:id", perm("assets.items:write"), assetHandler.Delete)
				items.GET("/:id/transfers", perm("assets.items:read"), assetHandler.Transfers)
				items.POST("/:id/transfers", perm("assets.items:write"), assetHandler.Transfer)
				items.POST("/:id/write-off", perm("assets.items:approve"), assetHandler.WriteOff)
			}
		}

		// Credentialing
		credentialing := v1.Group("/credentialing")
		{
			federations := credentialing.Group("/federations")
			{
				federations.POST("", perm("credentialing.federations:write"), credentialingHandler.CreateFederation)
				federations.GET("", perm("credentialing.federations:read"), credentialingHandler.ListFederations)
				federations.GET("/:id", perm("credentialing.federations:read"), credentialingHandler.GetFederation)
				federations.PUT("/:id", perm("credentialing.federations:write"), credentialingHandler.UpdateFederation)
				federations.DELETE("/:id", perm("credentialing.federations:write"), credentialingHandler.DeleteFederation)
			}

			schools := credentialing.Group("/schools")
			{
				schools.POST("", perm("credentialing.schools:write"), credentialingHandler.CreateSchool)
				schools.GET("", perm("credentialing.schools:read"), credentialingHandler.ListSchools)
				schools.POST("/import", perm("credentialing.schools:write"), credentialingHandler.ImportSchools)
				schools.GET("/by-inep/:inep", perm("credentialing.schools:read"), credentialingHandler.GetSchoolByINEP)
				schools.GET("/:id", perm("credentialing.schools:read"), credentialingHandler.GetSchool)
				schools.PUT("/:id", perm("credentialing.schools:write"), credentialingHandler.UpdateSchool)
				schools.DELETE("/:id", perm("credentialing.schools:write"), credentialingHandler.DeleteSchool)
			}

			regs := credentialing.Group("/pre-registrations")
			{
				regs.GET("", perm("credentialing.preregistrations:read"), credentialingHandler.ListPreRegistrations)
				regs.GET("/:id", perm("credentialing.preregistrations:read"), credentialingHandler.GetPreRegistration)
				regs.POST("/:id/approve", perm("credentialing.preregistrations:approve"), credentialingHandler.ApprovePreRegistration)
				regs.POST("/:id/reject", perm("credentialing.preregistrations:approve"), credentialingHandler.RejectPreRegistration)
			}

			managers := credentialing.Group("/managers")
			{
				managers.POST("", perm("credentialing.managers:write"), credentialingHandler.CreateManager)
				managers.GET("", perm("credentialing.managers:read"), credentialingHandler.ListManagers)
				managers.GET("/:id", perm("credentialing.managers:read"), credentialingHandler.GetManager)
				managers.PUT("/:id", perm("credentialing.managers:write"), credentialingHandler.UpdateManager)
				managers.DELETE("/:id", perm("credentialing.managers:write"), credentialingHandler.DeleteManager)
				managers.POST("/:id/suspend", perm("credentialing.managers:approve"), credentialingHandler.SuspendManager)
				managers.POST("/:id/reactivate", perm("credentialing.managers:approve"), credentialingHandler.ReactivateManager)
				managers.POST("/:id/renew", perm("credentialing.managers:write"), credentialingHandler.RenewManager)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// newEngine creates a bare engine that only believes forwarding headers from
// the configured proxies
func newEngine(cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()
	var proxies []string
	if len(cfg.TrustedProxies) > 0 {
		proxies = cfg.TrustedProxies
	}
	if err := router.SetTrustedProxies(proxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, store cache.Store) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, store)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
