package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tripno08/innerview-backend/internal/api/handler"
	"github.com/Tripno08/innerview-backend/internal/api/middleware"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/hash"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
	"github.com/Tripno08/innerview-backend/internal/core/service"
	"github.com/Tripno08/innerview-backend/internal/core/token"
	mongodb "github.com/Tripno08/innerview-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Tripno08/innerview-backend/internal/infrastructure/db/redis"
)

const membershipCacheTTL = 5 * time.Minute

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	tokens *token.Service,
	hasher *hash.Bcrypt,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("innerview"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	interventionRepo := mongodb.NewInterventionRepository(db)
	meetingRepo := mongodb.NewMeetingRepository(db)
	membership := redisdb.NewMembershipCache(rdb, mongodb.NewMembershipRepository(db), membershipCacheTTL)
	auditRepo := mongodb.NewAuditRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, hasher, tokens, audit, log)
	permService := service.NewPermissionService(userRepo, membership, log)
	studentService := service.NewStudentService(studentRepo, audit, log)
	interventionService := service.NewInterventionService(interventionRepo, studentRepo, log)
	meetingService := service.NewMeetingService(meetingRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo, audit, auditRepo)
	studentHandler := handler.NewStudentHandler(studentService)
	interventionHandler := handler.NewInterventionHandler(interventionService)
	meetingHandler := handler.NewMeetingHandler(meetingService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected routes ---
	auth := middleware.Auth(tokens)
	staffWrite := middleware.RBAC(domain.RoleAdmin, domain.RoleCoordinator)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	interventionWrite := middleware.RBAC(domain.RoleAdmin, domain.RoleCoordinator, domain.RoleSpecialist)
	allRoles := []domain.Role{domain.RoleAdmin, domain.RoleCoordinator, domain.RoleTeacher, domain.RoleSpecialist}

	users := e.Group("/users", auth, adminOnly)
	users.GET("", userHandler.List)
	users.PUT("/:id/role", userHandler.ChangeRole)
	users.GET("/:id/audit", userHandler.AuditTrail)

	students := e.Group("/students", auth)
	students.GET("", studentHandler.List)
	students.GET("/:id", studentHandler.Get)
	students.GET("/:id/interventions", interventionHandler.ListByStudent)
	students.POST("", studentHandler.Create, staffWrite)
	students.PUT("/:id", studentHandler.Update, staffWrite)
	students.DELETE("/:id", studentHandler.Delete, staffWrite)

	interventions := e.Group("/interventions", auth)
	interventions.GET("/:id", interventionHandler.Get)
	interventions.POST("", interventionHandler.Create, interventionWrite)
	interventions.PUT("/:id/status", interventionHandler.ChangeStatus, interventionWrite)

	// Meeting routes are institution-scoped: the RBAC check runs through the
	// permission workflow, which also verifies institution membership.
	meetings := e.Group("/institutions/:institutionID/meetings", auth)
	meetings.GET("", meetingHandler.List, middleware.RBACScoped(permService, allRoles...))
	meetings.GET("/:id", meetingHandler.Get, middleware.RBACScoped(permService, allRoles...))
	meetings.POST("", meetingHandler.Create, middleware.RBACScoped(permService, domain.RoleAdmin, domain.RoleCoordinator))
	meetings.POST("/:id/participants", meetingHandler.AddParticipant, middleware.RBACScoped(permService, domain.RoleAdmin, domain.RoleCoordinator))
	meetings.POST("/:id/decisions", meetingHandler.RecordDecision, middleware.RBACScoped(permService, domain.RoleAdmin, domain.RoleCoordinator))

	return e
}
