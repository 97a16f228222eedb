package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/diceprojects/auth-system/docs"
	"github.com/diceprojects/auth-system/internal/api/handler"
	"github.com/diceprojects/auth-system/internal/api/middleware"
	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

// Services bundles the core collaborators the router wires into handlers.
type Services struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Roles  ports.RoleService
	Tokens ports.TokenService
}

// authWhitelist lists the path prefixes reachable without a bearer token.
var authWhitelist = []string{
	"/api/auth/",
	"/swagger",
	"/health",
	"/metrics",
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))
	e.Use(middleware.BearerAuth(svc.Tokens, log))
	e.Use(middleware.RequireAuth(authWhitelist...))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users)
	roleHandler := handler.NewRoleHandler(svc.Roles)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- User routes ---
	user := e.Group("/api/user")
	user.GET("/:username", userHandler.GetByUsername)
	user.POST("/create", userHandler.Create)
	user.POST("/assign-role", userHandler.AssignRole)
	user.PUT("/updateToken/:userId", userHandler.UpdateToken)
	user.GET("/findById/:userId", userHandler.GetByID)

	// --- Role routes (mutations restricted to administrators) ---
	role := e.Group("/api/role")
	role.GET("/getRoleByName/:roleName", roleHandler.GetByName)
	role.GET("/listRoles", roleHandler.List)
	role.POST("/create", roleHandler.Create, middleware.RBAC(domain.AdminRole))
	role.PUT("/update/:roleId", roleHandler.Update, middleware.RBAC(domain.AdminRole))
	role.PUT("/changeStatus/:roleId", roleHandler.ChangeStatus, middleware.RBAC(domain.AdminRole))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
