package router

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"policyhub/internal/auth"
	"policyhub/internal/errors"
	"policyhub/internal/handler"
	"policyhub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	fileHandler *handler.FileHandler,
	statsHandler *handler.StatsHandler,
	superAdminHandler *handler.SuperAdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	requireToken := jwtMiddleware(jwtService)

	api := e.Group("/api")

	// Public routes: anyone may read the registry and the audit trail.
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/anonymous", authHandler.Anonymous)
	api.GET("/files", fileHandler.List)
	api.GET("/files/department/:department", fileHandler.ListByDepartment)
	api.GET("/files/activities", fileHandler.Activities)

	// Token required, any role.
	api.GET("/auth/me", authHandler.Me, requireToken)
	api.GET("/stats", statsHandler.Overview, requireToken)

	// Registry mutations require at least admin.
	api.POST("/files", fileHandler.Upload, requireToken, RequireRole(model.RoleAdmin))
	api.PUT("/files/:id", fileHandler.Update, requireToken, RequireRole(model.RoleAdmin))
	api.DELETE("/files/:id", fileHandler.Delete, requireToken, RequireRole(model.RoleAdmin))

	// Account management is super admin only.
	superadmin := api.Group("/superadmin", requireToken, RequireRole(model.RoleSuperAdmin))
	superadmin.GET("/admins", superAdminHandler.ListAdmins)
	superadmin.POST("/admins", superAdminHandler.CreateAdmin)
	superadmin.DELETE("/admins/:id", superAdminHandler.DeleteAdmin)
}

// jwtMiddleware extracts and verifies the bearer token. A missing token is
// 401; a malformed or expired one is 403.
func jwtMiddleware(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if stderrors.Is(err, echojwt.ErrJWTMissing) {
				return respondError(c, errors.ErrUnauthorized)
			}
			if stderrors.Is(err, errors.ErrTokenExpired) {
				return respondError(c, errors.ErrTokenExpired)
			}
			return respondError(c, errors.ErrTokenInvalid)
		},
	})
}

// RequireRole gates a route on the role hierarchy.
func RequireRole(min model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := handler.CurrentClaims(c)
			if !ok {
				return respondError(c, errors.ErrUnauthorized)
			}
			if !claims.Role.AtLeast(min) {
				return respondError(c, errors.ErrForbidden)
			}
			return next(c)
		}
	}
}

func respondError(c echo.Context, err error) error {
	he := errors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.Envelope())
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
