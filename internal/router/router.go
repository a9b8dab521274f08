package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hackfest/docs"
	"hackfest/internal/handler"
	"hackfest/internal/middleware"
	"hackfest/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	contentH *handler.ContentHandler,
	adminH *handler.AdminHandler,
	contactH *handler.ContactHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public routes
	v1.POST("/auth/google", authH.GoogleLogin)
	v1.POST("/contact", contactH.Submit)
	v1.GET("/content/:collection", contentH.List)
	v1.GET("/content/:collection/events", contentH.Events)

	// Signed-in routes: identity required, allow-list not yet checked, so a
	// denied identity can still see who it is signed in as.
	session := v1.Group("")
	session.Use(middleware.Session(authSvc))
	session.GET("/auth/me", authH.Me)

	// Admin routes: identity plus allow-list.
	admin := v1.Group("/admin")
	admin.Use(middleware.Session(authSvc))
	admin.Use(middleware.RequireAllowListed(authSvc))
	admin.GET("/content/:collection", adminH.List)
	admin.POST("/content/:collection", adminH.Create)
	admin.PATCH("/content/:collection/:id", adminH.Update)
	admin.DELETE("/content/:collection/:id", adminH.Delete)
	admin.GET("/export", adminH.Export)

	return r
}
