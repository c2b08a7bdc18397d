package v1

import (
	"net/http"
	"time"

	"go-profile-service/config"
	"go-profile-service/internal/delivery/http/middleware"
	"go-profile-service/internal/delivery/http/response"
	"go-profile-service/internal/domain"
	"go-profile-service/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC domain.ProfileUsecase
	ResumeUC  domain.ResumeUsecase
	Verifier  *auth.Verifier
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitPerMinute,
		Window:    time.Minute,
		KeyPrefix: "rl:ip:",
	}))
	r.Use(middleware.ErrorHandler())

	// Service info & health (public, for load balancers and monitoring)
	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Profile Service", gin.H{
			"version": deps.Config.AppVersion,
			"health":  "/health",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "healthy", gin.H{
			"service":     "profile-service",
			"version":     deps.Config.AppVersion,
			"environment": deps.Config.Environment,
		})
	})

	v1 := r.Group("/api/v1")

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewResumeHandler(protected, deps.ResumeUC)
	}

	return r
}
