package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"employee-matcher-backend/config"
	"employee-matcher-backend/internal/delivery/http/middleware"
	"employee-matcher-backend/internal/delivery/http/response"
	"employee-matcher-backend/internal/domain"
)

type RouterDeps struct {
	ResumeUC domain.ResumeUsecase
	MatchUC  domain.MatchUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = deps.Config.MaxUploadBytes

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Welcome to the Intelligent Employee Matcher API!", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewResumeHandler(v1, deps.ResumeUC)
	NewMatchHandler(v1, deps.MatchUC)
	NewCandidateHandler(v1, deps.ResumeUC)

	return r
}
