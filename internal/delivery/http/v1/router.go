package v1

import (
	"log/slog"

	"skill-summarizer-backend/internal/delivery/http/middleware"
	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	TaskUC      domain.TaskUsecase
	SkillUC     domain.SkillUsecase
	HealthUC    usecase.HealthUsecase
	FrontendURL string
	Logger      *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if deps.Logger != nil {
		r.Use(middleware.AccessLog(deps.Logger))
	}
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	NewHealthHandler(r, deps.HealthUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewTaskHandler(r, deps.TaskUC)
	NewSkillHandler(r, deps.SkillUC)

	return r
}
