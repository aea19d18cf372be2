package routes

import (
	"net/http"
	"time"

	_ "github.com/Brownie44l1/aidetect-api/docs"
	"github.com/Brownie44l1/aidetect-api/internal/handlers"
	"github.com/Brownie44l1/aidetect-api/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// SetupRoutes builds the gin engine. allowOrigins defaults to every origin;
// restrict it before exposing the service publicly.
func SetupRoutes(h *handlers.Handler, allowOrigins []string, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(log))
	r.Use(cors.New(corsConfig(allowOrigins)))

	r.GET("/health", h.Health)
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	detect := r.Group("/detect")
	{
		detect.POST("/predict/text", h.PredictText)
		detect.POST("/predict/image", h.PredictImage)
		detect.POST("/predict/video", h.PredictVideo)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "not_found", Detail: "Not Found"})
	})
	return r
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}
