package infrastructure

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/infrastructure/logger"
	middlewares "taskdesk.io/infrastructure/middleware"
	ratelimit "taskdesk.io/infrastructure/ratelimit"
	webRoutev1 "taskdesk.io/infrastructure/routes/ginRouter/web/v1"
	server_response "taskdesk.io/infrastructure/serverResponse"
	startup "taskdesk.io/infrastructure/startUp"
)

type ginServer struct{}

func (s *ginServer) Start() {
	err := godotenv.Load()
	if err != nil {
		logger.Info("error loading env variables")
	}

	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.Default()

	origins := []string{}
	if os.Getenv("GIN_MODE") == "release" {
		origins = strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")
	} else {
		origins = append(origins, "http://localhost:3000")
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())
	server.Use(middlewares.RequestLogMiddleware())
	server.Use(middlewares.AuthGate())

	api := server.Group("/api")
	{
		webRoutev1.AuthRouter(api)
		webRoutev1.WorkspaceRouter(api)
		webRoutev1.TaskRouter(api)
		webRoutev1.ReportRouter(api)
		webRoutev1.NotificationRouter(api)
		webRoutev1.UserRouter(api)
		webRoutev1.DashboardRouter(api)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, 200, "pong!", nil, nil)
	})

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info(fmt.Sprintf("Server starting on PORT %s", port))
	server.Run(fmt.Sprintf(":%s", port))
}
