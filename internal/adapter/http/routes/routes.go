package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/handlers"
	"github.com/giordanomadjo-lab/sisgped/internal/adapter/persistence/repository"
	"github.com/giordanomadjo-lab/sisgped/internal/infrastructure/database"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository.NewSessionDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	instructorRepo := repository.NewInstructorDynamoRepository(ddb)
	serviceTypeRepo := repository.NewServiceTypeDynamoRepository(ddb)
	serviceRecordRepo := repository.NewServiceRecordDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)

	authUseCase := usecase.NewAuthUseCase(sessionRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	instructorUseCase := usecase.NewInstructorUseCase(instructorRepo)
	serviceTypeUseCase := usecase.NewServiceTypeUseCase(serviceTypeRepo)
	serviceRecordUseCase := usecase.NewServiceRecordUseCase(serviceRecordRepo, serviceTypeRepo, userRepo, notificationRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(serviceRecordRepo)
	exportUseCase := usecase.NewExportUseCase(serviceRecordRepo, serviceTypeRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	instructorHandler := handlers.NewInstructorHandler(instructorUseCase)
	serviceTypeHandler := handlers.NewServiceTypeHandler(serviceTypeUseCase)
	serviceRecordHandler := handlers.NewServiceRecordHandler(serviceRecordUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)

	api := router.Group("/api")
	api.Use(SessionMiddleware(authUseCase))

	addPingRoutes(api)
	addAPIRoutes(api, apiHandlers{
		auth:          authHandler,
		users:         userHandler,
		instructors:   instructorHandler,
		serviceTypes:  serviceTypeHandler,
		services:      serviceRecordHandler,
		notifications: notificationHandler,
		dashboard:     dashboardHandler,
		export:        exportHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

// corsConfig allows the frontend origin to carry the session cookie.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	return cfg
}
