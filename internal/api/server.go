package api

import (
	"context"

	"boq-backend/internal/app/config"
	"boq-backend/internal/app/dsn"
	"boq-backend/internal/app/estimation"
	"boq-backend/internal/app/handler"
	"boq-backend/internal/app/middleware"
	"boq-backend/internal/app/redis"
	"boq-backend/internal/app/repository"
	"boq-backend/internal/app/storage"
	"boq-backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// StartServer собирает все зависимости и запускает HTTP сервер
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("Error loading config: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("Error initializing repository: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("Error initializing Redis client: ", err)
	}
	defer redisClient.Close()

	minioClient, err := storage.NewMinIOClient(cfg.Minio.Endpoint, cfg.Minio.AccessKey,
		cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
	if err != nil {
		logrus.Fatal("Error initializing MinIO client: ", err)
	}

	// Ядро расчета работает поверх репозитория через адаптер
	estimator := estimation.NewService(repository.NewEstimationSource(repo))

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler, estimator)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()

	// CORS для фронтенда
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	apiHandler.RegisterAPIRoutes(router, authMiddleware)

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := pkg.NewApp(cfg, router)
	app.RunApp()

	logrus.Info("Server down")
}
