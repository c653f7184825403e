package main

import (
	"fmt"
	"log"
	"net/http"

	"devconnect/backend/internal/auth"
	"devconnect/backend/internal/config"
	"devconnect/backend/internal/database"
	"devconnect/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "devconnect/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           DevConnect API
// @version         1.0
// @description     This is the API for the DevConnect developer-networking service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/feed", handler.GetFeed) // Must be before /:id
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.PATCH("/me", handler.UpdateMe)
			userRoutes.DELETE("/me", handler.DeleteMe)
			userRoutes.GET("/me/requests", handler.GetIncomingRequests)
			userRoutes.GET("/me/connections", handler.GetConnections)
			userRoutes.GET("/:id", handler.GetUserByID)

			// Connection workflow routes
			userRoutes.POST("/:id/request", handler.SendRequest)
			userRoutes.POST("/:id/review", handler.ReviewRequest)
			userRoutes.POST("/:id/remove", handler.RemoveConnection)
		}

		// Skill routes (protected)
		skillRoutes := apiV1.Group("/skills")
		skillRoutes.Use(auth.AuthMiddleware())
		{
			skillRoutes.GET("", handler.GetSkills)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Skills CRUD
			skills := adminRoutes.Group("/skills")
			{
				skills.POST("", handler.CreateSkill)
				skills.PUT("/:id", handler.UpdateSkill)
				skills.DELETE("/:id", handler.DeleteSkill)
			}
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
