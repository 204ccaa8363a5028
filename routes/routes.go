// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bloom-api/config"
	"bloom-api/controllers"
	"bloom-api/middleware"
	"bloom-api/repositories"
	"bloom-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, pictureStore *services.PictureStore) {
	// Repositories
	postRepo := repositories.NewPostRepository(db)
	clubRepo := repositories.NewClubRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	postController := controllers.NewPostController(postRepo, profileRepo)
	commentController := controllers.NewCommentController(postRepo)
	clubController := controllers.NewClubController(clubRepo, profileRepo)
	profileController := controllers.NewProfileController(db, profileRepo, pictureStore)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Uploaded profile pictures
	r.Static("/uploads/profile_pictures", cfg.UploadDir)

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Post routes
		posts := protected.Group("/posts")
		{
			posts.GET("", postController.GetFeed)
			posts.POST("", postController.CreatePost)
			posts.GET("/:slug", postController.GetPost)
			posts.POST("/:slug/like", postController.ToggleLike)
			posts.GET("/:slug/comments", commentController.GetComments)
			posts.POST("/:slug/comments", commentController.CreateComment)
		}

		// Club routes
		clubs := protected.Group("/clubs")
		{
			clubs.GET("/search", clubController.SearchClubs)
			clubs.POST("", clubController.CreateClub)
			clubs.POST("/join", clubController.JoinClub)
			clubs.POST("/:id/follow", clubController.FollowClub)
		}

		// Profile routes
		users := protected.Group("/users")
		{
			users.GET("/profile", profileController.GetProfile)
			users.POST("/profile-picture", profileController.UpdateProfilePicture)
			users.DELETE("/profile-picture", profileController.RemoveProfilePicture)
		}
	}
}

// SetupCORS allows browser clients on other origins to reach the API
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
