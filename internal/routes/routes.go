package routes

import (
	"yukmarkazi/internal/ads"
	"yukmarkazi/internal/handlers"
	"yukmarkazi/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the full API surface onto a gin engine.
func SetupRouter(db *gorm.DB, clock ads.Clock) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))
	r.Use(middleware.RequestLogger())

	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		api.POST("/contact", handlers.CreateContactMessage(db))
		api.POST("/ad-request", handlers.RequestAdvertisement(db))
		api.GET("/advertisements", handlers.GetActiveAdvertisements(db, clock))
		api.GET("/advertisements/:adType", handlers.GetAdvertisementsByType(db, clock))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("", handlers.GetProfile(db))
				profile.PUT("", handlers.UpdateProfile(db))
				profile.POST("/picture", handlers.UploadProfilePicture(db))
			}

			cargos := protected.Group("/cargos")
			{
				cargos.GET("", handlers.GetCargos(db))
				cargos.POST("", handlers.CreateCargo(db))
				cargos.GET("/:id", handlers.GetCargo(db))
				cargos.PUT("/:id", handlers.UpdateCargo(db))
				cargos.DELETE("/:id", handlers.DeleteCargo(db))
			}

			protected.POST("/reviews", handlers.CreateReview(db))

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.StaffMiddleware())
			{
				admin.GET("/advertisements", handlers.ListAdvertisements(db))
				admin.PUT("/advertisements/:id", handlers.UpdateAdvertisement(db, clock))
				admin.POST("/advertisements/:id/media", handlers.UploadAdvertisementMedia(db))
				admin.POST("/advertisements/bulk", handlers.BulkAdvertisementAction(db, clock))

				admin.GET("/contact-messages", handlers.ListContactMessages(db))
				admin.PUT("/contact-messages/:id", handlers.UpdateContactMessage(db))
			}
		}
	}

	return r
}
