package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/config"
	"github.com/SamiMK0/smart-room-management-system/controllers"
	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/services"
)

func corsConfig(origins []string) cors.Config {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires every controller onto the /api surface.
func SetupRouter(
	cfg config.Config,
	tokens *services.TokenService,
	ac *controllers.AuthController,
	uc *controllers.UserController,
	rc *controllers.RoomController,
	rfc *controllers.RoomFeatureController,
	fc *controllers.FeatureController,
	bc *controllers.BookingController,
	mc *controllers.MeetingController,
	atc *controllers.AttendeeController,
	momc *controllers.MoMController,
	mic *controllers.MoMItemController,
	nc *controllers.NotificationController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", ac.Register)
		api.POST("/login", ac.Login)

		auth := api.Group("")
		auth.Use(middleware.Auth(tokens))
		{
			auth.POST("/logout", ac.Logout)
			auth.GET("/me", ac.Me)

			users := auth.Group("/users")
			{
				users.GET("", uc.Index)
				users.POST("", middleware.RequireAdmin(), uc.Store)

				// ต้องอยู่ก่อน /:id
				users.GET("/search", uc.Search)

				users.GET("/:id", uc.Show)
				users.PUT("/:id", uc.Update)
				users.DELETE("/:id", middleware.RequireAdmin(), uc.Destroy)
				users.POST("/:id/profile", uc.UpdateProfile)
				users.GET("/:id/notifications", uc.NotificationsForUser)
				users.GET("/:id/meetings", uc.MeetingsForUser)
			}

			rooms := auth.Group("/rooms")
			{
				rooms.GET("", rc.Index)

				// ต้องอยู่ก่อน /:id
				rooms.GET("/available", rc.Available)

				rooms.POST("", middleware.RequireAdmin(), rc.Store)
				rooms.GET("/:id", rc.Show)
				rooms.PUT("/:id", middleware.RequireAdmin(), rc.Update)
				rooms.DELETE("/:id", middleware.RequireAdmin(), rc.Destroy)

				rooms.GET("/:id/features", rfc.Index)
				rooms.POST("/:id/features", middleware.RequireAdmin(), rfc.Store)
				rooms.DELETE("/:id/features/:featureId", middleware.RequireAdmin(), rfc.Destroy)
			}

			features := auth.Group("/features")
			features.Use(middleware.RequireAdmin())
			{
				features.GET("", fc.Index)
				features.POST("", fc.Store)
				features.GET("/:id", fc.Show)
				features.PUT("/:id", fc.Update)
				features.DELETE("/:id", fc.Destroy)
			}

			bookings := auth.Group("/bookings")
			{
				bookings.GET("", bc.Index)

				// ต้องอยู่ก่อน /:id
				bookings.GET("/stats", bc.Stats)

				bookings.POST("", bc.Store)
				bookings.GET("/:id", bc.Show)
				bookings.PUT("/:id", bc.Update)
				bookings.DELETE("/:id", bc.Destroy)
			}

			meetings := auth.Group("/meetings")
			{
				meetings.GET("", mc.Index)
				meetings.POST("", mc.Store)
				meetings.GET("/:id", mc.Show)
				meetings.PUT("/:id", mc.Update)
				meetings.DELETE("/:id", mc.Destroy)

				meetings.GET("/:id/attendees", atc.Index)
				meetings.POST("/:id/attendees", atc.Store)
				meetings.GET("/:id/attendees/:attendeeId", atc.Show)
				meetings.PUT("/:id/attendees/:attendeeId", atc.Update)
				meetings.DELETE("/:id/attendees/:attendeeId", atc.Destroy)
			}

			moms := auth.Group("/moms")
			{
				moms.GET("", momc.Index)

				// ต้องอยู่ก่อน /:id
				moms.GET("/user", momc.UserMoMs)
				moms.GET("/meeting/:meetingId", momc.ByMeeting)

				moms.POST("", momc.Store)
				moms.GET("/:id", momc.Show)
				moms.PUT("/:id", momc.Update)
				moms.DELETE("/:id", momc.Destroy)
			}

			momItems := auth.Group("/mom-items")
			{
				momItems.GET("", mic.Index)

				// ต้องอยู่ก่อน /:id
				momItems.GET("/user", mic.UserItems)

				momItems.POST("", mic.Store)
				momItems.GET("/:id", mic.Show)
				momItems.PUT("/:id", mic.Update)
				momItems.DELETE("/:id", mic.Destroy)
			}

			notifications := auth.Group("/notifications")
			{
				notifications.GET("", middleware.RequireAdmin(), nc.Index)
				notifications.POST("", middleware.RequireAdmin(), nc.Store)
				notifications.GET("/:id", nc.Show)
				notifications.PUT("/:id", middleware.RequireAdmin(), nc.Update)
				notifications.DELETE("/:id", nc.Destroy)
			}
		}
	}

	return r
}
