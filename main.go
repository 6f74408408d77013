package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/SamiMK0/smart-room-management-system/config"
	"github.com/SamiMK0/smart-room-management-system/controllers"
	"github.com/SamiMK0/smart-room-management-system/routes"
	"github.com/SamiMK0/smart-room-management-system/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db, cfg.JWTSecret, cfg.TokenTTL)
	roomService := services.NewRoomService(db)
	featureService := services.NewFeatureService(db)
	bookingService := services.NewBookingService(db)
	meetingService := services.NewMeetingService(db)
	momService := services.NewMoMService(db)
	notificationService := services.NewNotificationService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService, tokenService, cfg.UploadDir)
	userController := controllers.NewUserController(userService, meetingService, notificationService, cfg.UploadDir)
	roomController := controllers.NewRoomController(roomService)
	roomFeatureController := controllers.NewRoomFeatureController(roomService)
	featureController := controllers.NewFeatureController(featureService)
	bookingController := controllers.NewBookingController(bookingService)
	meetingController := controllers.NewMeetingController(meetingService)
	attendeeController := controllers.NewAttendeeController(meetingService)
	momController := controllers.NewMoMController(momService, meetingService)
	momItemController := controllers.NewMoMItemController(momService)
	notificationController := controllers.NewNotificationController(notificationService)

	// Build router
	router := routes.SetupRouter(
		cfg,
		tokenService,
		authController,
		userController,
		roomController,
		roomFeatureController,
		featureController,
		bookingController,
		meetingController,
		attendeeController,
		momController,
		momItemController,
		notificationController,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
